// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// PersonalInfo holds the candidate's contact details and professional summary.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Education represents a single education entry. Education entries are never
// reordered by relevance ranking; they pass through customization unchanged.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience represents a single work experience entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Project represents a single project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// Certification represents a professional certification.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Expiry string `json:"expiry,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Profile is the candidate aggregate. Entries are exclusively owned by the
// profile; the core never mutates a profile it is handed.
type Profile struct {
	Username       string          `json:"username,omitempty"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Achievements   []string        `json:"achievements,omitempty"`
	LastUpdated    time.Time       `json:"last_updated,omitempty"`
}

// IsEmpty reports whether the profile carries no usable content.
func (p *Profile) IsEmpty() bool {
	return p == nil || (p.PersonalInfo.Summary == "" &&
		len(p.Skills) == 0 &&
		len(p.Experience) == 0 &&
		len(p.Projects) == 0)
}
