package types

import "time"

// ResumePayload is the immutable snapshot produced by resume customization.
// It is created fresh on every request and superseded, never updated, by
// later requests. Rendering and export consume this payload; the core's
// obligation ends at producing it.
type ResumePayload struct {
	CreatedAt      time.Time       `json:"created_at"`
	Template       string          `json:"template"`
	JobTitle       string          `json:"job_title"`
	MatchScore     float64         `json:"match_score"`
	Keywords       []string        `json:"keywords"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []string        `json:"achievements"`
}

// ResumeImprovements holds gap suggestions produced by diffing job keywords
// against profile keywords.
type ResumeImprovements struct {
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
}
