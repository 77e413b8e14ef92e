package types

import "time"

// JobListing represents a job opportunity supplied by a listing source.
// The core reads title, description and location for filtering and scoring;
// it never mutates listings held by the source.
type JobListing struct {
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	PostedDate  time.Time `json:"posted_date"`
	MatchScore  float64   `json:"match_score,omitempty"`
}

// Hackathon represents a hackathon opportunity.
type Hackathon struct {
	Name        string    `json:"name"`
	Organizer   string    `json:"organizer"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	IsRemote    bool      `json:"is_remote"`
	SkillLevel  string    `json:"skill_level"`
	TeamSize    string    `json:"team_size"`
	Prizes      []string  `json:"prizes,omitempty"`
}

// Recommendations bundles personalized job and hackathon picks for a profile.
type Recommendations struct {
	Jobs       []JobListing `json:"jobs"`
	Hackathons []Hackathon  `json:"hackathons"`
}
