// Package resume builds job-tailored resume payloads from a candidate
// profile and a job description.
package resume

import (
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/ranking"
	"github.com/jonathan/career-coach/internal/types"
)

// DefaultTemplate is used when the caller does not name one.
const DefaultTemplate = "professional"

// Customize builds a fresh, immutable ResumePayload tailored to the job
// description: job keywords are extracted, the profile's fit is scored,
// skills are partitioned by keyword match, and experience and projects are
// reordered by relevance. Education, certifications and achievements pass
// through unranked. The input profile is never mutated.
func Customize(profile *types.Profile, jobTitle, jobDescription, template string) (*types.ResumePayload, error) {
	if profile.IsEmpty() {
		return nil, &ValidationError{Field: "profile", Message: "profile is required"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "job_description", Message: "job description is required"}
	}
	if template == "" {
		template = DefaultTemplate
	}

	jobKeywords := keywords.Extract(jobDescription, keywords.DefaultLimit)
	profileText := FlattenProfile(profile)
	matchScore := keywords.MatchScore(profileText, jobDescription)

	orderedExperience := ranking.ByRelevance(profile.Experience, jobKeywords, func(e types.Experience) string {
		return e.Title + " " + e.Description
	})
	orderedProjects := ranking.ByRelevance(profile.Projects, jobKeywords, func(p types.Project) string {
		return p.Name + " " + p.Description
	})

	return &types.ResumePayload{
		CreatedAt:      time.Now(),
		Template:       template,
		JobTitle:       jobTitle,
		MatchScore:     matchScore,
		Keywords:       jobKeywords,
		PersonalInfo:   profile.PersonalInfo,
		Skills:         ranking.PartitionSkills(profile.Skills, jobKeywords),
		Experience:     orderedExperience,
		Education:      append([]types.Education(nil), profile.Education...),
		Projects:       orderedProjects,
		Certifications: append([]types.Certification(nil), profile.Certifications...),
		Achievements:   append([]string(nil), profile.Achievements...),
	}, nil
}

// FlattenProfile concatenates the profile's free-text fields into one
// string for keyword matching: summary, skills, each experience's title,
// description and responsibilities, and each project's name, description
// and technologies.
func FlattenProfile(profile *types.Profile) string {
	var sb strings.Builder

	writePart := func(s string) {
		if s != "" {
			sb.WriteString(s)
			sb.WriteString(" ")
		}
	}

	writePart(profile.PersonalInfo.Summary)
	for _, skill := range profile.Skills {
		writePart(skill)
	}
	for _, exp := range profile.Experience {
		writePart(exp.Title)
		writePart(exp.Description)
		for _, resp := range exp.Responsibilities {
			writePart(resp)
		}
	}
	for _, proj := range profile.Projects {
		writePart(proj.Name)
		writePart(proj.Description)
		for _, tech := range proj.Technologies {
			writePart(tech)
		}
	}

	return strings.TrimSpace(sb.String())
}
