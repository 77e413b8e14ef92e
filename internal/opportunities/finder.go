// Package opportunities searches job and hackathon listings and matches
// them against a candidate profile.
package opportunities

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/resume"
	"github.com/jonathan/career-coach/internal/types"
)

// DefaultRecommendationLimit caps each listing kind in a recommendation set.
const DefaultRecommendationLimit = 5

// recommendationKeywordLimit is how many profile keywords drive the
// hackathon side of a recommendation set.
const recommendationKeywordLimit = 10

// JobFilter narrows a job search. Zero-valued fields match everything.
type JobFilter struct {
	Keywords []string
	JobType  string
	Location string
}

// HackathonFilter narrows a hackathon search. Zero-valued fields match
// everything; a "both" listing satisfies any requested team size.
type HackathonFilter struct {
	Keywords   []string
	Location   string
	Remote     *bool
	SkillLevel string
	TeamSize   string
}

// Finder searches listing catalogs and builds personalized
// recommendations.
type Finder struct {
	jobs       []types.JobListing
	hackathons []types.Hackathon
}

// NewFinder creates a finder over generated catalogs. A nil rng gets a
// time-seeded source.
func NewFinder(rng *rand.Rand) *Finder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now()
	return &Finder{
		jobs:       GenerateMockJobs(rng, now),
		hackathons: GenerateMockHackathons(rng, now),
	}
}

// NewFinderWithCatalogs creates a finder over caller-supplied catalogs.
func NewFinderWithCatalogs(jobs []types.JobListing, hackathons []types.Hackathon) *Finder {
	return &Finder{jobs: jobs, hackathons: hackathons}
}

// SearchJobs returns the jobs matching the filter. When a profile is
// given, each result carries a match score against it and results are
// ordered by that score, best first.
func (f *Finder) SearchJobs(filter JobFilter, profile *types.Profile) []types.JobListing {
	filtered := make([]types.JobListing, 0, len(f.jobs))
	for _, job := range f.jobs {
		if filter.JobType != "" && job.JobType != filter.JobType {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if len(filter.Keywords) > 0 && !matchesAnyKeyword(filter.Keywords, job.Title, job.Description) {
			continue
		}
		filtered = append(filtered, job)
	}

	if profile != nil {
		profileText := searchText(profile)
		for i := range filtered {
			jobText := filtered[i].Title + " " + filtered[i].Description
			filtered[i].MatchScore = keywords.MatchScore(profileText, jobText)
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MatchScore > filtered[j].MatchScore
		})
	}

	return filtered
}

// SearchHackathons returns the hackathons matching the filter, ordered by
// start date with the soonest first.
func (f *Finder) SearchHackathons(filter HackathonFilter) []types.Hackathon {
	filtered := make([]types.Hackathon, 0, len(f.hackathons))
	for _, h := range f.hackathons {
		if filter.Location != "" && !strings.Contains(strings.ToLower(h.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Remote != nil && h.IsRemote != *filter.Remote {
			continue
		}
		if filter.SkillLevel != "" && h.SkillLevel != filter.SkillLevel {
			continue
		}
		if filter.TeamSize != "" && h.TeamSize != filter.TeamSize && h.TeamSize != "both" {
			continue
		}
		if len(filter.Keywords) > 0 && !matchesAnyKeyword(filter.Keywords, h.Name, h.Description) {
			continue
		}
		filtered = append(filtered, h)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartDate.Before(filtered[j].StartDate)
	})

	return filtered
}

// Recommendations builds a personalized recommendation set: jobs scored
// against the whole profile and hackathons matched on the profile's top
// keywords. The two searches run concurrently. A non-positive limit uses
// DefaultRecommendationLimit.
func (f *Finder) Recommendations(ctx context.Context, profile *types.Profile, limit int) (*types.Recommendations, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var profileKeywords []string
	if profile != nil {
		profileKeywords = keywords.Extract(searchText(profile), recommendationKeywordLimit)
	}

	var jobs []types.JobListing
	var hackathons []types.Hackathon

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs = f.SearchJobs(JobFilter{}, profile)
		return nil
	})
	g.Go(func() error {
		hackathons = f.SearchHackathons(HackathonFilter{Keywords: profileKeywords})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	if len(hackathons) > limit {
		hackathons = hackathons[:limit]
	}

	return &types.Recommendations{Jobs: jobs, Hackathons: hackathons}, nil
}

// searchText flattens the profile for listing matching. Employer names
// count here, unlike in resume flattening, so a listing that mentions a
// candidate's previous company can match.
func searchText(profile *types.Profile) string {
	parts := []string{resume.FlattenProfile(profile)}
	for _, exp := range profile.Experience {
		if exp.Company != "" {
			parts = append(parts, exp.Company)
		}
	}
	return strings.Join(parts, " ")
}

func matchesAnyKeyword(kws []string, fields ...string) bool {
	lowered := make([]string, len(fields))
	for i, field := range fields {
		lowered[i] = strings.ToLower(field)
	}
	for _, kw := range kws {
		kw = strings.ToLower(kw)
		for _, field := range lowered {
			if strings.Contains(field, kw) {
				return true
			}
		}
	}
	return false
}
