package keywords

import (
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const (
	// Keyword caps for improvement diffing. Part of the contract: the job
	// side is extracted at 30, the profile side at 50.
	improvementJobLimit     = 30
	improvementProfileLimit = 50
	// maxMissingKeywords caps the reported gap list.
	maxMissingKeywords = 10
	// maxNamedKeywords caps how many gaps the first recommendation names.
	maxNamedKeywords = 5
)

// leadershipTerms and teamworkTerms drive the rule-based recommendations.
var (
	leadershipTerms = []string{"lead", "manage", "coordinate", "direct", "supervise"}
	teamworkTerms   = []string{"team", "collaborate", "cooperation", "group"}
)

// SuggestImprovements diffs job keywords against profile keywords and emits
// actionable gap suggestions. Rules are independent and all applicable ones
// fire; there is no early return.
func SuggestImprovements(profileText, jobText string) *types.ResumeImprovements {
	jobKeywords := Extract(jobText, improvementJobLimit)
	profileKeywords := Extract(profileText, improvementProfileLimit)

	profileSet := make(map[string]bool, len(profileKeywords))
	for _, kw := range profileKeywords {
		profileSet[kw] = true
	}

	missing := make([]string, 0)
	for _, kw := range jobKeywords {
		if !profileSet[kw] {
			missing = append(missing, kw)
		}
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	recommendations := make([]string, 0)
	if len(missing) > 0 {
		named := missing
		if len(named) > maxNamedKeywords {
			named = named[:maxNamedKeywords]
		}
		recommendations = append(recommendations,
			"Consider adding these skills to your profile: "+strings.Join(named, ", "))
	}

	if containsAnyTerm(jobText, leadershipTerms) && !containsAnyTerm(profileText, leadershipTerms) {
		recommendations = append(recommendations,
			"The job requires leadership skills. Highlight any leadership experience.")
	}

	if containsAnyTerm(jobText, teamworkTerms) && !containsAnyTerm(profileText, teamworkTerms) {
		recommendations = append(recommendations,
			"Emphasize your teamwork experience in your profile.")
	}

	return &types.ResumeImprovements{
		MissingKeywords: missing,
		Recommendations: recommendations,
	}
}

// containsAnyTerm reports whether any term occurs in text, case-insensitive.
func containsAnyTerm(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
