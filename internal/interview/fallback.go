package interview

import (
	"math"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// typeKeywords lists the terms the fallback grader rewards per question
// type. Unknown types use the HR list.
var typeKeywords = map[types.QuestionType][]string{
	types.QuestionTechnical: {
		"algorithm", "code", "system", "design", "implementation",
		"performance", "complexity", "architecture", "solution", "problem",
	},
	types.QuestionBehavioral: {
		"experience", "team", "project", "challenge", "solution",
		"learned", "achievement", "collaborate", "lead", "communicate",
	},
	types.QuestionHR: {
		"background", "interest", "goal", "motivation", "strength",
		"weakness", "value", "culture", "growth", "opportunity",
	},
}

// difficultyModifiers shave points at higher tiers: the same answer is
// worth less in a harder interview.
var difficultyModifiers = map[types.Difficulty]float64{
	types.DifficultyBeginner:     0,
	types.DifficultyIntermediate: -0.5,
	types.DifficultyAdvanced:     -1,
	types.DifficultyExpert:       -1.5,
}

// FallbackFeedback grades an answer with length, keyword and structure
// heuristics and returns canned template feedback for the resulting score
// band. It is the deterministic payload substituted whenever the LLM
// grader is unavailable or returns an invalid response.
func FallbackFeedback(question types.Question, answer string, difficulty types.Difficulty) *types.GradedFeedback {
	score := 0.0

	// Length as a basic proxy for thoroughness.
	switch {
	case len(answer) > 300:
		score += 3
	case len(answer) > 150:
		score += 2
	case len(answer) > 50:
		score++
	}

	kws, ok := typeKeywords[question.Type]
	if !ok {
		kws = typeKeywords[types.QuestionHR]
	}
	lowerAnswer := strings.ToLower(answer)
	matches := 0
	for _, kw := range kws {
		if strings.Contains(lowerAnswer, kw) {
			matches++
		}
	}
	score += math.Min(3, float64(matches))

	sentences := strings.Count(answer, ".") + 1
	if sentences >= 5 {
		score += 2
	} else if sentences >= 3 {
		score++
	}

	score += difficultyModifiers[difficulty]

	final := int(math.RoundToEven(math.Max(0, math.Min(10, score))))

	tmpl := templateFor(question.Type, final)
	return &types.GradedFeedback{
		Analysis:     tmpl.Analysis,
		Strengths:    append([]string(nil), tmpl.Strengths...),
		Improvements: append([]string(nil), tmpl.Improvements...),
		Score:        float64(final),
	}
}
