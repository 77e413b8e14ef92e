package interview

import (
	"regexp"
	"strings"
)

// The freeform grader starts from a fixed baseline and decrements for
// detected weaknesses, unlike the three-axis grader which averages axis
// scores. Both policies are kept distinct deliberately: they serve
// different call paths and their scales and clamping behavior differ.
const (
	freeformBaseline   = 7.0
	freeformMinLength  = 20
	freeformBriefScore = 3.0
)

var (
	examplePattern = regexp.MustCompile(`(?i)(for example|for instance|e\.g\.|specifically|in particular|in my experience)`)

	fillerWords = []string{"um", "uh", "like", "you know", "sort of", "kind of"}

	behavioralCues = []string{"tell me about a time", "describe a situation", "give an example"}

	// starElements maps each STAR narrative element to the cue words that
	// count as addressing it.
	starElements = []struct {
		Name     string
		Keywords []string
	}{
		{"situation", []string{"situation", "context", "background", "setting"}},
		{"task", []string{"task", "responsibility", "assignment", "charged with", "needed to", "had to"}},
		{"action", []string{"action", "approach", "steps", "procedure", "initiative", "implemented", "executed", "performed"}},
		{"result", []string{"result", "outcome", "achievement", "accomplishment", "impact", "effect", "led to", "concluded with"}},
	}

	weaknessCues = []string{"weakness", "difficult", "challenging", "failed", "mistake"}
	growthTerms  = []string{"learned", "improved", "growth", "development", "opportunity", "overcome", "solution"}
)

// GradeFreeform grades a free-form Q&A answer against a fixed baseline of
// 7, decrementing for brevity, lack of concrete examples, excessive filler
// words, missing STAR elements on behavioral questions, and missing growth
// framing on weakness/failure questions. The final score clamps to [1, 10].
func GradeFreeform(question, answer string) (string, float64) {
	if len(answer) < freeformMinLength {
		return "Your answer is too brief. Try to provide more details and context.", freeformBriefScore
	}

	var points []string
	score := freeformBaseline

	wordCount := len(strings.Fields(answer))
	if wordCount < 30 {
		points = append(points, "Your answer could be more detailed.")
		score--
	} else if wordCount > 500 {
		points = append(points, "Your answer is quite lengthy. Consider being more concise while maintaining key points.")
		score -= 0.5
	}

	if !examplePattern.MatchString(answer) {
		points = append(points, "Consider including specific examples to strengthen your answer.")
		score--
	}

	fillerCount := 0
	for _, word := range fillerWords {
		if wordBoundaryMatch(answer, word) {
			fillerCount++
		}
	}
	if fillerCount > 3 {
		points = append(points, "Try to reduce the use of filler words like 'um', 'uh', 'like', etc.")
		score--
	}

	lowerQuestion := strings.ToLower(question)
	if containsAny(lowerQuestion, behavioralCues) {
		missing := missingSTARElements(answer)
		if len(missing) > 0 {
			points = append(points, "Your answer could be strengthened by clearly addressing the "+
				strings.Join(missing, ", ")+
				" part(s) of the STAR method (Situation, Task, Action, Result).")
			score -= 0.5 * float64(len(missing))
		}
	}

	if containsAny(lowerQuestion, weaknessCues) {
		hasGrowth := false
		for _, term := range growthTerms {
			if wordBoundaryMatch(answer, term) {
				hasGrowth = true
				break
			}
		}
		if !hasGrowth {
			points = append(points, "When discussing challenges or weaknesses, try to include how you've grown or what you've learned from them.")
			score--
		}
	}

	var feedback string
	if len(points) > 0 {
		feedback = "Feedback: " + strings.Join(points, " ")
	} else {
		feedback = "Good job! Your answer was well-structured and addressed the question effectively."
		score++
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	return feedback, score
}

// missingSTARElements returns the STAR elements the answer fails to
// address, in canonical order.
func missingSTARElements(answer string) []string {
	var missing []string
	for _, element := range starElements {
		found := false
		for _, kw := range element.Keywords {
			if wordBoundaryMatch(answer, kw) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, element.Name)
		}
	}
	return missing
}

// wordBoundaryMatch reports whether term occurs in text on word
// boundaries, case-insensitive.
func wordBoundaryMatch(text, term string) bool {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	return re.MatchString(text)
}

func containsAny(lowerText string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lowerText, cue) {
			return true
		}
	}
	return false
}
