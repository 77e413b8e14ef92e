// Package interview provides interview question selection, answer grading
// and session simulation.
package interview

import (
	"math"
	"strings"

	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/types"
)

// Clarity bands on word count. Longer is not strictly better: an overlong
// answer is penalized relative to a well-sized one to discourage padding.
const (
	brevityWordLimit  = 30
	verbosityWordLimit = 300

	clarityBrief   = 3
	clarityLengthy = 6
	clarityGood    = 8
)

// Confidence axis constants: base score, booster cap and detractor cap.
const (
	confidenceBase         = 7
	confidenceBoosterCap   = 3
	confidenceDetractorCap = 4
)

// relevanceDefault is used when the question yields no keywords, avoiding a
// division by zero and avoiding unfairly zeroing an answer to a
// keyword-sparse question.
const relevanceDefault = 5

var (
	confidenceBoosters = []string{
		"confident", "accomplished", "successful", "achieved",
		"led", "managed", "expertise", "proficient",
	}
	confidenceDetractors = []string{
		"maybe", "perhaps", "try", "might", "could", "possibly",
		"i think", "not sure",
	}
)

// relevanceStopwords is the short stopword list used for the relevance
// axis. The grader's tokenizer is the extractor's minus the technology
// pattern step.
var relevanceStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "if": true, "because": true, "as": true, "what": true,
	"when": true, "where": true, "how": true, "who": true, "which": true,
	"this": true, "that": true, "to": true, "in": true,
}

// AnalyzeAnswer scores a free-text interview answer along clarity,
// relevance and confidence axes using lexical heuristics. Grading never
// fails: an empty answer yields the fixed minimum feedback rather than an
// error.
func AnalyzeAnswer(question, answer string) *types.AnswerFeedback {
	if strings.TrimSpace(answer) == "" {
		return &types.AnswerFeedback{
			Feedback:        "No answer provided.",
			ImprovementTips: []string{"Please provide an answer to receive feedback."},
		}
	}

	feedback := &types.AnswerFeedback{ImprovementTips: []string{}}

	wordCount := len(strings.Fields(answer))
	var clarityNote string
	switch {
	case wordCount < brevityWordLimit:
		feedback.Clarity = clarityBrief
		clarityNote = "Your answer is too brief."
		feedback.ImprovementTips = append(feedback.ImprovementTips,
			"Elaborate more on your experience and skills.")
	case wordCount > verbosityWordLimit:
		feedback.Clarity = clarityLengthy
		clarityNote = "Your answer is quite lengthy."
		feedback.ImprovementTips = append(feedback.ImprovementTips,
			"Try to be more concise while maintaining detail.")
	default:
		feedback.Clarity = clarityGood
		clarityNote = "Your answer has good length."
	}

	feedback.Relevance = relevanceScore(question, answer)
	if feedback.Relevance < 5 {
		feedback.ImprovementTips = append(feedback.ImprovementTips,
			"Your answer doesn't fully address the question. Try to focus more on what was asked.")
	}

	lowerAnswer := strings.ToLower(answer)
	boostersFound := countTerms(lowerAnswer, confidenceBoosters)
	detractorsFound := countTerms(lowerAnswer, confidenceDetractors)

	confidence := confidenceBase +
		min(confidenceBoosterCap, boostersFound) -
		min(confidenceDetractorCap, detractorsFound)
	feedback.Confidence = clampInt(confidence, 1, 10)

	if detractorsFound > 1 {
		feedback.ImprovementTips = append(feedback.ImprovementTips,
			"Try to avoid uncertain phrases like 'maybe', 'perhaps', or 'I think'.")
	}

	switch overall := feedback.OverallScore(); {
	case overall >= 8:
		feedback.Feedback = "Excellent answer! " + clarityNote
	case overall >= 6:
		feedback.Feedback = "Good answer. " + clarityNote
	default:
		feedback.Feedback = "Your answer needs improvement. " + clarityNote
	}

	return feedback
}

// relevanceScore computes keyword overlap between question and answer,
// scaled to [0, 10].
func relevanceScore(question, answer string) int {
	questionKeywords := graderKeywords(question)
	if len(questionKeywords) == 0 {
		return relevanceDefault
	}

	answerSet := make(map[string]bool)
	for _, kw := range graderKeywords(answer) {
		answerSet[kw] = true
	}

	overlap := 0
	for _, kw := range questionKeywords {
		if answerSet[kw] {
			overlap++
		}
	}

	score := math.Min(10, float64(overlap)/float64(len(questionKeywords))*10)
	return int(math.RoundToEven(score))
}

// graderKeywords tokenizes text and filters the short stopword list and
// sub-3-character tokens. Unlike keywords.Extract it applies no technology
// pattern and no frequency ranking.
func graderKeywords(text string) []string {
	tokens := keywords.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if relevanceStopwords[t] || len(t) < 3 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// countTerms counts how many of terms occur in lowerText.
func countTerms(lowerText string, terms []string) int {
	found := 0
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			found++
		}
	}
	return found
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
