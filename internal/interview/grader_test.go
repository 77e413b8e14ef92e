package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerOfWords builds an answer of exactly n neutral words.
func answerOfWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "detail"
	}
	return strings.Join(words, " ")
}

func TestAnalyzeAnswer_EmptyAnswer(t *testing.T) {
	feedback := AnalyzeAnswer("Tell me about yourself.", "   ")

	assert.Equal(t, 0, feedback.Clarity)
	assert.Equal(t, 0, feedback.Relevance)
	assert.Equal(t, 0, feedback.Confidence)
	assert.Equal(t, "No answer provided.", feedback.Feedback)
	require.Len(t, feedback.ImprovementTips, 1)
}

func TestAnalyzeAnswer_BriefAnswerClarity(t *testing.T) {
	feedback := AnalyzeAnswer("Tell me about yourself.", answerOfWords(29))

	assert.Equal(t, 3, feedback.Clarity)
	assert.Contains(t, feedback.ImprovementTips, "Elaborate more on your experience and skills.")
}

func TestAnalyzeAnswer_GoodLengthClarity(t *testing.T) {
	feedback := AnalyzeAnswer("Tell me about yourself.", answerOfWords(30))
	assert.Equal(t, 8, feedback.Clarity)
}

func TestAnalyzeAnswer_UpperBoundaryClarity(t *testing.T) {
	assert.Equal(t, 8, AnalyzeAnswer("q", answerOfWords(300)).Clarity)
	assert.Equal(t, 6, AnalyzeAnswer("q", answerOfWords(301)).Clarity)
}

func TestAnalyzeAnswer_RelevanceDefaultWhenQuestionHasNoKeywords(t *testing.T) {
	feedback := AnalyzeAnswer("To the and in?", answerOfWords(40))
	assert.Equal(t, 5, feedback.Relevance)
}

func TestAnalyzeAnswer_RelevanceFullOverlap(t *testing.T) {
	answer := "I used python and docker extensively. " + answerOfWords(30)
	feedback := AnalyzeAnswer("python docker", answer)
	assert.Equal(t, 10, feedback.Relevance)
}

func TestAnalyzeAnswer_LowRelevanceTip(t *testing.T) {
	feedback := AnalyzeAnswer("kubernetes terraform ansible prometheus", answerOfWords(40))

	assert.Less(t, feedback.Relevance, 5)
	assert.Contains(t, feedback.ImprovementTips,
		"Your answer doesn't fully address the question. Try to focus more on what was asked.")
}

func TestAnalyzeAnswer_RelevanceHalfRoundsToEven(t *testing.T) {
	// One of four question keywords matched scales to 2.5, which rounds to
	// the even 2, not 3.
	answer := "I deployed kubernetes clusters. " + answerOfWords(10)
	feedback := AnalyzeAnswer("kubernetes terraform ansible prometheus", answer)

	assert.Equal(t, 2, feedback.Relevance)
}

func TestAnalyzeAnswer_ConfidenceBoostersCapped(t *testing.T) {
	answer := "I am confident I accomplished a successful rollout and achieved strong results after I led and managed the effort. " +
		answerOfWords(20)
	feedback := AnalyzeAnswer("q", answer)

	// Base 7 plus boosters capped at 3.
	assert.Equal(t, 10, feedback.Confidence)
}

func TestAnalyzeAnswer_ConfidenceDetractorsCapped(t *testing.T) {
	answer := "Maybe I could try this, perhaps it might possibly work, not sure. " + answerOfWords(25)
	feedback := AnalyzeAnswer("q", answer)

	// Base 7 minus detractors capped at 4.
	assert.Equal(t, 3, feedback.Confidence)
	assert.Contains(t, feedback.ImprovementTips,
		"Try to avoid uncertain phrases like 'maybe', 'perhaps', or 'I think'.")
}

func TestAnalyzeAnswer_NarrativeBands(t *testing.T) {
	// Clarity 8, relevance 10, confidence 10 gives overall 9.33.
	excellent := AnalyzeAnswer("python docker",
		"I am confident I accomplished and achieved a successful python and docker rollout. "+answerOfWords(25))
	assert.True(t, strings.HasPrefix(excellent.Feedback, "Excellent answer! "), excellent.Feedback)

	// Clarity 3, relevance low, confidence 7 lands below 6.
	poor := AnalyzeAnswer("kubernetes terraform ansible", answerOfWords(10))
	assert.True(t, strings.HasPrefix(poor.Feedback, "Your answer needs improvement. "), poor.Feedback)
}

func TestAnalyzeAnswer_OverallScoreIsAxisMean(t *testing.T) {
	feedback := AnalyzeAnswer("To the and in?", answerOfWords(40))

	expected := float64(feedback.Clarity+feedback.Relevance+feedback.Confidence) / 3.0
	assert.InDelta(t, expected, feedback.OverallScore(), 0.0001)
}
