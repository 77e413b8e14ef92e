package interview

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func newTestSimulator() *Simulator {
	return NewSimulator("software developer", types.QuestionHR, rand.New(rand.NewSource(42)))
}

func TestSimulator_StartSelectsQuestions(t *testing.T) {
	sim := newTestSimulator()
	questions := sim.Start(3)

	require.Len(t, questions, 3)
	assert.Equal(t, 3, sim.Remaining())
}

func TestSimulator_CurrentQuestionBeforeStart(t *testing.T) {
	sim := newTestSimulator()
	_, err := sim.CurrentQuestion()
	assert.ErrorIs(t, err, ErrSessionNotStarted)
}

func TestSimulator_SubmitAnswerAdvances(t *testing.T) {
	sim := newTestSimulator()
	questions := sim.Start(2)

	first, err := sim.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, questions[0], first)

	feedback, err := sim.SubmitAnswer("I am confident this answer covers the question " + strings.Repeat("thoroughly ", 25))
	require.NoError(t, err)
	require.NotNil(t, feedback)

	second, err := sim.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, questions[1], second)
	assert.Equal(t, 1, sim.Remaining())
}

func TestSimulator_SubmitAfterAllQuestions(t *testing.T) {
	sim := newTestSimulator()
	sim.Start(1)

	_, err := sim.SubmitAnswer("an answer")
	require.NoError(t, err)

	_, err = sim.SubmitAnswer("another answer")
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSimulator_CompleteWithoutStart(t *testing.T) {
	sim := newTestSimulator()
	_, err := sim.Complete()
	assert.ErrorIs(t, err, ErrSessionNotStarted)
}

func TestSimulator_CompleteWithNoAnswers(t *testing.T) {
	sim := newTestSimulator()
	sim.Start(3)

	summary, err := sim.Complete()
	require.NoError(t, err)

	assert.Equal(t, 0, summary.QuestionsAnswered)
	assert.Equal(t, 3, summary.NumQuestions)
	assert.Equal(t, 0.0, summary.OverallScore)
	assert.Contains(t, summary.OverallFeedback, "No questions were answered")
}

func TestSimulator_CompleteSummarizesAnswers(t *testing.T) {
	sim := newTestSimulator()
	sim.Start(2)

	answer := "I am confident I accomplished and achieved successful results when I led the project " +
		strings.Repeat("with strong delivery detail ", 10)
	_, err := sim.SubmitAnswer(answer)
	require.NoError(t, err)
	_, err = sim.SubmitAnswer(answer)
	require.NoError(t, err)

	summary, err := sim.Complete()
	require.NoError(t, err)

	assert.Equal(t, "software developer", summary.Role)
	assert.Equal(t, string(types.QuestionHR), summary.Mode)
	assert.Equal(t, 2, summary.QuestionsAnswered)
	assert.Len(t, summary.QuestionsAndAnswers, 2)
	assert.Greater(t, summary.OverallScore, 0.0)
	assert.NotEmpty(t, summary.OverallFeedback)
	assert.NotEmpty(t, append(summary.Strengths, summary.AreasForImprovement...))
}

func TestSimulator_AxisAveragesSplitStrengthsAndWeaknesses(t *testing.T) {
	sim := newTestSimulator()
	sim.Start(1)

	// A confident, well-sized answer: clarity and confidence land at 7 or
	// above, keyword overlap with the question is unlikely.
	_, err := sim.SubmitAnswer("I am confident I accomplished and achieved successful outcomes " +
		strings.Repeat("in my previous delivery work ", 10))
	require.NoError(t, err)

	summary, err := sim.Complete()
	require.NoError(t, err)

	joined := strings.Join(summary.Strengths, " ")
	assert.Contains(t, joined, "confidence")
}
