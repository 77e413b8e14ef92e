package interview

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// Session state errors.
var (
	// ErrSessionNotStarted is returned by operations that need an active
	// session.
	ErrSessionNotStarted = errors.New("interview session has not been started")
	// ErrSessionFinished is returned when all questions have been consumed.
	ErrSessionFinished = errors.New("interview session has no questions remaining")
)

// DefaultQuestionCount is the number of questions a session asks when the
// caller does not specify one.
const DefaultQuestionCount = 5

// Simulator runs a mock interview: it asks questions one at a time, grades
// each submitted answer, and summarizes the session on completion. It is
// not safe for concurrent use.
type Simulator struct {
	role string
	mode types.QuestionType
	rng  *rand.Rand

	questions []string
	records   []types.QARecord
	current   int
	startTime time.Time
	started   bool

	now func() time.Time
}

// NewSimulator creates a simulator for the given role and interview mode.
// A nil rng gets a time-seeded source.
func NewSimulator(role string, mode types.QuestionType, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{
		role: role,
		mode: mode,
		rng:  rng,
		now:  time.Now,
	}
}

// Start selects the session's questions and begins the interview. A
// non-positive count uses DefaultQuestionCount. Starting an already
// started session resets it.
func (s *Simulator) Start(count int) []string {
	if count <= 0 {
		count = DefaultQuestionCount
	}
	s.questions = SelectQuestions(s.role, s.mode, count, s.rng)
	s.records = make([]types.QARecord, 0, len(s.questions))
	s.current = 0
	s.startTime = s.now()
	s.started = true
	return append([]string(nil), s.questions...)
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Simulator) CurrentQuestion() (string, error) {
	if !s.started {
		return "", ErrSessionNotStarted
	}
	if s.current >= len(s.questions) {
		return "", ErrSessionFinished
	}
	return s.questions[s.current], nil
}

// SubmitAnswer grades the answer to the current question, records it, and
// advances to the next question.
func (s *Simulator) SubmitAnswer(answer string) (*types.AnswerFeedback, error) {
	question, err := s.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	feedback := AnalyzeAnswer(question, answer)
	s.records = append(s.records, types.QARecord{
		Question: question,
		Answer:   answer,
		Feedback: feedback,
	})
	s.current++
	return feedback, nil
}

// Remaining returns the number of unanswered questions.
func (s *Simulator) Remaining() int {
	if !s.started {
		return 0
	}
	return len(s.questions) - s.current
}

// Complete ends the session and returns the summary. A session may be
// completed early; only answered questions contribute to the scores.
func (s *Simulator) Complete() (*types.InterviewSummary, error) {
	if !s.started {
		return nil, ErrSessionNotStarted
	}

	end := s.now()
	summary := &types.InterviewSummary{
		Role:                s.role,
		Mode:                string(s.mode),
		StartTime:           s.startTime,
		EndTime:             end,
		DurationMinutes:     end.Sub(s.startTime).Minutes(),
		NumQuestions:        len(s.questions),
		QuestionsAnswered:   len(s.records),
		QuestionsAndAnswers: append([]types.QARecord(nil), s.records...),
	}

	if len(s.records) == 0 {
		summary.OverallFeedback = "No questions were answered during this session."
		s.started = false
		return summary, nil
	}

	var claritySum, relevanceSum, confidenceSum int
	for _, rec := range s.records {
		claritySum += rec.Feedback.Clarity
		relevanceSum += rec.Feedback.Relevance
		confidenceSum += rec.Feedback.Confidence
	}
	n := float64(len(s.records))
	clarityAvg := float64(claritySum) / n
	relevanceAvg := float64(relevanceSum) / n
	confidenceAvg := float64(confidenceSum) / n
	summary.OverallScore = (clarityAvg + relevanceAvg + confidenceAvg) / 3.0

	switch {
	case summary.OverallScore >= 8:
		summary.OverallFeedback = fmt.Sprintf("Excellent performance! You scored %.1f out of 10.", summary.OverallScore)
	case summary.OverallScore >= 6:
		summary.OverallFeedback = fmt.Sprintf("Good performance. You scored %.1f out of 10.", summary.OverallScore)
	default:
		summary.OverallFeedback = fmt.Sprintf("You scored %.1f out of 10. More practice will help you improve.", summary.OverallScore)
	}

	axes := []struct {
		name string
		avg  float64
	}{
		{"clarity", clarityAvg},
		{"relevance", relevanceAvg},
		{"confidence", confidenceAvg},
	}
	for _, axis := range axes {
		if axis.avg >= 7 {
			summary.Strengths = append(summary.Strengths, fmt.Sprintf("Strong %s in your answers", axis.name))
		} else {
			summary.AreasForImprovement = append(summary.AreasForImprovement, fmt.Sprintf("Work on the %s of your answers", axis.name))
		}
	}

	s.started = false
	return summary, nil
}
