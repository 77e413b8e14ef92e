package types

import "time"

// QuestionType classifies interview questions.
type QuestionType string

// Question type constants.
const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
	QuestionHR         QuestionType = "hr"
)

// Difficulty represents an interview difficulty tier.
type Difficulty string

// Difficulty tier constants.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Question is an immutable question bank entry.
type Question struct {
	Text string       `json:"text"`
	Type QuestionType `json:"type"`
}

// AnswerFeedback is the result of the three-axis heuristic grader. Each axis
// is an integer in [0, 10]. Created per submitted answer and never mutated.
type AnswerFeedback struct {
	Clarity         int      `json:"clarity"`
	Relevance       int      `json:"relevance"`
	Confidence      int      `json:"confidence"`
	Feedback        string   `json:"feedback"`
	ImprovementTips []string `json:"improvement_tips"`
}

// OverallScore returns the mean of the three axis scores.
func (f *AnswerFeedback) OverallScore() float64 {
	return float64(f.Clarity+f.Relevance+f.Confidence) / 3.0
}

// GradedFeedback is the richer feedback shape used by the LLM-backed grader
// and its template fallback: free-text analysis plus itemized strengths and
// improvements, scored 0-10.
type GradedFeedback struct {
	Analysis     string   `json:"analysis"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Score        float64  `json:"score"`
}

// QARecord pairs a question with the submitted answer and its feedback.
type QARecord struct {
	Question string          `json:"question"`
	Answer   string          `json:"answer"`
	Feedback *AnswerFeedback `json:"feedback,omitempty"`
}

// InterviewSummary is produced when an interview session completes.
type InterviewSummary struct {
	Role                string     `json:"role"`
	Mode                string     `json:"mode"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             time.Time  `json:"end_time"`
	DurationMinutes     float64    `json:"duration_minutes"`
	NumQuestions        int        `json:"num_questions"`
	QuestionsAnswered   int        `json:"questions_answered"`
	OverallScore        float64    `json:"overall_score"`
	OverallFeedback     string     `json:"overall_feedback"`
	Strengths           []string   `json:"strengths"`
	AreasForImprovement []string   `json:"areas_for_improvement"`
	QuestionsAndAnswers []QARecord `json:"questions_and_answers"`
}
