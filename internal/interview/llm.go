package interview

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// AnswerGrader produces structured feedback for a single interview answer.
type AnswerGrader interface {
	Grade(ctx context.Context, question types.Question, answer string, difficulty types.Difficulty) *types.GradedFeedback
	GenerateQuestions(ctx context.Context, role string, difficulty types.Difficulty, questionTypes []types.QuestionType, count int) []types.Question
}

// HeuristicGrader grades answers with the deterministic fallback rules and
// samples questions from the built-in catalogs. It never errors and needs
// no external services.
type HeuristicGrader struct {
	rng *rand.Rand
}

// NewHeuristicGrader creates a heuristic grader. A nil rng gets a
// time-seeded source.
func NewHeuristicGrader(rng *rand.Rand) *HeuristicGrader {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HeuristicGrader{rng: rng}
}

// Grade scores the answer with the fallback heuristics.
func (g *HeuristicGrader) Grade(_ context.Context, question types.Question, answer string, difficulty types.Difficulty) *types.GradedFeedback {
	return FallbackFeedback(question, answer, difficulty)
}

// GenerateQuestions samples questions from the built-in catalogs.
func (g *HeuristicGrader) GenerateQuestions(_ context.Context, role string, difficulty types.Difficulty, questionTypes []types.QuestionType, count int) []types.Question {
	return SelectByDifficulty(role, difficulty, questionTypes, count, g.rng)
}

// LLMGrader grades answers and generates questions with a language model.
// Every model response is schema-validated before use; any failure, from a
// transport error to a single out-of-range score, discards the response and
// substitutes the heuristic result instead. Callers always get a usable
// payload and never an error.
type LLMGrader struct {
	client   llm.Client
	fallback *HeuristicGrader
	timeout  time.Duration
}

// DefaultGradeTimeout bounds a single model call.
const DefaultGradeTimeout = 30 * time.Second

// NewLLMGrader creates a grader backed by the given client. A
// non-positive timeout uses DefaultGradeTimeout.
func NewLLMGrader(client llm.Client, rng *rand.Rand, timeout time.Duration) *LLMGrader {
	if timeout <= 0 {
		timeout = DefaultGradeTimeout
	}
	return &LLMGrader{
		client:   client,
		fallback: NewHeuristicGrader(rng),
		timeout:  timeout,
	}
}

// gradedPayload mirrors the feedback schema.
type gradedPayload struct {
	Analysis     string   `json:"analysis"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Score        float64  `json:"score"`
}

// Grade asks the model to evaluate the answer. Invalid responses fall back
// to the heuristic grader.
func (g *LLMGrader) Grade(ctx context.Context, question types.Question, answer string, difficulty types.Difficulty) *types.GradedFeedback {
	prompt, err := prompts.Format("grade-answer", question.Type, difficulty, question.Text, answer)
	if err != nil {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateJSON(callCtx, prompt, llm.TierStandard)
	if err != nil {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}
	if err := schemas.ValidateJSONString(schemas.FeedbackSchema, raw); err != nil {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}

	var payload gradedPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}
	if payload.Analysis == "" || len(payload.Strengths) == 0 || len(payload.Improvements) == 0 {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}
	if payload.Score < 0 || payload.Score > 10 {
		return g.fallback.Grade(ctx, question, answer, difficulty)
	}

	return &types.GradedFeedback{
		Analysis:     payload.Analysis,
		Strengths:    payload.Strengths,
		Improvements: payload.Improvements,
		Score:        payload.Score,
	}
}

// questionPayload mirrors one entry of the questions schema.
type questionPayload struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// GenerateQuestions asks the model for interview questions. Invalid
// responses fall back to the built-in catalogs.
func (g *LLMGrader) GenerateQuestions(ctx context.Context, role string, difficulty types.Difficulty, questionTypes []types.QuestionType, count int) []types.Question {
	typeNames := make([]string, 0, len(questionTypes))
	for _, t := range questionTypes {
		typeNames = append(typeNames, string(t))
	}
	if len(typeNames) == 0 {
		typeNames = []string{string(types.QuestionTechnical), string(types.QuestionBehavioral), string(types.QuestionHR)}
	}

	prompt, err := prompts.Format("generate-questions", role, difficulty, count, strings.Join(typeNames, ", "))
	if err != nil {
		return g.fallback.GenerateQuestions(ctx, role, difficulty, questionTypes, count)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateJSON(callCtx, prompt, llm.TierLite)
	if err != nil {
		return g.fallback.GenerateQuestions(ctx, role, difficulty, questionTypes, count)
	}
	if err := schemas.ValidateJSONString(schemas.QuestionsSchema, raw); err != nil {
		return g.fallback.GenerateQuestions(ctx, role, difficulty, questionTypes, count)
	}

	var payload []questionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return g.fallback.GenerateQuestions(ctx, role, difficulty, questionTypes, count)
	}

	questions := make([]types.Question, 0, len(payload))
	for _, p := range payload {
		questions = append(questions, types.Question{
			Text: p.Text,
			Type: types.QuestionType(p.Type),
		})
	}
	if len(questions) == 0 {
		return g.fallback.GenerateQuestions(ctx, role, difficulty, questionTypes, count)
	}
	if len(questions) > count && count > 0 {
		questions = questions[:count]
	}
	return questions
}
