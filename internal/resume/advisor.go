package resume

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// DefaultSuggestTimeout bounds a single model call.
const DefaultSuggestTimeout = 30 * time.Second

// LLMAdvisor suggests profile improvements with a language model. Every
// response is schema-validated before use; any failure, from a transport
// error to a malformed payload, discards the response and substitutes the
// keyword-diff suggestions instead. Callers always get a usable result and
// never an error.
type LLMAdvisor struct {
	client  llm.Client
	timeout time.Duration
}

// NewLLMAdvisor creates an advisor backed by the given client. A
// non-positive timeout uses DefaultSuggestTimeout.
func NewLLMAdvisor(client llm.Client, timeout time.Duration) *LLMAdvisor {
	if timeout <= 0 {
		timeout = DefaultSuggestTimeout
	}
	return &LLMAdvisor{client: client, timeout: timeout}
}

// improvementsPayload mirrors the improvements schema.
type improvementsPayload struct {
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
}

// Suggest asks the model for gap suggestions against the job description.
// Invalid responses fall back to the keyword diff.
func (a *LLMAdvisor) Suggest(ctx context.Context, profileText, jobText string) *types.ResumeImprovements {
	prompt, err := prompts.Format("improve-resume", jobText, profileText)
	if err != nil {
		return keywords.SuggestImprovements(profileText, jobText)
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.GenerateJSON(callCtx, prompt, llm.TierStandard)
	if err != nil {
		return keywords.SuggestImprovements(profileText, jobText)
	}
	if err := schemas.ValidateJSONString(schemas.ImprovementsSchema, raw); err != nil {
		return keywords.SuggestImprovements(profileText, jobText)
	}

	var payload improvementsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return keywords.SuggestImprovements(profileText, jobText)
	}
	if len(payload.Recommendations) == 0 {
		return keywords.SuggestImprovements(profileText, jobText)
	}

	return &types.ResumeImprovements{
		MissingKeywords: payload.MissingKeywords,
		Recommendations: payload.Recommendations,
	}
}
