package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/llm"
)

// fakeAdvisorClient returns a canned response or error for every call.
type fakeAdvisorClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeAdvisorClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAdvisorClient) Close() error { return nil }

const (
	advisorProfileText = "Backend engineer with python and docker experience"
	advisorJobText     = "Looking for terraform and aws expertise to lead our platform team"
)

func TestLLMAdvisor_ValidResponse(t *testing.T) {
	client := &fakeAdvisorClient{response: `{
		"missing_keywords": ["terraform", "aws"],
		"recommendations": ["Add infrastructure-as-code projects to your profile"]
	}`}
	advisor := NewLLMAdvisor(client, 0)

	improvements := advisor.Suggest(context.Background(), advisorProfileText, advisorJobText)

	assert.Equal(t, []string{"terraform", "aws"}, improvements.MissingKeywords)
	require.Len(t, improvements.Recommendations, 1)
	assert.Equal(t, 1, client.calls)
}

func TestLLMAdvisor_ClientErrorFallsBack(t *testing.T) {
	client := &fakeAdvisorClient{err: errors.New("transport failure")}
	advisor := NewLLMAdvisor(client, 0)

	improvements := advisor.Suggest(context.Background(), advisorProfileText, advisorJobText)

	expected := keywords.SuggestImprovements(advisorProfileText, advisorJobText)
	assert.Equal(t, expected, improvements)
}

func TestLLMAdvisor_MalformedJSONFallsBack(t *testing.T) {
	client := &fakeAdvisorClient{response: `{"missing_keywords": ["terr`}
	advisor := NewLLMAdvisor(client, 0)

	improvements := advisor.Suggest(context.Background(), advisorProfileText, advisorJobText)

	expected := keywords.SuggestImprovements(advisorProfileText, advisorJobText)
	assert.Equal(t, expected, improvements)
}

func TestLLMAdvisor_EmptyRecommendationsFallsBack(t *testing.T) {
	client := &fakeAdvisorClient{response: `{
		"missing_keywords": ["terraform"],
		"recommendations": []
	}`}
	advisor := NewLLMAdvisor(client, 0)

	improvements := advisor.Suggest(context.Background(), advisorProfileText, advisorJobText)

	expected := keywords.SuggestImprovements(advisorProfileText, advisorJobText)
	assert.Equal(t, expected, improvements)
}

func TestLLMAdvisor_MissingFieldFallsBack(t *testing.T) {
	client := &fakeAdvisorClient{response: `{"recommendations": ["Only half the shape"]}`}
	advisor := NewLLMAdvisor(client, 0)

	improvements := advisor.Suggest(context.Background(), advisorProfileText, advisorJobText)

	expected := keywords.SuggestImprovements(advisorProfileText, advisorJobText)
	assert.Equal(t, expected, improvements)
}
