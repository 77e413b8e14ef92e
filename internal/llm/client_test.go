package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_BareJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(`{"a": 1}`))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_PlainFence(t *testing.T) {
	in := "```\n[1, 2, 3]\n```"
	assert.Equal(t, `[1, 2, 3]`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	in := "  \n```json\n{\"a\": 1}\n```  \n"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_UnclosedFence(t *testing.T) {
	in := "```json\n{\"a\": 1}"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(in))
}

func TestConfig_GetModelConfiguredTier(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestConfig_GetModelFallsBackToStandard(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "model-s"}}
	assert.Equal(t, "model-s", cfg.GetModel(TierAdvanced))
}

func TestConfig_GetModelFallsBackToLite(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "model-l"}}
	assert.Equal(t, "model-l", cfg.GetModel(TierAdvanced))
}

func TestConfig_GetModelNoModelsConfigured(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "", cfg.GetModel(TierStandard))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}
