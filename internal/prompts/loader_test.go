package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	text, err := Get("grade-answer")
	require.NoError(t, err)
	assert.Contains(t, text, "Question type: %s")
	assert.Contains(t, text, "score")
}

func TestGet_UnknownPrompt(t *testing.T) {
	_, err := Get("no-such-prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_KnownPromptDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		text := MustGet("generate-questions")
		assert.NotEmpty(t, text)
	})
}

func TestMustGet_UnknownPromptPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("no-such-prompt")
	})
}

func TestFormat_FillsPlaceholders(t *testing.T) {
	prompt, err := Format("generate-questions", "software engineer", "intermediate", 5, "technical, behavioral")
	require.NoError(t, err)

	assert.Contains(t, prompt, "software engineer")
	assert.Contains(t, prompt, "intermediate")
	assert.Contains(t, prompt, "exactly 5 interview questions")
	assert.Contains(t, prompt, "technical, behavioral")
	assert.False(t, strings.Contains(prompt, "%s"))
	assert.False(t, strings.Contains(prompt, "%d"))
}

func TestFormat_UnknownPrompt(t *testing.T) {
	_, err := Format("no-such-prompt", "arg")
	assert.Error(t, err)
}

func TestGet_AllShippedPromptsPresent(t *testing.T) {
	for _, name := range []string{"grade-answer", "generate-questions", "improve-resume"} {
		_, err := Get(name)
		assert.NoError(t, err, "missing prompt %s", name)
	}
}
