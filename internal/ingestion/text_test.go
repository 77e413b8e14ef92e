package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	out := CleanText("first line\r\nsecond line\rthird line")
	assert.Equal(t, "first line\nsecond line\nthird line", out)
}

func TestCleanText_CollapsesInnerSpaces(t *testing.T) {
	out := CleanText("Senior    Backend   Engineer")
	assert.Equal(t, "Senior Backend Engineer", out)
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	out := CleanText("Requirements\n\n\n\n\nResponsibilities")
	assert.Equal(t, "Requirements\n\nResponsibilities", out)
}

func TestCleanText_KeepsBulletIndentation(t *testing.T) {
	out := CleanText("Requirements:\n  - 5 years of Go\n  * Docker experience")
	assert.Equal(t, "Requirements:\n  - 5 years of Go\n  * Docker experience", out)
}

func TestCleanText_HeadingsLoseIndentation(t *testing.T) {
	out := CleanText("   ## About the role\nWe build things")
	assert.Equal(t, "## About the role\nWe build things", out)
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	out := CleanText("line one   \nline two\t\t\n")
	assert.Equal(t, "line one\nline two", out)
}
