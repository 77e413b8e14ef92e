package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-coach/internal/types"
)

func TestPrintResumePayload_ShowsScoreAndKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumePayload(&types.ResumePayload{
		JobTitle:   "Backend Engineer",
		Template:   "professional",
		MatchScore: 66.67,
		Keywords:   []string{"python", "docker", "kubernetes"},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "CloudScale"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CUSTOMIZED RESUME")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "• python")
	assert.Contains(t, out, "#1  Engineer @ CloudScale")
}

func TestPrintResumePayload_TruncatesLongKeywordLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	keywords := []string{"one", "two", "three", "four", "five", "six", "seven"}
	p.PrintResumePayload(&types.ResumePayload{Keywords: keywords})

	out := buf.String()
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "• seven")
}

func TestPrintResumePayload_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumePayload(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	out := buf.String()
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestPrintImprovements_ListsKeywordsAndRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImprovements(&types.ResumeImprovements{
		MissingKeywords: []string{"terraform"},
		Recommendations: []string{"Add cloud infrastructure experience"},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME IMPROVEMENTS")
	assert.Contains(t, out, "• terraform")
	assert.Contains(t, out, "• Add cloud infrastructure experience")
}

func TestPrintFeedback_ShowsAxesAndTips(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeedback(&types.AnswerFeedback{
		Clarity:         8,
		Relevance:       6,
		Confidence:      7,
		Feedback:        "Good answer overall.",
		ImprovementTips: []string{"Reference the question directly"},
	})

	out := buf.String()
	assert.Contains(t, out, "Clarity:     8/10")
	assert.Contains(t, out, "Relevance:   6/10")
	assert.Contains(t, out, "Confidence:  7/10")
	assert.Contains(t, out, "Overall:     7.0/10")
	assert.Contains(t, out, "• Reference the question directly")
}

func TestPrintGradedFeedback_ShowsScoreAndLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGradedFeedback(&types.GradedFeedback{
		Score:        8.5,
		Analysis:     "Strong technical depth.",
		Strengths:    []string{"Concrete examples"},
		Improvements: []string{"Mention testing"},
	})

	out := buf.String()
	assert.Contains(t, out, "Score: 8.5/10")
	assert.Contains(t, out, "Strong technical depth.")
	assert.Contains(t, out, "• Concrete examples")
	assert.Contains(t, out, "• Mention testing")
}

func TestPrintSummary_ShowsCountsAndAreas(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(&types.InterviewSummary{
		Role:                "software developer",
		NumQuestions:        5,
		QuestionsAnswered:   3,
		OverallScore:        6.4,
		OverallFeedback:     "Good performance.",
		Strengths:           []string{"Strong clarity in your answers"},
		AreasForImprovement: []string{"Work on the confidence of your answers"},
	})

	out := buf.String()
	assert.Contains(t, out, "Answered:  3/5")
	assert.Contains(t, out, "Score:     6.4/10")
	assert.Contains(t, out, "Strong clarity in your answers")
	assert.Contains(t, out, "Work on the confidence of your")
}

func TestPrintRecommendations_ShowsBothKinds(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(&types.Recommendations{
		Jobs: []types.JobListing{
			{Title: "ML Engineer", Company: "AILabs", MatchScore: 42.5},
		},
		Hackathons: []types.Hackathon{
			{Name: "DataDive 7", StartDate: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Jobs (1):")
	assert.Contains(t, out, "ML Engineer @ AILabs (42.5%)")
	assert.Contains(t, out, "Hackathons (1):")
	assert.Contains(t, out, "DataDive 7 (2026-09-11)")
}
