// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumePayload outputs a human-readable summary of a customized
// resume.
func (p *Printer) PrintResumePayload(payload *types.ResumePayload) {
	if payload == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:       %s\n", payload.JobTitle))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", payload.Template))
	sb.WriteString(fmt.Sprintf("Match:     %.2f%%\n", payload.MatchScore))

	if len(payload.Keywords) > 0 {
		sb.WriteString("\nJob Keywords:\n")
		count := min(len(payload.Keywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", payload.Keywords[i]))
		}
		if len(payload.Keywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(payload.Keywords)-maxItemsToShow))
		}
	}

	if len(payload.Experience) > 0 {
		sb.WriteString("\nExperience (most relevant first):\n")
		count := min(len(payload.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := payload.Experience[i]
			sb.WriteString(fmt.Sprintf("  #%d  %s", i+1, exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("CUSTOMIZED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovements outputs missing keywords and recommendations.
func (p *Printer) PrintImprovements(improvements *types.ResumeImprovements) {
	if improvements == nil {
		return
	}

	var sb strings.Builder
	if len(improvements.MissingKeywords) > 0 {
		sb.WriteString("Missing Keywords:\n")
		for _, kw := range improvements.MissingKeywords {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Recommendations:\n")
	for _, rec := range improvements.Recommendations {
		sb.WriteString(fmt.Sprintf("  • %s\n", rec))
	}

	p.printBox("RESUME IMPROVEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs three-axis answer feedback.
func (p *Printer) PrintFeedback(feedback *types.AnswerFeedback) {
	if feedback == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Clarity:     %d/10\n", feedback.Clarity))
	sb.WriteString(fmt.Sprintf("Relevance:   %d/10\n", feedback.Relevance))
	sb.WriteString(fmt.Sprintf("Confidence:  %d/10\n", feedback.Confidence))
	sb.WriteString(fmt.Sprintf("Overall:     %.1f/10\n\n", feedback.OverallScore()))
	sb.WriteString(feedback.Feedback)
	if len(feedback.ImprovementTips) > 0 {
		sb.WriteString("\n\nTips:\n")
		for _, tip := range feedback.ImprovementTips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox("ANSWER FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGradedFeedback outputs analysis-style feedback with strengths and
// improvements.
func (p *Printer) PrintGradedFeedback(feedback *types.GradedFeedback) {
	if feedback == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f/10\n\n", feedback.Score))
	sb.WriteString(feedback.Analysis)
	sb.WriteString("\n\nStrengths:\n")
	for _, s := range feedback.Strengths {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	sb.WriteString("\nImprovements:\n")
	for _, s := range feedback.Improvements {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}

	p.printBox("GRADED ANSWER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs an interview session summary.
func (p *Printer) PrintSummary(summary *types.InterviewSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", summary.Role))
	sb.WriteString(fmt.Sprintf("Answered:  %d/%d\n", summary.QuestionsAnswered, summary.NumQuestions))
	sb.WriteString(fmt.Sprintf("Score:     %.1f/10\n\n", summary.OverallScore))
	sb.WriteString(summary.OverallFeedback)

	if len(summary.Strengths) > 0 {
		sb.WriteString("\n\nStrengths:\n")
		for _, s := range summary.Strengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}
	if len(summary.AreasForImprovement) > 0 {
		sb.WriteString("\nAreas for Improvement:\n")
		for _, s := range summary.AreasForImprovement {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("INTERVIEW SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs personalized job and hackathon
// recommendations.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs (%d):\n", len(recs.Jobs)))
	for i, job := range recs.Jobs {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(recs.Jobs)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s @ %s (%.1f%%)\n", job.Title, job.Company, job.MatchScore))
	}

	sb.WriteString(fmt.Sprintf("\nHackathons (%d):\n", len(recs.Hackathons)))
	for i, h := range recs.Hackathons {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(recs.Hackathons)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", h.Name, h.StartDate.Format("2006-01-02")))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
