package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/interview"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade an interview answer",
	Long:  "Grade a single interview answer. The default grader scores clarity, relevance and confidence; --freeform applies holistic content rules instead, and --grader llm asks a language model with a deterministic fallback.",
	RunE:  runGrade,
}

var (
	gradeQuestion   string
	gradeAnswer     string
	gradeAnswerFile string
	gradeType       string
	gradeDifficulty string
	gradeGrader     string
	gradeFreeform   bool
	gradeAsJSON     bool
)

func init() {
	gradeCmd.Flags().StringVarP(&gradeQuestion, "question", "q", "", "The interview question (required)")
	gradeCmd.Flags().StringVarP(&gradeAnswer, "answer", "a", "", "The candidate's answer")
	gradeCmd.Flags().StringVar(&gradeAnswerFile, "answer-file", "", "Path to a file containing the answer")
	gradeCmd.Flags().StringVar(&gradeType, "type", string(types.QuestionBehavioral), "Question type: technical, behavioral, or hr")
	gradeCmd.Flags().StringVar(&gradeDifficulty, "difficulty", string(types.DifficultyIntermediate), "Difficulty: beginner, intermediate, advanced, or expert")
	gradeCmd.Flags().StringVar(&gradeGrader, "grader", config.GraderHeuristic, "Grader to use: heuristic or llm")
	gradeCmd.Flags().BoolVar(&gradeFreeform, "freeform", false, "Use the holistic content grader instead of the three-axis grader")
	gradeCmd.Flags().BoolVar(&gradeAsJSON, "json", false, "Print the feedback as JSON")

	gradeCmd.MarkFlagRequired("question")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	answer := gradeAnswer
	if gradeAnswerFile != "" {
		data, err := os.ReadFile(gradeAnswerFile)
		if err != nil {
			return fmt.Errorf("failed to read answer file %s: %w", gradeAnswerFile, err)
		}
		answer = string(data)
	}

	printer := observability.NewPrinter(os.Stdout)

	switch {
	case gradeGrader == config.GraderLLM:
		client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey())
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		grader := interview.NewLLMGrader(client, nil, 0)
		question := types.Question{Text: gradeQuestion, Type: types.QuestionType(gradeType)}
		feedback := grader.Grade(cmd.Context(), question, answer, types.Difficulty(gradeDifficulty))
		if gradeAsJSON {
			return writeJSON(feedback)
		}
		printer.PrintGradedFeedback(feedback)

	case gradeFreeform:
		text, score := interview.GradeFreeform(gradeQuestion, answer)
		result := struct {
			Feedback string  `json:"feedback"`
			Score    float64 `json:"score"`
		}{Feedback: text, Score: score}
		if gradeAsJSON {
			return writeJSON(result)
		}
		fmt.Fprintf(os.Stdout, "Score: %.1f/10\n%s\n", score, text)

	default:
		feedback := interview.AnalyzeAnswer(gradeQuestion, answer)
		if gradeAsJSON {
			return writeJSON(feedback)
		}
		printer.PrintFeedback(feedback)
	}

	return nil
}
