package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/interview"
	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an interactive mock interview",
	Long:  "Run a mock interview session: questions are asked one at a time, answers are read from stdin and graded on clarity, relevance and confidence, and the session ends with an overall summary.",
	RunE:  runSimulate,
}

var (
	simulateRole  string
	simulateType  string
	simulateCount int
)

func init() {
	simulateCmd.Flags().StringVarP(&simulateRole, "role", "r", "", "Target role (required)")
	simulateCmd.Flags().StringVar(&simulateType, "type", string(types.QuestionHR), "Interview type: technical, behavioral, or hr")
	simulateCmd.Flags().IntVarP(&simulateCount, "count", "n", interview.DefaultQuestionCount, "Number of questions")

	simulateCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	sim := interview.NewSimulator(simulateRole, types.QuestionType(simulateType), nil)
	questions := sim.Start(simulateCount)

	fmt.Fprintf(os.Stdout, "Mock interview for %s (%d questions). Press enter after each answer; an empty answer skips the question.\n\n", simulateRole, len(questions))

	printer := observability.NewPrinter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for i := 0; i < len(questions); i++ {
		question, err := sim.CurrentQuestion()
		if err != nil {
			break
		}
		fmt.Fprintf(os.Stdout, "Q%d: %s\n> ", i+1, question)

		if !scanner.Scan() {
			break
		}
		answer := scanner.Text()

		feedback, err := sim.SubmitAnswer(answer)
		if err != nil {
			return fmt.Errorf("failed to grade answer: %w", err)
		}
		printer.PrintFeedback(feedback)
		fmt.Fprintln(os.Stdout)
	}

	summary, err := sim.Complete()
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	printer.PrintSummary(summary)
	return nil
}
