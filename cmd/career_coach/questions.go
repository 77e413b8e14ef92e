package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/interview"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Select interview questions for a role",
	Long:  "Select interview questions for a role from the built-in catalogs, optionally restricted by type and difficulty, or generated by a language model with --grader llm.",
	RunE:  runQuestions,
}

var (
	questionsRole       string
	questionsType       string
	questionsDifficulty string
	questionsCount      int
	questionsGrader     string
	questionsAsJSON     bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "", "Target role (required)")
	questionsCmd.Flags().StringVar(&questionsType, "type", "", "Question type: technical, behavioral, or hr (all when omitted)")
	questionsCmd.Flags().StringVar(&questionsDifficulty, "difficulty", "", "Difficulty tier (uses the flat role banks when omitted)")
	questionsCmd.Flags().IntVarP(&questionsCount, "count", "n", interview.DefaultQuestionCount, "Number of questions")
	questionsCmd.Flags().StringVar(&questionsGrader, "grader", config.GraderHeuristic, "Question source: heuristic or llm")
	questionsCmd.Flags().BoolVar(&questionsAsJSON, "json", false, "Print the questions as JSON")

	questionsCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	var questionTypes []types.QuestionType
	if questionsType != "" {
		questionTypes = append(questionTypes, types.QuestionType(questionsType))
	}

	if questionsGrader == config.GraderLLM {
		client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey())
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		grader := interview.NewLLMGrader(client, nil, 0)
		difficulty := types.Difficulty(questionsDifficulty)
		if questionsDifficulty == "" {
			difficulty = types.DifficultyIntermediate
		}
		questions := grader.GenerateQuestions(cmd.Context(), questionsRole, difficulty, questionTypes, questionsCount)
		return printQuestions(questions)
	}

	if questionsDifficulty != "" {
		questions := interview.SelectByDifficulty(questionsRole, types.Difficulty(questionsDifficulty), questionTypes, questionsCount, nil)
		return printQuestions(questions)
	}

	mode := types.QuestionType(questionsType)
	selected := interview.SelectQuestions(questionsRole, mode, questionsCount, nil)
	questions := make([]types.Question, 0, len(selected))
	for _, text := range selected {
		questions = append(questions, types.Question{Text: text, Type: mode})
	}
	return printQuestions(questions)
}

func printQuestions(questions []types.Question) error {
	if questionsAsJSON {
		return writeJSON(questions)
	}
	for i, q := range questions {
		if q.Type != "" {
			fmt.Fprintf(os.Stdout, "%d. [%s] %s\n", i+1, q.Type, q.Text)
		} else {
			fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, q.Text)
		}
	}
	return nil
}
