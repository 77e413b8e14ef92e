package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/resume"
	"github.com/jonathan/career-coach/internal/types"
)

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Suggest resume improvements for a job listing",
	Long:  "Compare a candidate profile against a job description and report the job's keywords missing from the profile along with targeted recommendations. With --advisor llm a language model writes the suggestions, falling back to the keyword diff on any failure.",
	RunE:  runImprove,
}

var (
	improveProfile string
	improveJob     string
	improveJobURL  string
	improveAdvisor string
	improveAsJSON  bool
)

func init() {
	improveCmd.Flags().StringVarP(&improveProfile, "profile", "p", "", "Path to candidate profile JSON (required)")
	improveCmd.Flags().StringVarP(&improveJob, "job", "j", "", "Path to job description text file")
	improveCmd.Flags().StringVarP(&improveJobURL, "job-url", "u", "", "URL to fetch the job listing from")
	improveCmd.Flags().StringVar(&improveAdvisor, "advisor", config.GraderHeuristic, "Advisor to use: heuristic or llm")
	improveCmd.Flags().BoolVar(&improveAsJSON, "json", false, "Print the suggestions as JSON")

	improveCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(improveCmd)
}

func runImprove(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(improveProfile)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(cmd.Context(), improveJob, improveJobURL)
	if err != nil {
		return err
	}

	profileText := resume.FlattenProfile(profile)

	var improvements *types.ResumeImprovements
	if improveAdvisor == config.GraderLLM {
		client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey())
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		improvements = resume.NewLLMAdvisor(client, 0).Suggest(cmd.Context(), profileText, jobText)
	} else {
		improvements = keywords.SuggestImprovements(profileText, jobText)
	}

	if improveAsJSON {
		return writeJSON(improvements)
	}
	observability.NewPrinter(os.Stdout).PrintImprovements(improvements)
	return nil
}
