package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/resume"
)

var customizeCmd = &cobra.Command{
	Use:   "customize",
	Short: "Tailor a resume to a job listing",
	Long:  "Build a customized resume payload from a candidate profile and a job description: extract job keywords, score the fit, reorder experience and projects by relevance, and partition skills.",
	RunE:  runCustomize,
}

var (
	customizeProfile  string
	customizeJob      string
	customizeJobURL   string
	customizeJobTitle string
	customizeTemplate string
	customizeAsJSON   bool
)

func init() {
	customizeCmd.Flags().StringVarP(&customizeProfile, "profile", "p", "", "Path to candidate profile JSON (required)")
	customizeCmd.Flags().StringVarP(&customizeJob, "job", "j", "", "Path to job description text file")
	customizeCmd.Flags().StringVarP(&customizeJobURL, "job-url", "u", "", "URL to fetch the job listing from")
	customizeCmd.Flags().StringVar(&customizeJobTitle, "job-title", "", "Title of the target job")
	customizeCmd.Flags().StringVarP(&customizeTemplate, "template", "t", "", "Resume template name")
	customizeCmd.Flags().BoolVar(&customizeAsJSON, "json", false, "Print the full payload as JSON")

	customizeCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(customizeCmd)
}

func runCustomize(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(customizeProfile)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(cmd.Context(), customizeJob, customizeJobURL)
	if err != nil {
		return err
	}

	template := customizeTemplate
	if template == "" {
		template = appConfig.Template
	}

	payload, err := resume.Customize(profile, customizeJobTitle, jobText, template)
	if err != nil {
		return fmt.Errorf("failed to customize resume: %w", err)
	}

	if customizeAsJSON {
		return writeJSON(payload)
	}
	observability.NewPrinter(os.Stdout).PrintResumePayload(payload)
	return nil
}
