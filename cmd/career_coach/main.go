// Package main provides the entry point for the Career Coach CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
)

var configPath string

// appConfig holds file-based defaults merged under CLI flags and env vars.
var appConfig = config.Config{
	Template:      "professional",
	Grader:        config.GraderHeuristic,
	QuestionCount: 5,
}

var rootCmd = &cobra.Command{
	Use:   "career_coach",
	Short: "Career Coach CLI",
	Long:  "Career Coach tailors resumes to job listings, suggests profile improvements, runs mock interviews with graded feedback, and recommends jobs and hackathons.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		appConfig = cfg.MergeWithDefaults(appConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

// apiKey resolves the Gemini API key from the environment, falling back to
// the config file.
func apiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return appConfig.APIKey
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
