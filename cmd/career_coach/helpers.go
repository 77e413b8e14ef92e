package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/types"
)

// loadProfile reads and parses a candidate profile JSON file.
func loadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

// loadJobText resolves the job description from a text file or a listing
// URL. Exactly one of the two must be set.
func loadJobText(ctx context.Context, jobFile, jobURL string) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", jobFile, err)
		}
		return ingestion.CleanText(string(data)), nil
	}

	text, err := ingestion.FetchListing(ctx, jobURL, 0)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job listing: %w", err)
	}
	return text, nil
}

// writeJSON pretty-prints v as JSON to stdout.
func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
