package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/opportunities"
	"github.com/jonathan/career-coach/internal/types"
)

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities",
	Short: "Search jobs and hackathons",
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search job listings",
	Long:  "Search job listings by type, location and keywords. With a profile, each result is scored against it and results are ordered by match.",
	RunE:  runJobs,
}

var hackathonsCmd = &cobra.Command{
	Use:   "hackathons",
	Short: "Search hackathons",
	Long:  "Search hackathons by location, remote availability, skill level, team size and keywords, ordered by start date.",
	RunE:  runHackathons,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Personalized job and hackathon recommendations",
	Long:  "Build a personalized recommendation set from a candidate profile: jobs scored against the full profile and hackathons matched on its top keywords.",
	RunE:  runRecommend,
}

var (
	oppProfile    string
	oppKeywords   string
	oppJobType    string
	oppLocation   string
	oppRemote     bool
	oppSkillLevel string
	oppTeamSize   string
	oppLimit      int
	oppAsJSON     bool
)

func init() {
	jobsCmd.Flags().StringVarP(&oppProfile, "profile", "p", "", "Path to candidate profile JSON for match scoring")
	jobsCmd.Flags().StringVarP(&oppKeywords, "keywords", "k", "", "Comma-separated keywords")
	jobsCmd.Flags().StringVar(&oppJobType, "job-type", "", "Job type: remote, full-time, part-time, or internship")
	jobsCmd.Flags().StringVarP(&oppLocation, "location", "l", "", "Location substring")
	jobsCmd.Flags().BoolVar(&oppAsJSON, "json", false, "Print results as JSON")

	hackathonsCmd.Flags().StringVarP(&oppKeywords, "keywords", "k", "", "Comma-separated keywords")
	hackathonsCmd.Flags().StringVarP(&oppLocation, "location", "l", "", "Location substring")
	hackathonsCmd.Flags().BoolVar(&oppRemote, "remote", false, "Only remote hackathons")
	hackathonsCmd.Flags().StringVar(&oppSkillLevel, "skill-level", "", "Skill level: beginner, intermediate, or advanced")
	hackathonsCmd.Flags().StringVar(&oppTeamSize, "team-size", "", "Team size: individual or team")
	hackathonsCmd.Flags().BoolVar(&oppAsJSON, "json", false, "Print results as JSON")

	recommendCmd.Flags().StringVarP(&oppProfile, "profile", "p", "", "Path to candidate profile JSON (required)")
	recommendCmd.Flags().IntVarP(&oppLimit, "limit", "n", opportunities.DefaultRecommendationLimit, "Maximum results per listing kind")
	recommendCmd.Flags().BoolVar(&oppAsJSON, "json", false, "Print results as JSON")
	recommendCmd.MarkFlagRequired("profile")

	opportunitiesCmd.AddCommand(jobsCmd, hackathonsCmd, recommendCmd)
	rootCmd.AddCommand(opportunitiesCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	var profile *types.Profile
	if oppProfile != "" {
		loaded, err := loadProfile(oppProfile)
		if err != nil {
			return err
		}
		profile = loaded
	}

	finder := opportunities.NewFinder(nil)
	jobs := finder.SearchJobs(opportunities.JobFilter{
		Keywords: splitKeywords(oppKeywords),
		JobType:  oppJobType,
		Location: oppLocation,
	}, profile)

	if oppAsJSON {
		return writeJSON(jobs)
	}
	for _, job := range jobs {
		if profile != nil {
			fmt.Fprintf(os.Stdout, "%-25s %-15s %-20s %5.1f%%\n", job.Title, job.Company, job.Location, job.MatchScore)
		} else {
			fmt.Fprintf(os.Stdout, "%-25s %-15s %s\n", job.Title, job.Company, job.Location)
		}
	}
	return nil
}

func runHackathons(cmd *cobra.Command, args []string) error {
	filter := opportunities.HackathonFilter{
		Keywords:   splitKeywords(oppKeywords),
		Location:   oppLocation,
		SkillLevel: oppSkillLevel,
		TeamSize:   oppTeamSize,
	}
	if cmd.Flags().Changed("remote") {
		filter.Remote = &oppRemote
	}

	finder := opportunities.NewFinder(nil)
	hackathons := finder.SearchHackathons(filter)

	if oppAsJSON {
		return writeJSON(hackathons)
	}
	for _, h := range hackathons {
		fmt.Fprintf(os.Stdout, "%-18s %-20s %s\n", h.Name, h.Location, h.StartDate.Format("2006-01-02"))
	}
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(oppProfile)
	if err != nil {
		return err
	}

	finder := opportunities.NewFinder(nil)
	recs, err := finder.Recommendations(cmd.Context(), profile, oppLimit)
	if err != nil {
		return fmt.Errorf("failed to build recommendations: %w", err)
	}

	if oppAsJSON {
		return writeJSON(recs)
	}
	observability.NewPrinter(os.Stdout).PrintRecommendations(recs)
	return nil
}

func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
