package opportunities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func testJobs() []types.JobListing {
	return []types.JobListing{
		{Title: "Frontend Developer", Company: "WebFront", Location: "New York, NY", JobType: "full-time",
			Description: "Building interfaces with javascript and react"},
		{Title: "Backend Developer", Company: "CloudScale", Location: "Remote", JobType: "remote",
			Description: "python services with docker and kubernetes"},
		{Title: "Data Scientist", Company: "AILabs", Location: "Austin, TX", JobType: "full-time",
			Description: "machine learning models in python"},
	}
}

func testHackathons() []types.Hackathon {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return []types.Hackathon{
		{Name: "AIHack 3", Location: "Online", IsRemote: true, SkillLevel: "advanced", TeamSize: "both",
			Description: "artificial intelligence solutions", StartDate: base.AddDate(0, 0, 20)},
		{Name: "CodeFest 1", Location: "Austin, TX", IsRemote: false, SkillLevel: "beginner", TeamSize: "team",
			Description: "education technology weekend", StartDate: base.AddDate(0, 0, 5)},
		{Name: "DataDive 7", Location: "Boston, MA", IsRemote: false, SkillLevel: "intermediate", TeamSize: "individual",
			Description: "healthcare data challenge", StartDate: base.AddDate(0, 0, 10)},
	}
}

func testProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{Summary: "Backend engineer"},
		Skills:       []string{"python", "docker", "kubernetes"},
	}
}

func TestSearchJobs_NoFilterReturnsAll(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	jobs := finder.SearchJobs(JobFilter{}, nil)
	assert.Len(t, jobs, 3)
}

func TestSearchJobs_FilterByJobType(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	jobs := finder.SearchJobs(JobFilter{JobType: "remote"}, nil)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Developer", jobs[0].Title)
}

func TestSearchJobs_FilterByLocationSubstring(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	jobs := finder.SearchJobs(JobFilter{Location: "austin"}, nil)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Scientist", jobs[0].Title)
}

func TestSearchJobs_FilterByKeyword(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	jobs := finder.SearchJobs(JobFilter{Keywords: []string{"python"}}, nil)

	assert.Len(t, jobs, 2)
}

func TestSearchJobs_ProfileScoresAndSorts(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	jobs := finder.SearchJobs(JobFilter{}, testProfile())

	require.Len(t, jobs, 3)
	assert.Equal(t, "Backend Developer", jobs[0].Title)
	for i := 1; i < len(jobs); i++ {
		assert.GreaterOrEqual(t, jobs[i-1].MatchScore, jobs[i].MatchScore)
	}
}

func TestSearchJobs_CompanyNamesCountTowardMatch(t *testing.T) {
	profile := &types.Profile{
		Experience: []types.Experience{{Title: "Engineer", Company: "CloudScale"}},
	}
	jobs := []types.JobListing{
		{Title: "Platform Engineer", JobType: "full-time",
			Description: "Work at CloudScale on internal tooling"},
	}
	finder := NewFinderWithCatalogs(jobs, nil)

	got := finder.SearchJobs(JobFilter{}, profile)

	require.Len(t, got, 1)
	assert.Greater(t, got[0].MatchScore, 0.0)
}

func TestSearchJobs_DoesNotMutateCatalog(t *testing.T) {
	jobs := testJobs()
	finder := NewFinderWithCatalogs(jobs, nil)

	finder.SearchJobs(JobFilter{}, testProfile())

	for _, job := range jobs {
		assert.Equal(t, 0.0, job.MatchScore)
	}
}

func TestSearchHackathons_SortedByStartDate(t *testing.T) {
	finder := NewFinderWithCatalogs(nil, testHackathons())
	hackathons := finder.SearchHackathons(HackathonFilter{})

	require.Len(t, hackathons, 3)
	assert.Equal(t, "CodeFest 1", hackathons[0].Name)
	assert.Equal(t, "DataDive 7", hackathons[1].Name)
	assert.Equal(t, "AIHack 3", hackathons[2].Name)
}

func TestSearchHackathons_FilterByRemote(t *testing.T) {
	finder := NewFinderWithCatalogs(nil, testHackathons())
	remote := true
	hackathons := finder.SearchHackathons(HackathonFilter{Remote: &remote})

	require.Len(t, hackathons, 1)
	assert.Equal(t, "AIHack 3", hackathons[0].Name)
}

func TestSearchHackathons_TeamSizeBothMatchesAnyRequest(t *testing.T) {
	finder := NewFinderWithCatalogs(nil, testHackathons())
	hackathons := finder.SearchHackathons(HackathonFilter{TeamSize: "individual"})

	names := make([]string, 0, len(hackathons))
	for _, h := range hackathons {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "DataDive 7")
	assert.Contains(t, names, "AIHack 3")
	assert.NotContains(t, names, "CodeFest 1")
}

func TestSearchHackathons_FilterBySkillLevelAndKeyword(t *testing.T) {
	finder := NewFinderWithCatalogs(nil, testHackathons())

	bySkill := finder.SearchHackathons(HackathonFilter{SkillLevel: "beginner"})
	require.Len(t, bySkill, 1)
	assert.Equal(t, "CodeFest 1", bySkill[0].Name)

	byKeyword := finder.SearchHackathons(HackathonFilter{Keywords: []string{"healthcare"}})
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "DataDive 7", byKeyword[0].Name)
}

func TestRecommendations_LimitsBothKinds(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	recs, err := finder.Recommendations(context.Background(), testProfile(), 2)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(recs.Jobs), 2)
	assert.LessOrEqual(t, len(recs.Hackathons), 2)
	require.NotEmpty(t, recs.Jobs)
	assert.Equal(t, "Backend Developer", recs.Jobs[0].Title)
}

func TestRecommendations_NilProfile(t *testing.T) {
	finder := NewFinderWithCatalogs(testJobs(), testHackathons())
	recs, err := finder.Recommendations(context.Background(), nil, 5)

	require.NoError(t, err)
	assert.NotNil(t, recs)
}
