package opportunities

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMockJobs_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateMockJobs(rand.New(rand.NewSource(99)), now)
	b := GenerateMockJobs(rand.New(rand.NewSource(99)), now)

	assert.Equal(t, a, b)
}

func TestGenerateMockJobs_CatalogShape(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	jobs := GenerateMockJobs(rand.New(rand.NewSource(1)), now)

	require.Len(t, jobs, catalogSize)
	for _, job := range jobs {
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Company)
		assert.NotEmpty(t, job.Description)
		assert.Contains(t, job.Description, job.Title)
		assert.Contains(t, job.URL, "https://example.com/jobs/")
		assert.False(t, job.PostedDate.After(now))
		assert.False(t, job.PostedDate.Before(now.AddDate(0, 0, -30)))
	}
}

func TestGenerateMockHackathons_CatalogShape(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	hackathons := GenerateMockHackathons(rand.New(rand.NewSource(1)), now)

	require.Len(t, hackathons, catalogSize)
	for _, h := range hackathons {
		assert.NotEmpty(t, h.Name)
		assert.NotEmpty(t, h.Organizer)
		assert.True(t, h.EndDate.After(h.StartDate))
		assert.False(t, h.StartDate.Before(now.AddDate(0, 0, -10)))
		assert.False(t, h.StartDate.After(now.AddDate(0, 0, 60)))
		if h.Location == "Online" {
			assert.True(t, h.IsRemote)
		}
	}
}

func TestGenerateMockHackathons_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateMockHackathons(rand.New(rand.NewSource(7)), now)
	b := GenerateMockHackathons(rand.New(rand.NewSource(7)), now)

	assert.Equal(t, a, b)
}
