package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func sampleProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Summary:  "Backend engineer focused on distributed systems",
		},
		Skills: []string{"Figma", "Python", "Docker"},
		Experience: []types.Experience{
			{Title: "Designer", Description: "UI mockups and prototypes"},
			{Title: "Backend Engineer", Description: "Built python services with docker"},
		},
		Projects: []types.Project{
			{Name: "Portfolio Site", Description: "Static site"},
			{Name: "Deploy Tool", Description: "python docker automation"},
		},
		Education:    []types.Education{{Degree: "BSc", Institution: "State U"}},
		Achievements: []string{"Hackathon winner"},
	}
}

func TestCustomize_EmptyProfile(t *testing.T) {
	_, err := Customize(&types.Profile{}, "Engineer", "python docker", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "profile", verr.Field)
}

func TestCustomize_EmptyJobDescription(t *testing.T) {
	_, err := Customize(sampleProfile(), "Engineer", "   ", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "job_description", verr.Field)
}

func TestCustomize_DefaultTemplate(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, payload.Template)
}

func TestCustomize_ExplicitTemplate(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "modern")
	require.NoError(t, err)
	assert.Equal(t, "modern", payload.Template)
}

func TestCustomize_ReordersExperienceByRelevance(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker services", "")
	require.NoError(t, err)

	require.Len(t, payload.Experience, 2)
	assert.Equal(t, "Backend Engineer", payload.Experience[0].Title)
	assert.Equal(t, "Designer", payload.Experience[1].Title)
}

func TestCustomize_ReordersProjectsByRelevance(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "")
	require.NoError(t, err)

	require.Len(t, payload.Projects, 2)
	assert.Equal(t, "Deploy Tool", payload.Projects[0].Name)
}

func TestCustomize_PartitionsSkills(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Docker", "Figma"}, payload.Skills)
}

func TestCustomize_PassThroughSections(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "")
	require.NoError(t, err)

	assert.Equal(t, "BSc", payload.Education[0].Degree)
	assert.Equal(t, []string{"Hackathon winner"}, payload.Achievements)
}

func TestCustomize_DoesNotMutateProfile(t *testing.T) {
	profile := sampleProfile()

	_, err := Customize(profile, "Engineer", "python docker services", "")
	require.NoError(t, err)

	assert.Equal(t, "Designer", profile.Experience[0].Title)
	assert.Equal(t, []string{"Figma", "Python", "Docker"}, profile.Skills)
	assert.Equal(t, "Portfolio Site", profile.Projects[0].Name)
}

func TestCustomize_SetsMatchScoreAndKeywords(t *testing.T) {
	payload, err := Customize(sampleProfile(), "Engineer", "python docker", "")
	require.NoError(t, err)

	assert.Contains(t, payload.Keywords, "python")
	assert.Contains(t, payload.Keywords, "docker")
	assert.Greater(t, payload.MatchScore, 0.0)
	assert.LessOrEqual(t, payload.MatchScore, 100.0)
}

func TestFlattenProfile_IncludesFreeTextFields(t *testing.T) {
	text := FlattenProfile(sampleProfile())

	assert.Contains(t, text, "distributed systems")
	assert.Contains(t, text, "Python")
	assert.Contains(t, text, "Built python services with docker")
	assert.Contains(t, text, "Deploy Tool")
}

func TestFlattenProfile_EmptyProfile(t *testing.T) {
	assert.Equal(t, "", FlattenProfile(&types.Profile{}))
}
