package interview

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func TestSelectByDifficulty_DeterministicWithSeed(t *testing.T) {
	a := SelectByDifficulty("software_engineer", types.DifficultyAdvanced, nil, 4, rand.New(rand.NewSource(11)))
	b := SelectByDifficulty("software_engineer", types.DifficultyAdvanced, nil, 4, rand.New(rand.NewSource(11)))

	assert.Equal(t, a, b)
}

func TestSelectByDifficulty_UnknownRoleUsesDefaultCatalog(t *testing.T) {
	questions := SelectByDifficulty("astronaut", types.DifficultyBeginner, nil, 4, rand.New(rand.NewSource(2)))

	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Contains(t, defaultCatalog[types.DifficultyBeginner], q)
	}
}

func TestSelectByDifficulty_FiltersByType(t *testing.T) {
	questions := SelectByDifficulty("software_engineer", types.DifficultyIntermediate,
		[]types.QuestionType{types.QuestionTechnical}, 10, rand.New(rand.NewSource(4)))

	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Equal(t, types.QuestionTechnical, q.Type)
	}
}

func TestSelectByDifficulty_PadsFromDefaultCatalog(t *testing.T) {
	// The data_scientist beginner bank has one behavioral question; the
	// default catalog contributes the rest.
	questions := SelectByDifficulty("data_scientist", types.DifficultyBeginner,
		[]types.QuestionType{types.QuestionBehavioral}, 3, rand.New(rand.NewSource(6)))

	assert.Greater(t, len(questions), 1)
	for _, q := range questions {
		assert.Equal(t, types.QuestionBehavioral, q.Type)
	}
}

func TestSelectByDifficulty_MissingTierFallsBackToDefault(t *testing.T) {
	// data_scientist has no expert tier.
	questions := SelectByDifficulty("data_scientist", types.DifficultyExpert, nil, 4, rand.New(rand.NewSource(8)))

	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Contains(t, defaultCatalog[types.DifficultyExpert], q)
	}
}

func TestSelectByDifficulty_CountClampedToAvailable(t *testing.T) {
	questions := SelectByDifficulty("software_engineer", types.DifficultyExpert, nil, 50, rand.New(rand.NewSource(13)))

	// Role bank plus default catalog padding bounds the total.
	assert.LessOrEqual(t, len(questions), len(roleCatalog["software_engineer"][types.DifficultyExpert])+len(defaultCatalog[types.DifficultyExpert]))
	assert.NotEmpty(t, questions)
}
