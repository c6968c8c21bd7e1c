package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestExperienceScore_WithinRange(t *testing.T) {
	r, err := types.BetweenYears(3, 6)
	require.NoError(t, err)

	assert.Equal(t, 1.0, ExperienceScore(3, &r))
	assert.Equal(t, 1.0, ExperienceScore(4.5, &r))
	assert.Equal(t, 1.0, ExperienceScore(6, &r))
}

func TestExperienceScore_BelowMinimum(t *testing.T) {
	r, err := types.AtLeastYears(5)
	require.NoError(t, err)

	// One year short drops the score to 0.8.
	assert.InDelta(t, 0.8, ExperienceScore(4, &r), 1e-9)
	assert.InDelta(t, 0.6, ExperienceScore(3, &r), 1e-9)
}

func TestExperienceScore_SixYearsShortHitsFloor(t *testing.T) {
	r, err := types.AtLeastYears(6)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, ExperienceScore(0, &r), 1e-9)
}

func TestExperienceScore_BelowMinimumFloor(t *testing.T) {
	r, err := types.AtLeastYears(10)
	require.NoError(t, err)

	assert.Equal(t, belowMinFloor, ExperienceScore(0, &r))
	assert.Equal(t, belowMinFloor, ExperienceScore(4, &r))
}

func TestExperienceScore_AboveMaximum(t *testing.T) {
	r, err := types.BetweenYears(2, 5)
	require.NoError(t, err)

	assert.InDelta(t, 0.97, ExperienceScore(6, &r), 1e-9)
	assert.InDelta(t, 0.85, ExperienceScore(10, &r), 1e-9)
	// Far past the maximum settles on the soft floor.
	assert.Equal(t, aboveMaxFloor, ExperienceScore(40, &r))
}

func TestExperienceScore_OpenEndedRangeNeverPenalizesSurplus(t *testing.T) {
	r, err := types.AtLeastYears(3)
	require.NoError(t, err)

	assert.Equal(t, 1.0, ExperienceScore(30, &r))
}

func TestExperienceScore_UnspecifiedRequirement(t *testing.T) {
	assert.Equal(t, unspecifiedExperienceScore, ExperienceScore(4, nil))
}
