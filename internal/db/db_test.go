package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestStoredCandidate_ProfileRoundTrip(t *testing.T) {
	// The JSONB profile column must carry the full candidate, including
	// nested value objects, through a marshal/unmarshal cycle.
	expectation, err := types.SalaryAtLeast(60000, "EUR", "year")
	require.NoError(t, err)

	candidate := types.Candidate{
		ID:              "cand-1",
		Name:            "Ada",
		Skills:          types.SkillSetFromNames("Go", "PostgreSQL"),
		Location:        types.Location{City: "Paris", Country: "France"},
		ExperienceYears: 6,
		Education:       types.EducationMaster,
		Preferences: types.Preferences{
			JobTypes:          []string{types.JobTypeFullTime},
			SalaryExpectation: &expectation,
		},
	}

	data, err := json.Marshal(candidate)
	require.NoError(t, err)

	var decoded types.Candidate
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, candidate.ID, decoded.ID)
	assert.Equal(t, candidate.Skills.Names(), decoded.Skills.Names())
	assert.Equal(t, candidate.Education, decoded.Education)
	require.NotNil(t, decoded.Preferences.SalaryExpectation)
	assert.Equal(t, 60000, decoded.Preferences.SalaryExpectation.Min)
}

func TestCandidateFilter_ZeroValueMeansNoFilter(t *testing.T) {
	filter := CandidateFilter{}
	assert.Empty(t, filter.City)
	assert.Zero(t, filter.MinYears)
	assert.Zero(t, filter.Limit)
}
