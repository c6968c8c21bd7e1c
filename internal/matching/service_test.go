package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
)

func newTestService() *Service {
	return NewService(nil, nil)
}

// lyonBackendCandidate has 4 years of experience, putting it in the
// confirmed seniority bucket.
func lyonBackendCandidate() types.Candidate {
	return types.Candidate{
		ID:              "cand-1",
		Name:            "Ana Silva",
		Skills:          types.SkillSetFromNames("Go", "PostgreSQL"),
		Location:        types.Location{City: "Lyon", Country: "France"},
		ExperienceYears: 4,
		Education:       types.EducationBachelor,
	}
}

func lyonBackendPosition(t *testing.T) types.Position {
	t.Helper()
	exp, err := types.BetweenYears(3, 6)
	require.NoError(t, err)
	return types.Position{
		ID:             "pos-1",
		Title:          "Backend Engineer",
		RequiredSkills: types.SkillSetFromNames("Go", "PostgreSQL"),
		Location:       types.Location{City: "Lyon", Country: "France"},
		Experience:     &exp,
		Education:      types.EducationBachelor,
	}
}

func TestCalculateCompatibility_PinnedPair(t *testing.T) {
	svc := newTestService()
	result, err := svc.CalculateCompatibility(context.Background(), lyonBackendCandidate(), lyonBackendPosition(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "pos-1", result.PositionID)
	assert.Equal(t, 1.0, result.DetailedScores.Skills)
	assert.Equal(t, 1.0, result.DetailedScores.Location)
	assert.Equal(t, 1.0, result.DetailedScores.Experience)
	assert.Equal(t, 1.0, result.DetailedScores.Education)
	// No preferences stated on either side: (0.6 + 0.7 + 0.7 + 0.7) / 4.
	assert.InDelta(t, 0.675, result.DetailedScores.Preferences, 1e-9)

	// Confirmed bucket: 0.30/0.15/0.20/0.15/0.20.
	assert.InDelta(t, 0.80+0.675*0.20, result.OverallScore, 1e-9)
	assert.False(t, result.ComputedAt.IsZero())
}

func TestCalculateCompatibility_WeightedAverageIdentity(t *testing.T) {
	svc := newTestService()
	candidate := lyonBackendCandidate()
	position := lyonBackendPosition(t)

	result, err := svc.CalculateCompatibility(context.Background(), candidate, position, nil)
	require.NoError(t, err)

	weights := scoring.WeightsForSeniority(candidate.Seniority())
	assert.InDelta(t, weights.Apply(result.DetailedScores), result.OverallScore, 1e-9)
}

func TestCalculateCompatibility_OverrideIsNormalized(t *testing.T) {
	svc := newTestService()
	override := &scoring.Weights{Skills: 2, Location: 1, Experience: 1, Education: 1, Preferences: 1}

	result, err := svc.CalculateCompatibility(context.Background(), lyonBackendCandidate(), lyonBackendPosition(t), override)
	require.NoError(t, err)

	normalized, err := override.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, normalized.Apply(result.DetailedScores), result.OverallScore, 1e-9)
}

func TestCalculateCompatibility_RejectsBadOverride(t *testing.T) {
	svc := newTestService()
	override := &scoring.Weights{Skills: -1, Location: 1, Experience: 1, Education: 1, Preferences: 1}

	_, err := svc.CalculateCompatibility(context.Background(), lyonBackendCandidate(), lyonBackendPosition(t), override)

	var invalidErr *scoring.InvalidWeightConfigurationError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestCalculateCompatibility_Deterministic(t *testing.T) {
	svc := newTestService()
	candidate := lyonBackendCandidate()
	position := lyonBackendPosition(t)

	first, err := svc.CalculateCompatibility(context.Background(), candidate, position, nil)
	require.NoError(t, err)
	second, err := svc.CalculateCompatibility(context.Background(), candidate, position, nil)
	require.NoError(t, err)

	first.ComputedAt = time.Time{}
	second.ComputedAt = time.Time{}
	assert.Equal(t, first, second)
}

func TestCalculateCompatibility_AllScoresInRange(t *testing.T) {
	svc := newTestService()
	exp, err := types.AtLeastYears(10)
	require.NoError(t, err)
	salary, err := types.SalaryBetween(30000, 40000, "EUR", types.PeriodYear)
	require.NoError(t, err)
	expectation, err := types.SalaryAtLeast(90000, "EUR", types.PeriodYear)
	require.NoError(t, err)

	candidates := []types.Candidate{
		lyonBackendCandidate(),
		{ID: "cand-2", ExperienceYears: 0},
		{
			ID:              "cand-3",
			Skills:          types.SkillSetFromNames("COBOL"),
			ExperienceYears: 40,
			Education:       types.EducationDoctorate,
			Preferences: types.Preferences{
				SalaryExpectation: &expectation,
				JobTypes:          []string{types.JobTypeContract},
				WorkModes:         []string{types.WorkModeRemote},
			},
		},
	}
	positions := []types.Position{
		lyonBackendPosition(t),
		{ID: "pos-2"},
		{
			ID:             "pos-3",
			RequiredSkills: types.SkillSetFromNames("Go", "Kafka", "Kubernetes", "Terraform"),
			Location:       types.Location{City: "Berlin", Country: "Germany"},
			Experience:     &exp,
			Education:      types.EducationMaster,
			Salary:         &salary,
			Requirements:   types.JobRequirements{JobType: types.JobTypeFullTime, WorkMode: types.WorkModeOnsite},
		},
	}

	for _, c := range candidates {
		for _, p := range positions {
			result, err := svc.CalculateCompatibility(context.Background(), c, p, nil)
			require.NoError(t, err)
			for _, cs := range result.DetailedScores.Ordered() {
				assert.GreaterOrEqual(t, cs.Score, 0.0, "%s/%s %s", c.ID, p.ID, cs.Criterion)
				assert.LessOrEqual(t, cs.Score, 1.0, "%s/%s %s", c.ID, p.ID, cs.Criterion)
			}
			assert.GreaterOrEqual(t, result.OverallScore, 0.0)
			assert.LessOrEqual(t, result.OverallScore, 1.0)
		}
	}
}

func TestChecked_ClampsAndCounts(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, 1.0, svc.checked("skills", 1.5))
	assert.Equal(t, 0.0, svc.checked("skills", -0.2))
	assert.Equal(t, 0.42, svc.checked("skills", 0.42))
}
