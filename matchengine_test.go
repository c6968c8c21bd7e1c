package matchengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func sampleCandidate() types.Candidate {
	return types.Candidate{
		ID:              "cand-1",
		Name:            "Ada",
		Skills:          types.SkillSetFromNames("Python", "Django", "PostgreSQL"),
		Location:        types.Location{City: "Lyon", Country: "France"},
		ExperienceYears: 5,
		Education:       types.EducationBachelor,
	}
}

func samplePosition(t *testing.T) types.Position {
	t.Helper()
	experience, err := types.BetweenYears(3, 8)
	require.NoError(t, err)
	return types.Position{
		ID:             "pos-1",
		Title:          "Backend Engineer",
		Company:        "Acme",
		RequiredSkills: types.SkillSetFromNames("Python", "Django"),
		Location:       types.Location{City: "Lyon", Country: "France"},
		Experience:     &experience,
		Education:      types.EducationBachelor,
		OffersRemote:   true,
	}
}

func TestEngine_MatchOne(t *testing.T) {
	engine := New(Options{})

	result, err := engine.MatchOne(context.Background(), sampleCandidate(), samplePosition(t), nil)
	require.NoError(t, err)

	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "pos-1", result.PositionID)
	assert.Greater(t, result.OverallScore, 0.5)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
	assert.NotEmpty(t, result.Insights)
}

func TestEngine_MatchOne_WeightOverride(t *testing.T) {
	engine := New(Options{})
	candidate := sampleCandidate()
	position := samplePosition(t)

	skillsOnly := &Weights{Skills: 1}
	result, err := engine.MatchOne(context.Background(), candidate, position, skillsOnly)
	require.NoError(t, err)

	// With all weight on skills the overall equals the skills criterion.
	assert.InDelta(t, result.DetailedScores.Skills, result.OverallScore, 1e-9)
}

func TestEngine_MatchBatch(t *testing.T) {
	engine := New(Options{})

	other := sampleCandidate()
	other.ID = "cand-2"
	other.Skills = types.SkillSetFromNames("Photoshop")

	results, err := engine.MatchBatch(context.Background(),
		[]types.Candidate{sampleCandidate(), other},
		[]types.Position{samplePosition(t)},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Ordered best first.
	assert.Equal(t, "cand-1", results[0].CandidateID)
	assert.GreaterOrEqual(t, results[0].OverallScore, results[1].OverallScore)
}

func TestEngine_FindBestMatches_LimitAndMinScore(t *testing.T) {
	engine := New(Options{})

	strong := samplePosition(t)
	weak := types.Position{
		ID:             "pos-weak",
		RequiredSkills: types.SkillSetFromNames("COBOL", "Fortran"),
	}

	results, err := engine.FindBestMatches(context.Background(), sampleCandidate(),
		[]types.Position{weak, strong}, 1, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pos-1", results[0].PositionID)

	// A prohibitive floor filters everything out.
	results, err = engine.FindBestMatches(context.Background(), sampleCandidate(),
		[]types.Position{weak}, 0, 0.99)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEngine_FindBestCandidates(t *testing.T) {
	engine := New(Options{})

	weak := types.Candidate{ID: "cand-weak", Skills: types.SkillSetFromNames("Photoshop")}

	results, err := engine.FindBestCandidates(context.Background(), samplePosition(t),
		[]types.Candidate{weak, sampleCandidate()}, 0, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "cand-1", results[0].CandidateID)
}

func TestEngine_ExecuteHybrid(t *testing.T) {
	engine := New(Options{})

	result, err := engine.ExecuteHybrid(context.Background(), nil, sampleCandidate(), samplePosition(t))
	require.NoError(t, err)

	assert.NotEmpty(t, result.ExecutionID)
	assert.Len(t, result.StrategyScores, 3)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
	assert.GreaterOrEqual(t, result.OverallScore, result.WeightedMean)
}

func TestEngine_DefaultStrategies(t *testing.T) {
	engine := New(Options{})

	assert.Equal(t, []string{StrategyBaseline, StrategySkillsFirst, StrategyWeighted}, engine.Strategies())
}

type constantStrategy struct {
	name  string
	score float64
}

func (s *constantStrategy) Name() string { return s.name }

func (s *constantStrategy) CalculateCompatibility(_ context.Context, candidate types.Candidate, position types.Position) (*types.MatchResult, error) {
	return &types.MatchResult{
		CandidateID:  candidate.ID,
		PositionID:   position.ID,
		OverallScore: s.score,
	}, nil
}

func TestEngine_RegisterStrategy(t *testing.T) {
	engine := New(Options{})
	engine.RegisterStrategy(&constantStrategy{name: "constant", score: 0.5}, 1.0)

	assert.Contains(t, engine.Strategies(), "constant")

	result, err := engine.ExecuteHybrid(context.Background(), []string{"constant"},
		sampleCandidate(), samplePosition(t))
	require.NoError(t, err)
	// Single unanimous strategy: mean plus the full consensus bonus.
	assert.InDelta(t, 0.6, result.OverallScore, 1e-9)
}

func TestEngine_UsageStatsAndHealth(t *testing.T) {
	engine := New(Options{})

	_, err := engine.ExecuteHybrid(context.Background(), nil, sampleCandidate(), samplePosition(t))
	require.NoError(t, err)

	stats := engine.GetUsageStats()
	require.Len(t, stats, 3)
	assert.Equal(t, int64(1), stats[StrategyWeighted].Calls)

	health := engine.HealthCheck(context.Background())
	require.Len(t, health, 3)
	for name, h := range health {
		assert.True(t, h.Healthy, name)
	}

	// Health checks never move the usage counters.
	assert.Equal(t, int64(1), engine.GetUsageStats()[StrategyWeighted].Calls)
}
