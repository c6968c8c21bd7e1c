package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func TestBatch_EmptySidesReturnEmptySlice(t *testing.T) {
	svc := newTestService()

	results, err := svc.BatchCalculateCompatibility(context.Background(), nil, []types.Position{lyonBackendPosition(t)})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)

	results, err = svc.BatchCalculateCompatibility(context.Background(), []types.Candidate{lyonBackendCandidate()}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestBatch_FullCrossProductSortedByScore(t *testing.T) {
	svc := newTestService()

	strong := lyonBackendCandidate()
	weak := types.Candidate{ID: "cand-9", ExperienceYears: 0, Location: types.Location{City: "Tallinn", Country: "Estonia"}}
	positions := []types.Position{lyonBackendPosition(t), {ID: "pos-2", RequiredSkills: types.SkillSetFromNames("Rust", "Kafka")}}

	results, err := svc.BatchCalculateCompatibility(context.Background(), []types.Candidate{weak, strong}, positions)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
	assert.Equal(t, "cand-1", results[0].CandidateID)
	assert.Equal(t, "pos-1", results[0].PositionID)
}

func TestBatch_TiesBreakOnIDs(t *testing.T) {
	svc := newTestService()

	// Two identical candidates under different ids score identically
	// against every position.
	a := lyonBackendCandidate()
	a.ID = "cand-b"
	b := lyonBackendCandidate()
	b.ID = "cand-a"

	results, err := svc.BatchCalculateCompatibility(context.Background(), []types.Candidate{a, b}, []types.Position{lyonBackendPosition(t)})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "cand-a", results[0].CandidateID)
	assert.Equal(t, "cand-b", results[1].CandidateID)
}

func TestBatch_CancelledContextReturnsPartial(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := svc.BatchCalculateCompatibility(ctx, []types.Candidate{lyonBackendCandidate()}, []types.Position{lyonBackendPosition(t)})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestFindBestMatches_FiltersAndTruncates(t *testing.T) {
	svc := newTestService()
	candidate := lyonBackendCandidate()

	positions := []types.Position{
		lyonBackendPosition(t),
		{ID: "pos-remote", RequiredSkills: types.SkillSetFromNames("Go"), OffersRemote: true},
		{ID: "pos-miss", RequiredSkills: types.SkillSetFromNames("Erlang", "Haskell", "COBOL"), Location: types.Location{City: "Osaka", Country: "Japan"}},
	}

	results, err := svc.FindBestMatches(context.Background(), candidate, positions, 2, 0.6)
	require.NoError(t, err)

	require.LessOrEqual(t, len(results), 2)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "cand-1", r.CandidateID)
		assert.GreaterOrEqual(t, r.OverallScore, 0.6)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
}

func TestFindBestMatches_MinScoreCanEmpty(t *testing.T) {
	svc := newTestService()
	results, err := svc.FindBestMatches(context.Background(), lyonBackendCandidate(), []types.Position{lyonBackendPosition(t)}, 5, 0.999)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindBestCandidates_RanksCandidates(t *testing.T) {
	svc := newTestService()
	position := lyonBackendPosition(t)

	junior := types.Candidate{
		ID:              "cand-junior",
		Skills:          types.SkillSetFromNames("Go"),
		Location:        types.Location{City: "Lyon", Country: "France"},
		ExperienceYears: 1,
	}

	results, err := svc.FindBestCandidates(context.Background(), position, []types.Candidate{junior, lyonBackendCandidate()}, 0, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "cand-1", results[0].CandidateID)
	assert.Equal(t, "cand-junior", results[1].CandidateID)
}

func TestSortResults_Ordering(t *testing.T) {
	results := []types.MatchResult{
		{CandidateID: "c2", PositionID: "p1", OverallScore: 0.5},
		{CandidateID: "c1", PositionID: "p2", OverallScore: 0.5},
		{CandidateID: "c1", PositionID: "p1", OverallScore: 0.9},
		{CandidateID: "c1", PositionID: "p1", OverallScore: 0.2},
	}

	SortResults(results)

	assert.Equal(t, 0.9, results[0].OverallScore)
	assert.Equal(t, "c1", results[1].CandidateID)
	assert.Equal(t, "p2", results[1].PositionID)
	assert.Equal(t, "c2", results[2].CandidateID)
	assert.Equal(t, 0.2, results[3].OverallScore)
}
