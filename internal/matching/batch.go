package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/types"
)

// BatchCalculateCompatibility scores the full cross product of candidates
// and positions over a bounded worker pool. Results are sorted by overall
// score descending with ties broken by ascending (candidate_id,
// position_id). An empty side yields an empty slice without error. On
// cancellation the pairs already scored are returned, sorted, along with
// the context error.
func (s *Service) BatchCalculateCompatibility(ctx context.Context, candidates []types.Candidate, positions []types.Position) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, 0, len(candidates)*len(positions))
	if len(candidates) == 0 || len(positions) == 0 {
		return results, nil
	}

	started := s.now()
	total := len(candidates) * len(positions)
	observability.BatchSize.Observe(float64(total))

	slots := make([]types.MatchResult, total)
	filled := make([]bool, total)

	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for ci := range candidates {
		for pi := range positions {
			idx := ci*len(positions) + pi
			candidate := candidates[ci]
			position := positions[pi]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.CalculateCompatibility(ctx, candidate, position, nil)
				if err != nil {
					return err
				}
				slots[idx] = result
				filled[idx] = true
				return nil
			})
		}
	}
	err := g.Wait()

	for i, ok := range filled {
		if ok {
			results = append(results, slots[i])
		}
	}
	SortResults(results)

	observability.MatchesComputed.WithLabelValues("batch").Add(float64(len(results)))
	observability.MatchDuration.WithLabelValues("batch").Observe(s.now().Sub(started).Seconds())
	return results, err
}

// FindBestMatches scores one candidate against all positions and returns
// those at or above minScore, best first, truncated to limit. A limit of 0
// or less means no truncation.
func (s *Service) FindBestMatches(ctx context.Context, candidate types.Candidate, positions []types.Position, limit int, minScore float64) ([]types.MatchResult, error) {
	results, err := s.BatchCalculateCompatibility(ctx, []types.Candidate{candidate}, positions)
	return selectTop(results, limit, minScore), err
}

// FindBestCandidates scores all candidates against one position and
// returns those at or above minScore, best first, truncated to limit.
func (s *Service) FindBestCandidates(ctx context.Context, position types.Position, candidates []types.Candidate, limit int, minScore float64) ([]types.MatchResult, error) {
	results, err := s.BatchCalculateCompatibility(ctx, candidates, []types.Position{position})
	return selectTop(results, limit, minScore), err
}

// SortResults orders match results by overall score descending, breaking
// ties by ascending candidate then position id so equal scores have a
// stable, scheduler-independent order.
func SortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.CandidateID != b.CandidateID {
			return a.CandidateID < b.CandidateID
		}
		return a.PositionID < b.PositionID
	})
}

func selectTop(sorted []types.MatchResult, limit int, minScore float64) []types.MatchResult {
	kept := make([]types.MatchResult, 0, len(sorted))
	for _, r := range sorted {
		if r.OverallScore >= minScore {
			kept = append(kept, r)
		}
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
