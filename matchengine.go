// Package matchengine scores candidate/position compatibility. It wraps the
// internal scoring service and strategy ensemble behind a single Engine so
// callers embed matching without touching the internal packages.
package matchengine

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/ensemble"
	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/matching"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/travel"
	"github.com/jonathan/match-engine/internal/types"
)

// Domain types re-exported so embedding callers never import internal
// packages.
type (
	Candidate      = types.Candidate
	Position       = types.Position
	MatchResult    = types.MatchResult
	Insight        = types.Insight
	StrategyUsage  = types.StrategyUsage
	StrategyHealth = types.StrategyHealth
)

// TravelTimeProvider resolves commute minutes between two locations. The
// second return reports whether a route is known.
type TravelTimeProvider = scoring.TravelTimeProvider

// Weights is a per-criterion weight vector. Zero-valued fields carry no
// weight; the vector is normalized before use.
type Weights = scoring.Weights

// HybridResult is the combined outcome of an ensemble execution.
type HybridResult = ensemble.HybridResult

// ScoringStrategy is implemented by anything that can score a pair.
type ScoringStrategy = ensemble.ScoringStrategy

// Strategy names registered by default.
const (
	StrategyWeighted    = ensemble.StrategyWeighted
	StrategySkillsFirst = ensemble.StrategySkillsFirst
	StrategyBaseline    = ensemble.StrategyBaseline
)

// Options configures an Engine. The zero value is usable: a nop logger, no
// commute table and the three deterministic strategies at equal weight.
type Options struct {
	// Logger receives structured events. nil disables logging.
	Logger *zap.Logger
	// Travel resolves commute times for location scoring. nil means no
	// route is ever known and commute checks fall back to city/country
	// comparison.
	Travel TravelTimeProvider
	// Workers caps the batch scoring worker pool. 0 means one worker per
	// CPU.
	Workers int
	// StrategyWeights overrides the ensemble weight of the default
	// strategies, keyed by strategy name. Missing names keep weight 1.
	StrategyWeights map[string]float64
}

// Engine is the top-level entry point: direct scoring plus the strategy
// ensemble. Safe for concurrent use.
type Engine struct {
	service *matching.Service
	manager *ensemble.Manager
}

// New builds an Engine with the deterministic strategies registered.
func New(opts Options) *Engine {
	logger := logging.OrNop(opts.Logger)

	provider := opts.Travel
	if provider == nil {
		provider = travel.NewStaticProvider()
	}

	service := matching.NewService(provider, logger)
	service.SetWorkers(opts.Workers)
	manager := ensemble.NewManager(logger)

	weight := func(name string) float64 {
		if w, ok := opts.StrategyWeights[name]; ok {
			return w
		}
		return 1.0
	}
	manager.Register(ensemble.NewWeightedStrategy(service), weight(StrategyWeighted))
	manager.Register(ensemble.NewSkillsFirstStrategy(service), weight(StrategySkillsFirst))
	manager.Register(ensemble.NewBaselineStrategy(service), weight(StrategyBaseline))

	return &Engine{service: service, manager: manager}
}

// MatchOne scores a single candidate/position pair. A nil weights override
// uses the adaptive seniority-based vector.
func (e *Engine) MatchOne(ctx context.Context, candidate Candidate, position Position, weights *Weights) (MatchResult, error) {
	return e.service.CalculateCompatibility(ctx, candidate, position, weights)
}

// MatchBatch scores the full cross product of candidates and positions,
// ordered best match first.
func (e *Engine) MatchBatch(ctx context.Context, candidates []Candidate, positions []Position) ([]MatchResult, error) {
	return e.service.BatchCalculateCompatibility(ctx, candidates, positions)
}

// FindBestMatches ranks positions for one candidate. limit <= 0 means no
// limit; minScore filters out weaker matches.
func (e *Engine) FindBestMatches(ctx context.Context, candidate Candidate, positions []Position, limit int, minScore float64) ([]MatchResult, error) {
	return e.service.FindBestMatches(ctx, candidate, positions, limit, minScore)
}

// FindBestCandidates ranks candidates for one position.
func (e *Engine) FindBestCandidates(ctx context.Context, position Position, candidates []Candidate, limit int, minScore float64) ([]MatchResult, error) {
	return e.service.FindBestCandidates(ctx, position, candidates, limit, minScore)
}

// ExecuteHybrid runs the named strategies and combines the survivors into a
// consensus-adjusted result. An empty name list runs every registered
// strategy.
func (e *Engine) ExecuteHybrid(ctx context.Context, names []string, candidate Candidate, position Position) (*HybridResult, error) {
	return e.manager.ExecuteHybrid(ctx, names, candidate, position)
}

// RegisterStrategy adds or replaces a strategy in the ensemble. A weight of
// 0 or less registers with weight 1.
func (e *Engine) RegisterStrategy(strategy ScoringStrategy, weight float64) {
	e.manager.Register(strategy, weight)
}

// Strategies returns the registered strategy names in sorted order.
func (e *Engine) Strategies() []string {
	return e.manager.Strategies()
}

// GetUsageStats returns a snapshot of per-strategy execution counters.
func (e *Engine) GetUsageStats() map[string]StrategyUsage {
	return e.manager.GetUsageStats()
}

// HealthCheck smoke-tests every registered strategy against a fixed pair.
func (e *Engine) HealthCheck(ctx context.Context) map[string]StrategyHealth {
	return e.manager.HealthCheck(ctx)
}
