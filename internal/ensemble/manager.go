package ensemble

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/types"
)

// Consensus bonus constants, expressed in percentage points. Scores are
// lifted into the 0-100 range before the variance is taken, so unanimous
// strategies earn the full bonus and widely disagreeing ones earn none.
const (
	consensusMaxBonusPP      = 10.0
	consensusVarianceDivisor = 10.0
)

// registration pairs a strategy with its combination weight.
type registration struct {
	strategy ScoringStrategy
	weight   float64
}

// usage accumulates per-strategy execution statistics. Latency is kept as a
// Duration so sub-millisecond runs still add up; snapshots convert to ms.
type usage struct {
	calls    int64
	errors   int64
	latency  time.Duration
	lastUsed time.Time
}

// Manager holds the strategy registry and executes hybrid scoring runs.
// Registration order does not matter; execution order follows the caller's
// name list so results are deterministic.
type Manager struct {
	logger *zap.Logger

	mu         sync.RWMutex
	strategies map[string]registration

	statsMu sync.Mutex
	stats   map[string]*usage
}

// NewManager returns an empty manager. logger may be nil.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger:     logging.OrNop(logger),
		strategies: make(map[string]registration),
		stats:      make(map[string]*usage),
	}
}

// Register adds or replaces a strategy under its own name. A weight of 0 or
// less registers with the default weight 1.0.
func (m *Manager) Register(strategy ScoringStrategy, weight float64) {
	if weight <= 0 {
		weight = 1.0
	}
	m.mu.Lock()
	m.strategies[strategy.Name()] = registration{strategy: strategy, weight: weight}
	m.mu.Unlock()
}

// Strategies returns the registered strategy names in sorted order.
func (m *Manager) Strategies() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.strategies))
	for name := range m.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HybridResult is a MatchResult extended with the combination breakdown:
// which strategies contributed, the weighted mean before the consensus
// bonus, and the bonus itself in percentage points.
type HybridResult struct {
	types.MatchResult
	ExecutionID    string             `json:"execution_id"`
	StrategyScores map[string]float64 `json:"strategy_scores"`
	WeightedMean   float64            `json:"weighted_mean"`
	ConsensusBonus float64            `json:"consensus_bonus_pp"`
}

// ExecuteHybrid runs each named strategy and combines the survivors into one
// consensus-adjusted result. An empty name list runs every registered
// strategy. A failing or panicking strategy is logged, counted in its usage
// stats and excluded from the combination; the call only fails when no
// strategy survives, or when a name was never registered.
func (m *Manager) ExecuteHybrid(ctx context.Context, names []string, candidate types.Candidate, position types.Position) (*HybridResult, error) {
	if len(names) == 0 {
		names = m.Strategies()
	}

	regs := make([]registration, 0, len(names))
	m.mu.RLock()
	for _, name := range names {
		reg, ok := m.strategies[name]
		if !ok {
			m.mu.RUnlock()
			return nil, &UnknownStrategyError{Name: name}
		}
		regs = append(regs, reg)
	}
	m.mu.RUnlock()

	executionID := uuid.New().String()

	type outcome struct {
		name   string
		weight float64
		result *types.MatchResult
	}
	survivors := make([]outcome, 0, len(regs))
	failures := make([]*StrategyExecutionError, 0)

	for _, reg := range regs {
		name := reg.strategy.Name()
		result, err := m.execute(ctx, reg.strategy, candidate, position)
		if err != nil {
			execErr := &StrategyExecutionError{Strategy: name, Cause: err}
			failures = append(failures, execErr)
			m.logger.Warn("strategy excluded from hybrid",
				zap.String("execution_id", executionID),
				zap.String("strategy", name),
				zap.Error(err),
			)
			continue
		}
		survivors = append(survivors, outcome{name: name, weight: reg.weight, result: result})
	}

	if len(survivors) == 0 {
		return nil, &AllStrategiesFailedError{Failures: failures}
	}

	scores := make(map[string]float64, len(survivors))
	totalWeight := 0.0
	mean := 0.0
	var detailed types.DetailedScores
	for _, s := range survivors {
		scores[s.name] = s.result.OverallScore
		totalWeight += s.weight
		mean += s.result.OverallScore * s.weight
		detailed.Skills += s.result.DetailedScores.Skills * s.weight
		detailed.Location += s.result.DetailedScores.Location * s.weight
		detailed.Experience += s.result.DetailedScores.Experience * s.weight
		detailed.Education += s.result.DetailedScores.Education * s.weight
		detailed.Preferences += s.result.DetailedScores.Preferences * s.weight
	}
	mean /= totalWeight
	detailed.Skills /= totalWeight
	detailed.Location /= totalWeight
	detailed.Experience /= totalWeight
	detailed.Education /= totalWeight
	detailed.Preferences /= totalWeight

	bonusPP := consensusBonusPP(survivorScores(survivors, func(o outcome) float64 { return o.result.OverallScore }))
	overall := mean + bonusPP/100
	if overall > 1 {
		overall = 1
	}

	// Insights come from the heaviest surviving strategy; ties keep the
	// caller's execution order.
	lead := survivors[0]
	for _, s := range survivors[1:] {
		if s.weight > lead.weight {
			lead = s
		}
	}

	return &HybridResult{
		MatchResult: types.MatchResult{
			CandidateID:    candidate.ID,
			PositionID:     position.ID,
			OverallScore:   overall,
			DetailedScores: detailed,
			Insights:       lead.result.Insights,
			ComputedAt:     time.Now().UTC(),
		},
		ExecutionID:    executionID,
		StrategyScores: scores,
		WeightedMean:   mean,
		ConsensusBonus: bonusPP,
	}, nil
}

// execute runs one strategy with panic recovery and records its usage.
func (m *Manager) execute(ctx context.Context, strategy ScoringStrategy, candidate types.Candidate, position types.Position) (result *types.MatchResult, err error) {
	name := strategy.Name()
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("panic: %v", r)
		}
		elapsed := time.Since(started)
		m.recordUsage(name, elapsed, err)
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		observability.StrategyExecutions.WithLabelValues(name, outcome).Inc()
		observability.StrategyLatency.WithLabelValues(name).Observe(elapsed.Seconds())
	}()

	result, err = strategy.CalculateCompatibility(ctx, candidate, position)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("strategy returned no result")
	}
	return result, nil
}

func (m *Manager) recordUsage(name string, elapsed time.Duration, err error) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	u, ok := m.stats[name]
	if !ok {
		u = &usage{}
		m.stats[name] = u
	}
	u.calls++
	if err != nil {
		u.errors++
	}
	u.latency += elapsed
	u.lastUsed = time.Now().UTC()
}

// GetUsageStats returns a snapshot of per-strategy execution statistics.
func (m *Manager) GetUsageStats() map[string]types.StrategyUsage {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	snapshot := make(map[string]types.StrategyUsage, len(m.stats))
	for name, u := range m.stats {
		stat := types.StrategyUsage{
			Calls:          u.calls,
			Errors:         u.errors,
			TotalLatencyMS: u.latency.Milliseconds(),
		}
		if !u.lastUsed.IsZero() {
			t := u.lastUsed
			stat.LastUsedAt = &t
		}
		snapshot[name] = stat
	}
	return snapshot
}

// consensusBonusPP computes the agreement bonus in percentage points from
// the survivor scores. Scores are scaled to 0-100 first; the bonus shrinks
// with the population variance and never goes negative.
func consensusBonusPP(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	mean := 0.0
	for _, s := range scores {
		mean += s * 100
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		d := s*100 - mean
		variance += d * d
	}
	variance /= float64(len(scores))

	bonus := consensusMaxBonusPP - variance/consensusVarianceDivisor
	if bonus < 0 {
		return 0
	}
	return bonus
}

func survivorScores[T any](items []T, score func(T) float64) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = score(item)
	}
	return out
}
