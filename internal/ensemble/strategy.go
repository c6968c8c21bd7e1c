// Package ensemble runs multiple scoring strategies against the same
// candidate/position pair and combines their scores into a
// consensus-adjusted hybrid result.
package ensemble

import (
	"context"

	"github.com/jonathan/match-engine/internal/matching"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
)

// Built-in strategy names registered by the CLI and server.
const (
	StrategyWeighted    = "weighted"
	StrategySkillsFirst = "skills_first"
	StrategyBaseline    = "baseline"
	StrategySemantic    = "semantic"
)

// ScoringStrategy is anything that can score one candidate against one
// position. Implementations must be safe for concurrent use.
type ScoringStrategy interface {
	Name() string
	CalculateCompatibility(ctx context.Context, candidate types.Candidate, position types.Position) (*types.MatchResult, error)
}

// ServiceStrategy adapts the matching service into a named strategy with an
// optional fixed weight vector. A nil vector lets the service pick adaptive
// weights by seniority.
type ServiceStrategy struct {
	name    string
	service *matching.Service
	weights *scoring.Weights
}

// NewServiceStrategy wraps the service under the given name. weights may be
// nil for adaptive weighting.
func NewServiceStrategy(name string, service *matching.Service, weights *scoring.Weights) *ServiceStrategy {
	return &ServiceStrategy{name: name, service: service, weights: weights}
}

// NewWeightedStrategy returns the default adaptive-weight strategy.
func NewWeightedStrategy(service *matching.Service) *ServiceStrategy {
	return NewServiceStrategy(StrategyWeighted, service, nil)
}

// NewSkillsFirstStrategy returns a strategy that scores almost entirely on
// skill fit.
func NewSkillsFirstStrategy(service *matching.Service) *ServiceStrategy {
	return NewServiceStrategy(StrategySkillsFirst, service, &scoring.Weights{
		Skills:      0.60,
		Location:    0.05,
		Experience:  0.20,
		Education:   0.10,
		Preferences: 0.05,
	})
}

// NewBaselineStrategy returns a strategy that weighs every criterion
// equally.
func NewBaselineStrategy(service *matching.Service) *ServiceStrategy {
	return NewServiceStrategy(StrategyBaseline, service, &scoring.Weights{
		Skills:      0.20,
		Location:    0.20,
		Experience:  0.20,
		Education:   0.20,
		Preferences: 0.20,
	})
}

// Name returns the strategy's registry name.
func (s *ServiceStrategy) Name() string {
	return s.name
}

// CalculateCompatibility delegates to the wrapped matching service.
func (s *ServiceStrategy) CalculateCompatibility(ctx context.Context, candidate types.Candidate, position types.Position) (*types.MatchResult, error) {
	result, err := s.service.CalculateCompatibility(ctx, candidate, position, s.weights)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
