// Package matching implements the compatibility scoring service: it runs
// the per-criterion calculators, applies adaptive or caller-supplied
// weights, and assembles match results with generated insights.
package matching

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/logging"
	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/skills"
	"github.com/jonathan/match-engine/internal/types"
)

// Service scores candidate/position pairs. It is stateless apart from
// injected collaborators and safe for concurrent use.
type Service struct {
	matcher *skills.Matcher
	travel  scoring.TravelTimeProvider
	logger  *zap.Logger
	now     func() time.Time
	workers int
}

// NewService builds a scoring service. travel may be nil when no commute
// data is available; logger may be nil to disable logging.
func NewService(travel scoring.TravelTimeProvider, logger *zap.Logger) *Service {
	return &Service{
		matcher: skills.NewMatcher(),
		travel:  travel,
		logger:  logging.OrNop(logger),
		now:     time.Now,
	}
}

// SetWorkers caps the batch worker pool. n <= 0 restores the default of one
// worker per CPU. Not safe to call concurrently with batch scoring.
func (s *Service) SetWorkers(n int) {
	s.workers = n
}

// Matcher exposes the skill matcher for gap analysis by callers.
func (s *Service) Matcher() *skills.Matcher {
	return s.matcher
}

// CalculateCompatibility scores one candidate against one position. With a
// nil override the weight vector adapts to the candidate's seniority; an
// explicit override is validated and normalized first and a bad one fails
// the call. The context is reserved for strategy implementations that
// consult external services; the built-in calculators never block.
func (s *Service) CalculateCompatibility(_ context.Context, candidate types.Candidate, position types.Position, override *scoring.Weights) (types.MatchResult, error) {
	started := s.now()

	weights, err := s.resolveWeights(candidate, override)
	if err != nil {
		return types.MatchResult{}, err
	}

	detailed := types.DetailedScores{
		Skills:      s.checked(types.CriterionSkills, scoring.SkillsScore(s.matcher, candidate.Skills, position.RequiredSkills)),
		Location:    s.checked(types.CriterionLocation, scoring.LocationScore(candidate.Location, position, s.travel)),
		Experience:  s.checked(types.CriterionExperience, scoring.ExperienceScore(candidate.ExperienceYears, position.Experience)),
		Education:   s.checked(types.CriterionEducation, scoring.EducationScore(candidate.Education, position.Education)),
		Preferences: s.checked(types.CriterionPreferences, scoring.PreferencesScore(candidate, position)),
	}

	result := types.MatchResult{
		CandidateID:    candidate.ID,
		PositionID:     position.ID,
		OverallScore:   weights.Apply(detailed),
		DetailedScores: detailed,
		Insights:       s.GenerateInsights(candidate, position, detailed),
		ComputedAt:     s.now().UTC(),
	}

	observability.MatchesComputed.WithLabelValues("single").Inc()
	observability.MatchDuration.WithLabelValues("single").Observe(s.now().Sub(started).Seconds())
	return result, nil
}

func (s *Service) resolveWeights(candidate types.Candidate, override *scoring.Weights) (scoring.Weights, error) {
	if override == nil {
		return scoring.WeightsForSeniority(candidate.Seniority()), nil
	}
	normalized, err := override.Normalize()
	if err != nil {
		return scoring.Weights{}, err
	}
	return normalized, nil
}

// checked guards the calculator invariant that scores stay in [0, 1].
// A violation is a bug in a calculator; it is clamped, logged and counted
// so the defect surfaces in observability rather than in stored scores.
func (s *Service) checked(criterion string, score float64) float64 {
	if score >= 0 && score <= 1 {
		return score
	}
	s.logger.Warn("calculator score out of range",
		zap.String("criterion", criterion),
		zap.Float64("score", score),
	)
	observability.ScoreClamps.WithLabelValues(criterion).Inc()
	if score < 0 {
		return 0
	}
	return 1
}
