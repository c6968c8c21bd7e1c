package ensemble

import (
	"context"
	"time"

	"github.com/jonathan/match-engine/internal/types"
)

// healthCheckTimeout bounds each strategy's smoke-test run.
const healthCheckTimeout = 10 * time.Second

// SmokeTestPair returns the fixed candidate/position pair used by
// HealthCheck. The pair exercises every calculator: skills with a partial
// match, a real location, an experience range, an education requirement and
// salary preferences.
func SmokeTestPair() (types.Candidate, types.Position) {
	expectation, _ := types.SalaryAtLeast(55000, "EUR", "year")
	candidate := types.Candidate{
		ID:              "healthcheck-candidate",
		Name:            "Health Check",
		Skills:          types.SkillSetFromNames("Python", "Django", "PostgreSQL", "Docker"),
		Location:        types.Location{City: "Lyon", Region: "Auvergne-Rhone-Alpes", Country: "France"},
		ExperienceYears: 5,
		Education:       types.EducationBachelor,
		Preferences: types.Preferences{
			JobTypes:          []string{types.JobTypeFullTime},
			WorkModes:         []string{types.WorkModeHybrid, types.WorkModeRemote},
			SalaryExpectation: &expectation,
		},
	}

	experienceRange, _ := types.BetweenYears(3, 8)
	salary, _ := types.SalaryBetween(50000, 65000, "EUR", "year")
	position := types.Position{
		ID:             "healthcheck-position",
		Title:          "Backend Engineer",
		Company:        "Health Check Inc",
		RequiredSkills: types.SkillSetFromNames("Python", "Django", "Kubernetes"),
		Location:       types.Location{City: "Lyon", Region: "Auvergne-Rhone-Alpes", Country: "France"},
		Experience:     &experienceRange,
		Education:      types.EducationBachelor,
		Salary:         &salary,
		OffersRemote:   true,
		Requirements: types.JobRequirements{
			JobType:  types.JobTypeFullTime,
			WorkMode: types.WorkModeHybrid,
		},
	}
	return candidate, position
}

// HealthCheck runs every registered strategy against the smoke-test pair
// and reports per-strategy health and latency. Smoke runs do not count
// toward usage statistics.
func (m *Manager) HealthCheck(ctx context.Context) map[string]types.StrategyHealth {
	candidate, position := SmokeTestPair()

	m.mu.RLock()
	regs := make(map[string]ScoringStrategy, len(m.strategies))
	for name, reg := range m.strategies {
		regs[name] = reg.strategy
	}
	m.mu.RUnlock()

	health := make(map[string]types.StrategyHealth, len(regs))
	for name, strategy := range regs {
		health[name] = m.smokeTest(ctx, strategy, candidate, position)
	}
	return health
}

func (m *Manager) smokeTest(ctx context.Context, strategy ScoringStrategy, candidate types.Candidate, position types.Position) (health types.StrategyHealth) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	started := time.Now()
	defer func() {
		health.LatencyMS = time.Since(started).Milliseconds()
		if r := recover(); r != nil {
			health.Healthy = false
			health.Error = "panic during smoke test"
		}
	}()

	result, err := strategy.CalculateCompatibility(ctx, candidate, position)
	if err != nil {
		return types.StrategyHealth{Healthy: false, Error: err.Error()}
	}
	if result == nil || result.OverallScore < 0 || result.OverallScore > 1 {
		return types.StrategyHealth{Healthy: false, Error: "score outside unit range"}
	}
	return types.StrategyHealth{Healthy: true}
}
