package scoring

import "github.com/jonathan/match-engine/internal/types"

const (
	// Sub-score when either side leaves salary unstated or the ranges are
	// not comparable.
	neutralSalaryScore = 0.6
	salaryFloor        = 0.1
	// Penalty slope for expectations above the offered ceiling, relative to
	// the ceiling.
	salaryOvershootSlope = 2.0

	// Sub-score when either side states nothing about job type, work mode
	// or industry.
	unstatedPreferenceScore = 0.7

	rejectedJobTypeScore  = 0.25
	incompatibleModeScore = 0.3
	industryMismatchScore = 0.5
)

// PreferencesScore rates how well the position matches what the candidate
// wants: the mean of four sub-scores covering salary, job type, work mode
// and industry. Missing statements on either side fall back to documented
// neutral values rather than failing.
func PreferencesScore(candidate types.Candidate, position types.Position) float64 {
	total := salarySubScore(candidate.Preferences.SalaryExpectation, position.Salary) +
		jobTypeSubScore(candidate.Preferences, position.Requirements.JobType) +
		workModeSubScore(candidate.Preferences, position.EffectiveWorkMode()) +
		industrySubScore(candidate.Preferences, position.Requirements.Industry)
	return clamp01(total / 4)
}

// salarySubScore compares the candidate's minimum expectation against the
// offered band. Expectations at or below the offered ceiling score full;
// above it the score degrades with the relative overshoot.
func salarySubScore(expectation, offer *types.SalaryRange) float64 {
	if expectation == nil || offer == nil {
		return neutralSalaryScore
	}
	if !expectation.Comparable(*offer) {
		return neutralSalaryScore
	}
	if offer.Max == nil {
		return 1.0
	}
	ceiling := *offer.Max
	if expectation.Min <= ceiling {
		return 1.0
	}
	if ceiling <= 0 {
		return salaryFloor
	}
	overshoot := float64(expectation.Min-ceiling) / float64(ceiling)
	score := 1.0 - salaryOvershootSlope*overshoot
	if score < salaryFloor {
		return salaryFloor
	}
	return score
}

func jobTypeSubScore(prefs types.Preferences, jobType string) float64 {
	if jobType == "" || !prefs.HasJobTypePreference() {
		return unstatedPreferenceScore
	}
	if prefs.AcceptsJobType(jobType) {
		return 1.0
	}
	return rejectedJobTypeScore
}

func workModeSubScore(prefs types.Preferences, mode string) float64 {
	if mode == "" || !prefs.HasWorkModePreference() {
		return unstatedPreferenceScore
	}
	if prefs.AcceptsWorkMode(mode) {
		return 1.0
	}
	return incompatibleModeScore
}

func industrySubScore(prefs types.Preferences, industry string) float64 {
	if industry == "" || !prefs.HasIndustryPreference() {
		return unstatedPreferenceScore
	}
	if prefs.PrefersIndustry(industry) {
		return 1.0
	}
	return industryMismatchScore
}
