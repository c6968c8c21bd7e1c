package scoring

import "github.com/jonathan/match-engine/internal/types"

// Score when the candidate's education is unknown but the position requires
// a level.
const unknownEducationScore = 0.5

// overqualificationScores index by rank surplus; surpluses beyond the table
// keep the last value.
var overqualificationScores = []float64{1.0, 0.9, 0.8, 0.7}

// underqualificationScores index by rank shortfall minus one; shortfalls
// beyond the table keep the last value.
var underqualificationScores = []float64{0.4, 0.2, 0.1}

// EducationScore rates the candidate's education level against the
// position's requirement. Meeting the level exactly scores 1.0;
// over-qualification decays gently, under-qualification steeply. A position
// with no requirement is unconstrained.
func EducationScore(candidate, required types.EducationLevel) float64 {
	if !required.Known() {
		return 1.0
	}
	if !candidate.Known() {
		return unknownEducationScore
	}

	gap := candidate.Compare(required)
	if gap >= 0 {
		if gap >= len(overqualificationScores) {
			gap = len(overqualificationScores) - 1
		}
		return overqualificationScores[gap]
	}

	shortfall := -gap - 1
	if shortfall >= len(underqualificationScores) {
		shortfall = len(underqualificationScores) - 1
	}
	return underqualificationScores[shortfall]
}
