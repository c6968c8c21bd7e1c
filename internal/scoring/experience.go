package scoring

import "github.com/jonathan/match-engine/internal/types"

const (
	// Score when the position states no experience requirement.
	unspecifiedExperienceScore = 0.75

	// Below the minimum the score drops 0.20 per missing year to a floor.
	belowMinSlope = 0.20
	belowMinFloor = 0.2

	// Above the maximum the drop is gentle, 0.03 per extra year to a floor.
	aboveMaxSlope = 0.03
	aboveMaxFloor = 0.5
)

// ExperienceScore rates the candidate's years of experience against the
// position's range. Inside the range scores 1.0; shortfalls are penalized
// steeply and surpluses gently, each to a documented floor.
func ExperienceScore(candidateYears float64, required *types.ExperienceRange) float64 {
	if required == nil {
		return unspecifiedExperienceScore
	}
	if required.Contains(candidateYears) {
		return 1.0
	}
	if gap := required.GapBelow(candidateYears); gap > 0 {
		score := 1.0 - gap*belowMinSlope
		if score < belowMinFloor {
			return belowMinFloor
		}
		return score
	}
	excess := required.ExcessAbove(candidateYears)
	score := 1.0 - excess*aboveMaxSlope
	if score < aboveMaxFloor {
		return aboveMaxFloor
	}
	return score
}
