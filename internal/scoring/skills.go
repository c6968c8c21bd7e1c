package scoring

import (
	"github.com/jonathan/match-engine/internal/skills"
	"github.com/jonathan/match-engine/internal/types"
)

const (
	// Floor for candidates with no listed skills against real requirements.
	emptySkillsFloor = 0.1
	// Each skill beyond the requirements adds a small bonus, capped.
	extraSkillBonusStep = 0.02
	extraSkillBonusCap  = 0.1
)

// SkillsScore rates how well the candidate's skills cover the required set:
// the matched ratio from gap analysis plus a capped bonus for skills beyond
// the requirements. An empty required set is no constraint and scores 1.0.
// The floor applies to every non-empty required set, so gaining a first
// required skill never scores below the empty-candidate baseline.
func SkillsScore(matcher *skills.Matcher, candidateSkills, requiredSkills types.SkillSet) float64 {
	if requiredSkills.IsEmpty() {
		return 1.0
	}
	if candidateSkills.IsEmpty() {
		return emptySkillsFloor
	}

	gap := matcher.GapAnalysis(candidateSkills, requiredSkills)
	coverage := float64(len(gap.Matched)) / float64(requiredSkills.Len())

	bonus := extraSkillBonusStep * float64(len(gap.Additional))
	if bonus > extraSkillBonusCap {
		bonus = extraSkillBonusCap
	}

	score := clamp01(coverage + bonus)
	if score < emptySkillsFloor {
		return emptySkillsFloor
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
