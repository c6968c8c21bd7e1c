package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/match-engine/internal/skills"
	"github.com/jonathan/match-engine/internal/types"
)

func TestSkillsScore_PartialCoverageWithExtraBonus(t *testing.T) {
	matcher := skills.NewMatcher()
	candidate := types.SkillSetFromNames("Python", "Django", "SQL")
	required := types.SkillSetFromNames("Python", "Django", "PostgreSQL")

	score := SkillsScore(matcher, candidate, required)

	// Two of three required matched, one extra skill worth 0.02.
	assert.InDelta(t, 2.0/3.0+0.02, score, 1e-9)
}

func TestSkillsScore_FullCoverage(t *testing.T) {
	matcher := skills.NewMatcher()
	set := types.SkillSetFromNames("Go", "PostgreSQL")
	assert.Equal(t, 1.0, SkillsScore(matcher, set, set))
}

func TestSkillsScore_EmptyRequiredIsNoConstraint(t *testing.T) {
	matcher := skills.NewMatcher()
	assert.Equal(t, 1.0, SkillsScore(matcher, types.SkillSet{}, types.SkillSet{}))
	assert.Equal(t, 1.0, SkillsScore(matcher, types.SkillSetFromNames("Go"), types.SkillSet{}))
}

func TestSkillsScore_EmptyCandidateGetsFloor(t *testing.T) {
	matcher := skills.NewMatcher()
	score := SkillsScore(matcher, types.SkillSet{}, types.SkillSetFromNames("Go"))
	assert.Equal(t, emptySkillsFloor, score)
}

func TestSkillsScore_BonusIsCapped(t *testing.T) {
	matcher := skills.NewMatcher()
	candidate := types.SkillSetFromNames(
		"Go", "Rust", "Python", "Ruby", "Kotlin", "Scala", "Haskell", "Erlang", "Elixir",
	)
	required := types.SkillSetFromNames("Go")

	score := SkillsScore(matcher, candidate, required)

	// Coverage 1.0; eight extras would add 0.16 but the bonus caps at 0.1
	// and the final score clamps to 1.0.
	assert.Equal(t, 1.0, score)
}

func TestSkillsScore_BonusCapBelowFullCoverage(t *testing.T) {
	matcher := skills.NewMatcher()
	candidate := types.SkillSetFromNames(
		"Go", "Rust", "Python", "Ruby", "Kotlin", "Scala", "Haskell", "Erlang", "Elixir",
	)
	required := types.SkillSetFromNames("Go", "Java")

	score := SkillsScore(matcher, candidate, required)

	assert.InDelta(t, 0.5+extraSkillBonusCap, score, 1e-9)
}

func TestSkillsScore_MonotonicInAddedRequiredSkill(t *testing.T) {
	matcher := skills.NewMatcher()
	required := types.SkillSetFromNames("Go", "PostgreSQL", "Kubernetes", "Kafka")
	candidate := types.SkillSetFromNames("Go", "PostgreSQL")

	before := SkillsScore(matcher, candidate, required)
	improved := candidate.Union(types.SkillSetFromNames("Kafka"))
	after := SkillsScore(matcher, improved, required)

	assert.GreaterOrEqual(t, after, before)
}

func TestSkillsScore_FirstRequiredSkillNeverScoresBelowEmpty(t *testing.T) {
	matcher := skills.NewMatcher()
	required := types.SkillSetFromNames(
		"Go", "PostgreSQL", "Kubernetes", "Kafka", "Redis", "Docker",
		"Terraform", "Python", "Rust", "GraphQL", "gRPC", "Elasticsearch",
	)

	empty := SkillsScore(matcher, types.SkillSet{}, required)
	oneSkill := SkillsScore(matcher, types.SkillSetFromNames("Go"), required)

	// Coverage 1/12 alone would undercut the empty-candidate floor; the
	// floor keeps the score monotonic in acquired required skills.
	assert.Equal(t, emptySkillsFloor, empty)
	assert.GreaterOrEqual(t, oneSkill, empty)
}

func TestSkillsScore_SynonymsCount(t *testing.T) {
	matcher := skills.NewMatcher()
	candidate := types.SkillSetFromNames("Golang", "Postgres")
	required := types.SkillSetFromNames("Go", "PostgreSQL")

	assert.Equal(t, 1.0, SkillsScore(matcher, candidate, required))
}
