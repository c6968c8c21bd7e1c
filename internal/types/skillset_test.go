package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkill_MatchesCaseInsensitive(t *testing.T) {
	a := NewSkill("Go")
	b := NewSkill("go")
	assert.True(t, a.Matches(b))
	assert.True(t, b.Matches(a))
}

func TestSkill_MatchesThroughSynonyms(t *testing.T) {
	postgres := NewSkill("PostgreSQL", "postgres", "pg")
	assert.True(t, postgres.MatchesName("Postgres"))
	assert.True(t, postgres.MatchesName("PG"))
	assert.False(t, postgres.MatchesName("MySQL"))

	// Synonyms on the other side count too.
	plain := NewSkill("postgres")
	assert.True(t, plain.Matches(postgres))
}

func TestSkill_EmptyNamesNeverMatch(t *testing.T) {
	empty := NewSkill("")
	assert.False(t, empty.Matches(NewSkill("")))
	assert.False(t, empty.MatchesName(""))
}

func TestNewSkillSet_DropsEmptyAndDuplicates(t *testing.T) {
	set := NewSkillSet(
		NewSkill("Go"),
		NewSkill("  "),
		NewSkill("go"),
		NewSkill("Docker"),
		NewSkill("PostgreSQL", "postgres"),
		NewSkill("Postgres"),
	)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"Go", "Docker", "PostgreSQL"}, set.Names())
}

func TestSkillSet_Contains(t *testing.T) {
	set := SkillSetFromNames("Go", "Kubernetes", "PostgreSQL")
	assert.True(t, set.Contains("go"))
	assert.True(t, set.Contains("  kubernetes "))
	assert.False(t, set.Contains("Rust"))
	assert.False(t, set.Contains(""))
}

func TestSkillSet_SetAlgebra(t *testing.T) {
	have := SkillSetFromNames("Go", "Docker", "Redis")
	want := SkillSetFromNames("go", "Kafka")

	assert.Equal(t, []string{"Go"}, have.Intersect(want).Names())
	assert.Equal(t, []string{"Docker", "Redis"}, have.Difference(want).Names())
	assert.Equal(t, 4, have.Union(want).Len())
}

func TestSkillSet_ZeroValueIsEmpty(t *testing.T) {
	var set SkillSet
	assert.True(t, set.IsEmpty())
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("anything"))
}

func TestSkillSet_JSONRoundTrip(t *testing.T) {
	set := NewSkillSet(NewSkill("Go"), NewSkill("PostgreSQL", "postgres"))

	jsonBytes, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"name":"Go"`)
	assert.Contains(t, string(jsonBytes), `"synonyms":["postgres"]`)

	var decoded SkillSet
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, set.Names(), decoded.Names())
}

func TestSkillSet_EmptyMarshalsAsArray(t *testing.T) {
	var set SkillSet
	jsonBytes, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(jsonBytes))
}

func TestSkillSet_UnmarshalNormalizes(t *testing.T) {
	var set SkillSet
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"Go"},{"name":"go"},{"name":" "}]`), &set))
	assert.Equal(t, 1, set.Len())
}
