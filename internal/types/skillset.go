// Package types provides type definitions for candidate and position data
// used throughout the match-engine system.
//
//nolint:revive
package types

import (
	"encoding/json"
	"strings"
)

// Skill is a single named competency. Synonyms list alternative names the
// skill is known under and participate in equality checks.
type Skill struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"` // e.g. "language", "framework", "database"
	Synonyms []string `json:"synonyms,omitempty"`
}

// NewSkill builds a Skill with a trimmed name.
func NewSkill(name string, synonyms ...string) Skill {
	return Skill{Name: strings.TrimSpace(name), Synonyms: synonyms}
}

// Key returns the canonical comparison key for the skill name.
func (s Skill) Key() string {
	return CanonicalSkillKey(s.Name)
}

// CanonicalSkillKey normalizes a skill name for comparison: trimmed and
// lowercased, with internal whitespace collapsed to single spaces.
func CanonicalSkillKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Matches reports whether two skills name the same competency, either by
// canonical name or through the synonym lists of either side.
func (s Skill) Matches(other Skill) bool {
	sk, ok := s.Key(), other.Key()
	if sk == "" || ok == "" {
		return false
	}
	if sk == ok {
		return true
	}
	for _, syn := range s.Synonyms {
		if CanonicalSkillKey(syn) == ok {
			return true
		}
	}
	for _, syn := range other.Synonyms {
		if CanonicalSkillKey(syn) == sk {
			return true
		}
	}
	return false
}

// MatchesName reports whether the skill answers to the given name, directly
// or through a synonym.
func (s Skill) MatchesName(name string) bool {
	key := CanonicalSkillKey(name)
	if key == "" {
		return false
	}
	if s.Key() == key {
		return true
	}
	for _, syn := range s.Synonyms {
		if CanonicalSkillKey(syn) == key {
			return true
		}
	}
	return false
}

// SkillSet is an immutable, deduplicated collection of skills. Membership
// checks are case-insensitive and synonym-aware. The zero value is an empty
// set ready to use.
type SkillSet struct {
	skills []Skill
}

// NewSkillSet builds a SkillSet from the given skills. Skills with empty
// names are dropped and duplicates (by name or synonym) keep their first
// occurrence.
func NewSkillSet(skills ...Skill) SkillSet {
	set := SkillSet{}
	for _, s := range skills {
		s.Name = strings.TrimSpace(s.Name)
		if s.Key() == "" {
			continue
		}
		if set.ContainsSkill(s) {
			continue
		}
		set.skills = append(set.skills, s)
	}
	return set
}

// SkillSetFromNames builds a SkillSet from bare skill names.
func SkillSetFromNames(names ...string) SkillSet {
	skills := make([]Skill, 0, len(names))
	for _, n := range names {
		skills = append(skills, NewSkill(n))
	}
	return NewSkillSet(skills...)
}

// Skills returns a copy of the member skills in insertion order.
func (ss SkillSet) Skills() []Skill {
	out := make([]Skill, len(ss.skills))
	copy(out, ss.skills)
	return out
}

// Names returns the member skill names in insertion order.
func (ss SkillSet) Names() []string {
	out := make([]string, 0, len(ss.skills))
	for _, s := range ss.skills {
		out = append(out, s.Name)
	}
	return out
}

// Len returns the number of member skills.
func (ss SkillSet) Len() int {
	return len(ss.skills)
}

// IsEmpty reports whether the set has no members.
func (ss SkillSet) IsEmpty() bool {
	return len(ss.skills) == 0
}

// Contains reports whether any member skill answers to the given name.
func (ss SkillSet) Contains(name string) bool {
	for _, s := range ss.skills {
		if s.MatchesName(name) {
			return true
		}
	}
	return false
}

// ContainsSkill reports whether any member matches the given skill by name
// or synonym.
func (ss SkillSet) ContainsSkill(skill Skill) bool {
	for _, s := range ss.skills {
		if s.Matches(skill) {
			return true
		}
	}
	return false
}

// Find returns the member skill matching the given skill, if any.
func (ss SkillSet) Find(skill Skill) (Skill, bool) {
	for _, s := range ss.skills {
		if s.Matches(skill) {
			return s, true
		}
	}
	return Skill{}, false
}

// Union returns a new set containing the members of both sets.
func (ss SkillSet) Union(other SkillSet) SkillSet {
	combined := make([]Skill, 0, len(ss.skills)+len(other.skills))
	combined = append(combined, ss.skills...)
	combined = append(combined, other.skills...)
	return NewSkillSet(combined...)
}

// Intersect returns the members of ss that match a member of other.
func (ss SkillSet) Intersect(other SkillSet) SkillSet {
	var kept []Skill
	for _, s := range ss.skills {
		if other.ContainsSkill(s) {
			kept = append(kept, s)
		}
	}
	return NewSkillSet(kept...)
}

// Difference returns the members of ss that match no member of other.
func (ss SkillSet) Difference(other SkillSet) SkillSet {
	var kept []Skill
	for _, s := range ss.skills {
		if !other.ContainsSkill(s) {
			kept = append(kept, s)
		}
	}
	return NewSkillSet(kept...)
}

// MarshalJSON encodes the set as a JSON array of skills. An empty set
// encodes as [] rather than null.
func (ss SkillSet) MarshalJSON() ([]byte, error) {
	if ss.skills == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ss.skills)
}

// UnmarshalJSON decodes a JSON array of skills, applying the same
// normalization as NewSkillSet.
func (ss *SkillSet) UnmarshalJSON(data []byte) error {
	var skills []Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		return err
	}
	*ss = NewSkillSet(skills...)
	return nil
}
