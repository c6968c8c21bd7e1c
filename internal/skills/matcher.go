package skills

import (
	"github.com/jonathan/match-engine/internal/types"
)

// Similarity blend weights. Direct coverage dominates, curated pair scores
// soften near-miss requirements, token overlap catches the rest.
const (
	weightDirect  = 0.5
	weightCurated = 0.3
	weightTextual = 0.2
)

// Matcher compares candidate skills against position requirements using the
// package synonym and curated similarity tables.
type Matcher struct{}

// NewMatcher returns a Matcher backed by the default tables.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// GapAnalysis breaks a requirement comparison into covered, uncovered and
// surplus skills. Names keep the spelling of the set they came from.
type GapAnalysis struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Additional []string `json:"additional"`
}

// GapAnalysis compares the candidate's skills against the required set.
// A required skill counts as matched when any candidate skill resolves to
// the same canonical name, directly or through declared synonyms.
func (m *Matcher) GapAnalysis(candidate, required types.SkillSet) GapAnalysis {
	gap := GapAnalysis{
		Matched:    make([]string, 0, required.Len()),
		Missing:    make([]string, 0),
		Additional: make([]string, 0),
	}

	candidateSkills := candidate.Skills()
	for _, req := range required.Skills() {
		if anyMatch(candidateSkills, req) {
			gap.Matched = append(gap.Matched, req.Name)
		} else {
			gap.Missing = append(gap.Missing, req.Name)
		}
	}

	requiredSkills := required.Skills()
	for _, c := range candidateSkills {
		if !anyMatch(requiredSkills, c) {
			gap.Additional = append(gap.Additional, c.Name)
		}
	}
	return gap
}

// Similarity scores how well the candidate's skills satisfy the required
// set, in [0, 1]. Three signals are blended: direct coverage ratio,
// per-requirement association (direct match counts 1.0, otherwise the best
// curated pair score against the candidate's skills), and token overlap
// across the two lists. An empty required set means no constraint and
// scores 1.0; an empty candidate set against real requirements scores 0.
func (m *Matcher) Similarity(candidate, required types.SkillSet) float64 {
	if required.IsEmpty() {
		return 1.0
	}
	if candidate.IsEmpty() {
		return 0.0
	}

	candidateSkills := candidate.Skills()
	requiredSkills := required.Skills()

	matched := 0
	association := 0.0
	for _, req := range requiredSkills {
		if anyMatch(candidateSkills, req) {
			matched++
			association += 1.0
			continue
		}
		association += bestCuratedScore(candidateSkills, req)
	}

	direct := float64(matched) / float64(len(requiredSkills))
	curated := association / float64(len(requiredSkills))
	textual := tokenOverlap(candidate.Names(), required.Names())

	score := weightDirect*direct + weightCurated*curated + weightTextual*textual
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// anyMatch reports whether any skill in the list resolves to the same
// canonical name as the target, through primary names or declared synonyms.
func anyMatch(list []types.Skill, target types.Skill) bool {
	for _, s := range list {
		if canonicalMatch(s, target) {
			return true
		}
	}
	return false
}

func canonicalMatch(a, b types.Skill) bool {
	for _, an := range allNames(a) {
		na := Normalize(an)
		if na == "" {
			continue
		}
		for _, bn := range allNames(b) {
			if na == Normalize(bn) {
				return true
			}
		}
	}
	return false
}

func allNames(s types.Skill) []string {
	names := make([]string, 0, 1+len(s.Synonyms))
	names = append(names, s.Name)
	names = append(names, s.Synonyms...)
	return names
}

// bestCuratedScore returns the highest curated pair score between the
// required skill and any candidate skill, or 0 when no pair is in the
// table.
func bestCuratedScore(candidates []types.Skill, required types.Skill) float64 {
	best := 0.0
	for _, c := range candidates {
		if score, ok := RelatedScore(c.Name, required.Name); ok && score > best {
			best = score
		}
	}
	return best
}

// tokenOverlap computes the Jaccard overlap between the token sets of the
// two name lists.
func tokenOverlap(a, b []string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	return float64(shared) / float64(union)
}

func tokenSet(names []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range names {
		for _, tok := range tokenize(name) {
			set[tok] = struct{}{}
		}
	}
	return set
}
