package types

import "sort"

// InsightType identifies what an insight is about.
type InsightType string

// Insight types emitted by the insight generator.
const (
	InsightSkillMatch                  InsightType = "skill_match"
	InsightSkillGap                    InsightType = "skill_gap"
	InsightSkillDevelopmentOpportunity InsightType = "skill_development_opportunity"
	InsightLocationMatch               InsightType = "location_match"
	InsightLocationMismatch            InsightType = "location_mismatch"
	InsightRemoteOpportunity           InsightType = "remote_opportunity"
	InsightCommuteRisk                 InsightType = "commute_risk"
	InsightExperienceMatch             InsightType = "experience_match"
	InsightExperienceGap               InsightType = "experience_gap"
	InsightExperienceGrowth            InsightType = "experience_growth_opportunity"
	InsightOverqualified               InsightType = "overqualified"
	InsightEducationMatch              InsightType = "education_match"
	InsightEducationGap                InsightType = "education_gap"
	InsightEducationOverqualified      InsightType = "education_overqualified"
	InsightSalaryMatch                 InsightType = "salary_match"
	InsightSalaryMismatch              InsightType = "salary_mismatch"
	InsightSalaryNegotiable            InsightType = "salary_negotiable"
	InsightPreferenceMatch             InsightType = "preference_match"
	InsightPreferenceConflict          InsightType = "preference_conflict"
	InsightAvailabilityMismatch        InsightType = "availability_mismatch"
	InsightWellRoundedProfile          InsightType = "well_rounded_profile"
	InsightMultipleImprovementAreas    InsightType = "multiple_improvement_areas"
	InsightBalancedProfile             InsightType = "balanced_profile"
)

// InsightCategory classifies how an insight reads for the match.
type InsightCategory string

const (
	CategoryStrength    InsightCategory = "strength"
	CategoryWeakness    InsightCategory = "weakness"
	CategoryOpportunity InsightCategory = "opportunity"
	CategoryRisk        InsightCategory = "risk"
	CategoryNeutral     InsightCategory = "neutral"
)

var categoryRanks = map[InsightCategory]int{
	CategoryStrength:    0,
	CategoryWeakness:    1,
	CategoryOpportunity: 2,
	CategoryRisk:        3,
	CategoryNeutral:     4,
}

// Rank returns the display order of the category. Unknown categories sort
// last.
func (c InsightCategory) Rank() int {
	if r, ok := categoryRanks[c]; ok {
		return r
	}
	return len(categoryRanks)
}

// InsightSeverity grades how much an insight matters.
type InsightSeverity string

const (
	SeverityInfo     InsightSeverity = "info"
	SeverityLow      InsightSeverity = "low"
	SeverityMedium   InsightSeverity = "medium"
	SeverityHigh     InsightSeverity = "high"
	SeverityCritical InsightSeverity = "critical"
)

var severityRanks = map[InsightSeverity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordering weight of the severity, from 0 (info) to
// 4 (critical). Unknown severities rank below info.
func (s InsightSeverity) Rank() int {
	if r, ok := severityRanks[s]; ok {
		return r
	}
	return -1
}

// Insight is a single human-readable finding about a candidate/position
// pair, attached to the score that triggered it.
type Insight struct {
	Type     InsightType     `json:"type"`
	Category InsightCategory `json:"category"`
	Severity InsightSeverity `json:"severity"`
	Message  string          `json:"message"`
	Score    *float64        `json:"score,omitempty"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// SortInsights orders insights deterministically: severity descending, then
// category rank, then type, then message.
func SortInsights(insights []Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		a, b := insights[i], insights[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Message < b.Message
	})
}
