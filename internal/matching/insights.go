package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/match-engine/internal/types"
)

// Insight thresholds. Strengths and weaknesses key off the criterion score;
// opportunity insights fire when a gap is small enough to be bridgeable.
const (
	strengthThreshold     = 0.9
	strengthHighThreshold = 0.97
	weaknessThreshold     = 0.4
	weaknessHighThreshold = 0.3

	bridgeableExperienceGap = 2.0
	bridgeableMissingSkills = 2
	negotiableOvershoot     = 0.10
	severeOvershoot         = 0.35

	overqualifiedMinExcess    = 1.0
	overqualifiedMediumExcess = 5.0

	defaultCommuteRiskMinutes = 90

	wellRoundedMinCriteria = 4
	wellRoundedThreshold   = 0.7
	improvementMinCriteria = 3
	improvementThreshold   = 0.5
	balancedMaxStdDev      = 0.08
)

// GenerateInsights derives human-readable findings from the per-criterion
// scores and the underlying pair data. Insights never change the overall
// score; they explain it. The returned slice is deterministically ordered.
func (s *Service) GenerateInsights(candidate types.Candidate, position types.Position, scores types.DetailedScores) []types.Insight {
	var insights []types.Insight
	insights = append(insights, s.skillInsights(candidate, position, scores.Skills)...)
	insights = append(insights, s.locationInsights(candidate, position, scores.Location)...)
	insights = append(insights, experienceInsights(candidate, position, scores.Experience)...)
	insights = append(insights, educationInsights(candidate, position)...)
	insights = append(insights, preferenceInsights(candidate, position, scores.Preferences)...)
	insights = append(insights, globalInsights(scores)...)

	types.SortInsights(insights)
	return insights
}

func (s *Service) skillInsights(candidate types.Candidate, position types.Position, score float64) []types.Insight {
	if position.RequiredSkills.IsEmpty() {
		return nil
	}

	gap := s.matcher.GapAnalysis(candidate.Skills, position.RequiredSkills)
	total := position.RequiredSkills.Len()
	var insights []types.Insight

	if score >= strengthThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightSkillMatch,
			Category: types.CategoryStrength,
			Severity: strengthSeverity(score),
			Message:  fmt.Sprintf("Covers %d of %d required skills", len(gap.Matched), total),
			Score:    scorePtr(score),
			Metadata: map[string]any{"matched": gap.Matched},
		})
	}
	if score <= weaknessThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightSkillGap,
			Category: types.CategoryWeakness,
			Severity: weaknessSeverity(score),
			Message:  fmt.Sprintf("Missing %d of %d required skills", len(gap.Missing), total),
			Score:    scorePtr(score),
			Metadata: map[string]any{"missing": gap.Missing},
		})
	}
	if n := len(gap.Missing); n >= 1 && n <= bridgeableMissingSkills && score < strengthThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightSkillDevelopmentOpportunity,
			Category: types.CategoryOpportunity,
			Severity: types.SeverityLow,
			Message:  fmt.Sprintf("Only %s short of the requirements", pluralSkills(gap.Missing)),
			Score:    scorePtr(score),
			Metadata: map[string]any{"missing": gap.Missing},
		})
	}
	return insights
}

func (s *Service) locationInsights(candidate types.Candidate, position types.Position, score float64) []types.Insight {
	if position.OffersRemote || position.EffectiveWorkMode() == types.WorkModeRemote {
		return []types.Insight{{
			Type:     types.InsightRemoteOpportunity,
			Category: types.CategoryOpportunity,
			Severity: types.SeverityInfo,
			Message:  "Position can be performed remotely from any location",
			Score:    scorePtr(score),
		}}
	}

	var insights []types.Insight
	if score >= strengthThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightLocationMatch,
			Category: types.CategoryStrength,
			Severity: strengthSeverity(score),
			Message:  fmt.Sprintf("Candidate is based in or near %s", position.Location.String()),
			Score:    scorePtr(score),
		})
	}
	if score <= weaknessThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightLocationMismatch,
			Category: types.CategoryWeakness,
			Severity: weaknessSeverity(score),
			Message:  fmt.Sprintf("Candidate location %s is far from %s", candidate.Location.String(), position.Location.String()),
			Score:    scorePtr(score),
		})
	}

	if s.travel != nil && !candidate.Location.IsZero() && !position.Location.IsZero() && !candidate.Location.SameCity(position.Location) {
		if minutes, ok := s.travel.GetTravelMinutes(candidate.Location, position.Location); ok {
			threshold := defaultCommuteRiskMinutes
			if position.Requirements.MaxCommuteMinutes != nil {
				threshold = *position.Requirements.MaxCommuteMinutes
			}
			if minutes > threshold {
				severity := types.SeverityMedium
				if minutes > 2*threshold {
					severity = types.SeverityHigh
				}
				insights = append(insights, types.Insight{
					Type:     types.InsightCommuteRisk,
					Category: types.CategoryRisk,
					Severity: severity,
					Message:  fmt.Sprintf("Estimated commute of %d minutes exceeds the %d minute threshold", minutes, threshold),
					Metadata: map[string]any{"commute_minutes": minutes, "threshold_minutes": threshold},
				})
			}
		}
	}
	return insights
}

func experienceInsights(candidate types.Candidate, position types.Position, score float64) []types.Insight {
	r := position.Experience
	if r == nil {
		return nil
	}

	years := candidate.ExperienceYears
	var insights []types.Insight

	if r.Contains(years) {
		return []types.Insight{{
			Type:     types.InsightExperienceMatch,
			Category: types.CategoryStrength,
			Severity: strengthSeverity(score),
			Message:  fmt.Sprintf("%s of experience fits the %s requirement", formatYears(years), r.String()),
			Score:    scorePtr(score),
		}}
	}

	if gap := r.GapBelow(years); gap > 0 {
		if score <= weaknessThreshold {
			insights = append(insights, types.Insight{
				Type:     types.InsightExperienceGap,
				Category: types.CategoryWeakness,
				Severity: weaknessSeverity(score),
				Message:  fmt.Sprintf("%s below the required minimum of %s", formatYears(gap), formatYears(r.Min)),
				Score:    scorePtr(score),
				Metadata: map[string]any{"gap_years": gap},
			})
		}
		if gap <= bridgeableExperienceGap {
			insights = append(insights, types.Insight{
				Type:     types.InsightExperienceGrowth,
				Category: types.CategoryOpportunity,
				Severity: types.SeverityLow,
				Message:  fmt.Sprintf("Within %s of the required minimum", formatYears(gap)),
				Score:    scorePtr(score),
				Metadata: map[string]any{"gap_years": gap},
			})
		}
		return insights
	}

	if excess := r.ExcessAbove(years); excess >= overqualifiedMinExcess {
		severity := types.SeverityLow
		if excess > overqualifiedMediumExcess {
			severity = types.SeverityMedium
		}
		insights = append(insights, types.Insight{
			Type:     types.InsightOverqualified,
			Category: types.CategoryRisk,
			Severity: severity,
			Message:  fmt.Sprintf("%s beyond the stated maximum of %s", formatYears(excess), formatYears(*r.Max)),
			Score:    scorePtr(score),
			Metadata: map[string]any{"excess_years": excess},
		})
	}
	return insights
}

func educationInsights(candidate types.Candidate, position types.Position) []types.Insight {
	required := position.Education
	if !required.Known() || !candidate.Education.Known() {
		return nil
	}

	gap := candidate.Education.Compare(required)
	switch {
	case gap == 0:
		return []types.Insight{{
			Type:     types.InsightEducationMatch,
			Category: types.CategoryStrength,
			Severity: types.SeverityHigh,
			Message:  fmt.Sprintf("Education level %s matches the requirement exactly", candidate.Education),
		}}
	case gap >= 2:
		return []types.Insight{{
			Type:     types.InsightEducationOverqualified,
			Category: types.CategoryNeutral,
			Severity: types.SeverityLow,
			Message:  fmt.Sprintf("Holds a %s against a %s requirement", candidate.Education, required),
			Metadata: map[string]any{"candidate": string(candidate.Education), "required": string(required)},
		}}
	case gap < 0:
		severity := types.SeverityMedium
		if gap <= -2 {
			severity = types.SeverityHigh
		}
		return []types.Insight{{
			Type:     types.InsightEducationGap,
			Category: types.CategoryWeakness,
			Severity: severity,
			Message:  fmt.Sprintf("Position asks for %s, candidate has %s", required, candidate.Education),
			Metadata: map[string]any{"candidate": string(candidate.Education), "required": string(required)},
		}}
	}
	return nil
}

func preferenceInsights(candidate types.Candidate, position types.Position, score float64) []types.Insight {
	var insights []types.Insight
	prefs := candidate.Preferences

	if exp, offer := prefs.SalaryExpectation, position.Salary; exp != nil && offer != nil && exp.Comparable(*offer) {
		switch {
		case offer.Max == nil || exp.Min <= *offer.Max:
			insights = append(insights, types.Insight{
				Type:     types.InsightSalaryMatch,
				Category: types.CategoryStrength,
				Severity: types.SeverityMedium,
				Message:  fmt.Sprintf("Salary expectation sits inside the offered %s", offer.String()),
			})
		default:
			overshoot := float64(exp.Min-*offer.Max) / float64(*offer.Max)
			if overshoot <= negotiableOvershoot {
				insights = append(insights, types.Insight{
					Type:     types.InsightSalaryNegotiable,
					Category: types.CategoryOpportunity,
					Severity: types.SeverityMedium,
					Message:  fmt.Sprintf("Expectation exceeds the offer by %.0f%%, likely negotiable", overshoot*100),
					Metadata: map[string]any{"overshoot_pct": math.Round(overshoot * 100)},
				})
			} else {
				severity := types.SeverityMedium
				if overshoot >= severeOvershoot {
					severity = types.SeverityHigh
				}
				insights = append(insights, types.Insight{
					Type:     types.InsightSalaryMismatch,
					Category: types.CategoryWeakness,
					Severity: severity,
					Message:  fmt.Sprintf("Expectation exceeds the offered ceiling by %.0f%%", overshoot*100),
					Metadata: map[string]any{"overshoot_pct": math.Round(overshoot * 100)},
				})
			}
		}
	}

	if jobType := position.Requirements.JobType; jobType != "" && prefs.HasJobTypePreference() && !prefs.AcceptsJobType(jobType) {
		insights = append(insights, types.Insight{
			Type:     types.InsightPreferenceConflict,
			Category: types.CategoryWeakness,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("Position is %s, candidate accepts %s", jobType, strings.Join(prefs.JobTypes, ", ")),
		})
	}
	if mode := position.EffectiveWorkMode(); mode != "" && prefs.HasWorkModePreference() && !prefs.AcceptsWorkMode(mode) {
		insights = append(insights, types.Insight{
			Type:     types.InsightPreferenceConflict,
			Category: types.CategoryWeakness,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("Position is %s, candidate prefers %s", mode, strings.Join(prefs.WorkModes, ", ")),
		})
	}

	if score >= strengthThreshold {
		insights = append(insights, types.Insight{
			Type:     types.InsightPreferenceMatch,
			Category: types.CategoryStrength,
			Severity: types.SeverityMedium,
			Message:  "Position aligns with the candidate's stated preferences",
			Score:    scorePtr(score),
		})
	}

	if start, available := position.Requirements.StartDate, prefs.AvailableFrom; start != nil && available != nil && available.After(*start) {
		insights = append(insights, types.Insight{
			Type:     types.InsightAvailabilityMismatch,
			Category: types.CategoryRisk,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("Candidate available from %s, position starts %s", available.Format("2006-01-02"), start.Format("2006-01-02")),
			Metadata: map[string]any{"available_from": available.Format("2006-01-02"), "start_date": start.Format("2006-01-02")},
		})
	}
	return insights
}

func globalInsights(scores types.DetailedScores) []types.Insight {
	ordered := scores.Ordered()
	var insights []types.Insight

	high, low := 0, 0
	sum := 0.0
	for _, cs := range ordered {
		if cs.Score >= wellRoundedThreshold {
			high++
		}
		if cs.Score < improvementThreshold {
			low++
		}
		sum += cs.Score
	}

	if high >= wellRoundedMinCriteria {
		insights = append(insights, types.Insight{
			Type:     types.InsightWellRoundedProfile,
			Category: types.CategoryStrength,
			Severity: types.SeverityLow,
			Message:  fmt.Sprintf("%d of %d criteria score at least %.2f", high, len(ordered), wellRoundedThreshold),
		})
	}
	if low >= improvementMinCriteria {
		insights = append(insights, types.Insight{
			Type:     types.InsightMultipleImprovementAreas,
			Category: types.CategoryWeakness,
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("%d criteria score below %.2f", low, improvementThreshold),
		})
	}

	mean := sum / float64(len(ordered))
	variance := 0.0
	for _, cs := range ordered {
		variance += (cs.Score - mean) * (cs.Score - mean)
	}
	if stdDev := math.Sqrt(variance / float64(len(ordered))); stdDev <= balancedMaxStdDev {
		insights = append(insights, types.Insight{
			Type:     types.InsightBalancedProfile,
			Category: types.CategoryNeutral,
			Severity: types.SeverityInfo,
			Message:  "Criterion scores are uniform across all dimensions",
			Metadata: map[string]any{"std_dev": math.Round(stdDev*1000) / 1000},
		})
	}
	return insights
}

func strengthSeverity(score float64) types.InsightSeverity {
	if score >= strengthHighThreshold {
		return types.SeverityHigh
	}
	return types.SeverityMedium
}

func weaknessSeverity(score float64) types.InsightSeverity {
	if score <= weaknessHighThreshold {
		return types.SeverityHigh
	}
	return types.SeverityMedium
}

func scorePtr(v float64) *float64 {
	return &v
}

func pluralSkills(missing []string) string {
	if len(missing) == 1 {
		return fmt.Sprintf("1 skill (%s)", missing[0])
	}
	return fmt.Sprintf("%d skills (%s)", len(missing), strings.Join(missing, ", "))
}

func formatYears(y float64) string {
	if y == math.Trunc(y) {
		if y == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%.0f years", y)
	}
	return fmt.Sprintf("%.1f years", y)
}
