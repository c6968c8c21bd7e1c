package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortInsights_SeverityDescThenCategoryThenType(t *testing.T) {
	insights := []Insight{
		{Type: InsightBalancedProfile, Category: CategoryNeutral, Severity: SeverityInfo},
		{Type: InsightSkillGap, Category: CategoryWeakness, Severity: SeverityHigh},
		{Type: InsightCommuteRisk, Category: CategoryRisk, Severity: SeverityMedium},
		{Type: InsightSkillMatch, Category: CategoryStrength, Severity: SeverityHigh},
		{Type: InsightExperienceGap, Category: CategoryWeakness, Severity: SeverityMedium},
	}

	SortInsights(insights)

	assert.Equal(t, InsightSkillMatch, insights[0].Type)      // high, strength
	assert.Equal(t, InsightSkillGap, insights[1].Type)        // high, weakness
	assert.Equal(t, InsightExperienceGap, insights[2].Type)   // medium, weakness
	assert.Equal(t, InsightCommuteRisk, insights[3].Type)     // medium, risk
	assert.Equal(t, InsightBalancedProfile, insights[4].Type) // info, neutral
}

func TestSortInsights_TieBreaksByType(t *testing.T) {
	insights := []Insight{
		{Type: InsightSalaryMatch, Category: CategoryStrength, Severity: SeverityMedium},
		{Type: InsightLocationMatch, Category: CategoryStrength, Severity: SeverityMedium},
	}
	SortInsights(insights)
	assert.Equal(t, InsightLocationMatch, insights[0].Type)
	assert.Equal(t, InsightSalaryMatch, insights[1].Type)
}

func TestSeverityRanks(t *testing.T) {
	assert.True(t, SeverityCritical.Rank() > SeverityHigh.Rank())
	assert.True(t, SeverityHigh.Rank() > SeverityMedium.Rank())
	assert.True(t, SeverityMedium.Rank() > SeverityLow.Rank())
	assert.True(t, SeverityLow.Rank() > SeverityInfo.Rank())
	assert.Equal(t, -1, InsightSeverity("fatal").Rank())
}

func TestMatchResult_JSONContract(t *testing.T) {
	score := 0.42
	result := MatchResult{
		CandidateID:  "cand-1",
		PositionID:   "pos-1",
		OverallScore: 0.815,
		DetailedScores: DetailedScores{
			Skills:      0.9,
			Location:    1.0,
			Experience:  0.8,
			Education:   0.7,
			Preferences: 0.65,
		},
		Insights: []Insight{
			{
				Type:     InsightSkillGap,
				Category: CategoryWeakness,
				Severity: SeverityMedium,
				Message:  "Missing 1 of 4 required skills",
				Score:    &score,
				Metadata: map[string]any{"missing": []string{"Kafka"}},
			},
		},
		ComputedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)
	payload := string(jsonBytes)
	assert.Contains(t, payload, `"candidate_id":"cand-1"`)
	assert.Contains(t, payload, `"position_id":"pos-1"`)
	assert.Contains(t, payload, `"overall_score":0.815`)
	assert.Contains(t, payload, `"detailed_scores"`)
	assert.Contains(t, payload, `"preferences":0.65`)
	assert.Contains(t, payload, `"insights"`)
	assert.Contains(t, payload, `"computed_at"`)

	var decoded MatchResult
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, result.DetailedScores, decoded.DetailedScores)
}

func TestDetailedScores_OrderedAndGet(t *testing.T) {
	d := DetailedScores{Skills: 0.1, Location: 0.2, Experience: 0.3, Education: 0.4, Preferences: 0.5}

	ordered := d.Ordered()
	require.Len(t, ordered, 5)
	assert.Equal(t, Criteria, []string{
		ordered[0].Criterion, ordered[1].Criterion, ordered[2].Criterion,
		ordered[3].Criterion, ordered[4].Criterion,
	})

	got, ok := d.Get(CriterionEducation)
	require.True(t, ok)
	assert.Equal(t, 0.4, got)

	_, ok = d.Get("charisma")
	assert.False(t, ok)
}
