package types

import "time"

// Criterion names used across detailed scores, weights and insights.
const (
	CriterionSkills      = "skills"
	CriterionLocation    = "location"
	CriterionExperience  = "experience"
	CriterionEducation   = "education"
	CriterionPreferences = "preferences"
)

// Criteria lists the scored criteria in canonical order.
var Criteria = []string{
	CriterionSkills,
	CriterionLocation,
	CriterionExperience,
	CriterionEducation,
	CriterionPreferences,
}

// DetailedScores holds the per-criterion compatibility scores, each in
// [0, 1].
type DetailedScores struct {
	Skills      float64 `json:"skills"`
	Location    float64 `json:"location"`
	Experience  float64 `json:"experience"`
	Education   float64 `json:"education"`
	Preferences float64 `json:"preferences"`
}

// CriterionScore pairs a criterion name with its score.
type CriterionScore struct {
	Criterion string
	Score     float64
}

// Ordered returns the scores in canonical criterion order.
func (d DetailedScores) Ordered() []CriterionScore {
	return []CriterionScore{
		{CriterionSkills, d.Skills},
		{CriterionLocation, d.Location},
		{CriterionExperience, d.Experience},
		{CriterionEducation, d.Education},
		{CriterionPreferences, d.Preferences},
	}
}

// Get returns the score for the named criterion.
func (d DetailedScores) Get(criterion string) (float64, bool) {
	switch criterion {
	case CriterionSkills:
		return d.Skills, true
	case CriterionLocation:
		return d.Location, true
	case CriterionExperience:
		return d.Experience, true
	case CriterionEducation:
		return d.Education, true
	case CriterionPreferences:
		return d.Preferences, true
	}
	return 0, false
}

// MatchResult is the outcome of scoring one candidate against one position.
type MatchResult struct {
	CandidateID    string         `json:"candidate_id"`
	PositionID     string         `json:"position_id"`
	OverallScore   float64        `json:"overall_score"`
	DetailedScores DetailedScores `json:"detailed_scores"`
	Insights       []Insight      `json:"insights"`
	ComputedAt     time.Time      `json:"computed_at"`
}
