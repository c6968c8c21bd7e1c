package ensemble

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/match-engine/internal/llm"
	"github.com/jonathan/match-engine/internal/types"
)

// SemanticStrategy scores a pair by asking an LLM for a compatibility
// judgement on the structured profiles. It is never registered by default;
// any model or parse failure is an ordinary strategy error and the ensemble
// degrades to its deterministic members.
type SemanticStrategy struct {
	client llm.Client
	tier   llm.ModelTier
	now    func() time.Time
}

// semanticResponse is the JSON shape the model is asked to produce.
type semanticResponse struct {
	CompatibilityScore float64 `json:"compatibility_score"`
	Reasoning          string  `json:"reasoning"`
}

// NewSemanticStrategy builds the LLM strategy on the given client.
func NewSemanticStrategy(client llm.Client) *SemanticStrategy {
	return &SemanticStrategy{client: client, tier: llm.TierLite, now: time.Now}
}

// Name returns the strategy's registry name.
func (s *SemanticStrategy) Name() string {
	return StrategySemantic
}

// CalculateCompatibility prompts the model with both profiles and parses a
// {compatibility_score, reasoning} response. The score is clamped into
// [0, 1]; the reasoning becomes a neutral insight.
func (s *SemanticStrategy) CalculateCompatibility(ctx context.Context, candidate types.Candidate, position types.Position) (*types.MatchResult, error) {
	raw, err := s.client.GenerateJSON(ctx, buildSemanticPrompt(candidate, position), s.tier)
	if err != nil {
		return nil, fmt.Errorf("semantic scoring failed: %w", err)
	}

	var resp semanticResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse semantic response: %w (content: %s)", err, raw)
	}

	score := resp.CompatibilityScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	result := &types.MatchResult{
		CandidateID:  candidate.ID,
		PositionID:   position.ID,
		OverallScore: score,
		// The model judges the pair as a whole; the criterion breakdown
		// carries the same value.
		DetailedScores: types.DetailedScores{
			Skills:      score,
			Location:    score,
			Experience:  score,
			Education:   score,
			Preferences: score,
		},
		ComputedAt: s.now().UTC(),
	}
	if reasoning := strings.TrimSpace(resp.Reasoning); reasoning != "" {
		result.Insights = []types.Insight{{
			Type:     types.InsightPreferenceMatch,
			Category: types.CategoryNeutral,
			Severity: types.SeverityInfo,
			Message:  reasoning,
			Score:    &score,
		}}
	}
	return result, nil
}

func buildSemanticPrompt(candidate types.Candidate, position types.Position) string {
	var b strings.Builder
	b.WriteString("You are an expert recruiter. Rate how compatible this candidate is with this position.\n\n")

	b.WriteString("Candidate:\n")
	fmt.Fprintf(&b, "- Skills: %s\n", orUnspecified(strings.Join(candidate.Skills.Names(), ", ")))
	fmt.Fprintf(&b, "- Experience: %.1f years\n", candidate.ExperienceYears)
	fmt.Fprintf(&b, "- Education: %s\n", orUnspecified(string(candidate.Education)))
	fmt.Fprintf(&b, "- Location: %s\n", orUnspecified(candidate.Location.String()))
	if candidate.Preferences.SalaryExpectation != nil {
		fmt.Fprintf(&b, "- Salary expectation: %s\n", candidate.Preferences.SalaryExpectation.String())
	}

	b.WriteString("\nPosition:\n")
	fmt.Fprintf(&b, "- Title: %s at %s\n", orUnspecified(position.Title), orUnspecified(position.Company))
	fmt.Fprintf(&b, "- Required skills: %s\n", orUnspecified(strings.Join(position.RequiredSkills.Names(), ", ")))
	if !position.PreferredSkills.IsEmpty() {
		fmt.Fprintf(&b, "- Preferred skills: %s\n", strings.Join(position.PreferredSkills.Names(), ", "))
	}
	if position.Experience != nil {
		fmt.Fprintf(&b, "- Experience required: %s\n", position.Experience.String())
	}
	fmt.Fprintf(&b, "- Education required: %s\n", orUnspecified(string(position.Education)))
	fmt.Fprintf(&b, "- Location: %s (remote offered: %t)\n", orUnspecified(position.Location.String()), position.OffersRemote)
	if position.Salary != nil {
		fmt.Fprintf(&b, "- Salary: %s\n", position.Salary.String())
	}

	b.WriteString("\nRespond with JSON only: {\"compatibility_score\": <0.0-1.0>, \"reasoning\": \"<one sentence>\"}\n")
	return b.String()
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not specified"
	}
	return s
}
