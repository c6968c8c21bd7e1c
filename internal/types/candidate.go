package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/match-engine/internal/experience"
)

// Candidate is the profile being matched against positions. Candidates are
// treated as immutable once constructed.
type Candidate struct {
	ID              string         `json:"id"`
	Name            string         `json:"name,omitempty"`
	Skills          SkillSet       `json:"skills"`
	Location        Location       `json:"location"`
	ExperienceYears float64        `json:"experience_years"`
	Education       EducationLevel `json:"education,omitempty"`
	Preferences     Preferences    `json:"preferences"`
}

// NewCandidate validates the given fields and returns the candidate.
func NewCandidate(c Candidate) (Candidate, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return Candidate{}, err
	}
	return c, nil
}

// Validate checks the structural invariants of the candidate profile.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("candidate: missing id")
	}
	if c.ExperienceYears < 0 || math.IsNaN(c.ExperienceYears) || math.IsInf(c.ExperienceYears, 0) {
		return fmt.Errorf("candidate %s: invalid experience years %v", c.ID, c.ExperienceYears)
	}
	if c.Education != EducationUnspecified && !c.Education.Known() {
		return fmt.Errorf("candidate %s: unknown education level %q", c.ID, c.Education)
	}
	if err := c.Preferences.Validate(); err != nil {
		return fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	return nil
}

// Seniority returns the seniority bucket derived from the candidate's years
// of experience.
func (c Candidate) Seniority() experience.Seniority {
	return experience.Classify(c.ExperienceYears)
}
