package types

import (
	"fmt"
	"strings"
	"time"
)

// JobRequirements carries the non-skill constraints a position imposes:
// contract shape, work mode, industry and logistics. Empty fields mean the
// position states no constraint on that aspect.
type JobRequirements struct {
	JobType           string     `json:"job_type,omitempty"`
	WorkMode          string     `json:"work_mode,omitempty"`
	Industry          string     `json:"industry,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	MaxCommuteMinutes *int       `json:"max_commute_minutes,omitempty"`
}

// Position is an open role that candidates are matched against. Positions
// are treated as immutable once constructed.
type Position struct {
	ID              string           `json:"id"`
	Title           string           `json:"title,omitempty"`
	Company         string           `json:"company,omitempty"`
	RequiredSkills  SkillSet         `json:"required_skills"`
	PreferredSkills SkillSet         `json:"preferred_skills"`
	Location        Location         `json:"location"`
	Experience      *ExperienceRange `json:"experience,omitempty"`
	Education       EducationLevel   `json:"education,omitempty"`
	Salary          *SalaryRange     `json:"salary,omitempty"`
	OffersRemote    bool             `json:"offers_remote"`
	Requirements    JobRequirements  `json:"requirements"`
}

// NewPosition validates the given fields and returns the position.
func NewPosition(p Position) (Position, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	if err := p.Validate(); err != nil {
		return Position{}, err
	}
	return p, nil
}

// Validate checks the structural invariants of the position.
func (p Position) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("position: missing id")
	}
	if p.Experience != nil {
		if err := p.Experience.Validate(); err != nil {
			return fmt.Errorf("position %s: %w", p.ID, err)
		}
	}
	if p.Education != EducationUnspecified && !p.Education.Known() {
		return fmt.Errorf("position %s: unknown education level %q", p.ID, p.Education)
	}
	if p.Salary != nil {
		if err := p.Salary.Validate(); err != nil {
			return fmt.Errorf("position %s: %w", p.ID, err)
		}
	}
	if p.Requirements.MaxCommuteMinutes != nil && *p.Requirements.MaxCommuteMinutes < 0 {
		return fmt.Errorf("position %s: negative max commute %d", p.ID, *p.Requirements.MaxCommuteMinutes)
	}
	return nil
}

// EffectiveWorkMode returns the work mode the position operates under.
// A position that offers remote work counts as remote even when the
// requirements leave the mode unstated.
func (p Position) EffectiveWorkMode() string {
	if mode := strings.ToLower(strings.TrimSpace(p.Requirements.WorkMode)); mode != "" {
		return mode
	}
	if p.OffersRemote {
		return WorkModeRemote
	}
	return ""
}
