package types

import (
	"strings"
	"time"
)

// Job types understood by preferences and position requirements.
const (
	JobTypeFullTime  = "full_time"
	JobTypePartTime  = "part_time"
	JobTypeContract  = "contract"
	JobTypeFreelance = "freelance"
	JobTypeIntern    = "internship"
)

// Work modes understood by preferences and position requirements.
const (
	WorkModeOnsite = "onsite"
	WorkModeHybrid = "hybrid"
	WorkModeRemote = "remote"
)

// Preferences captures what a candidate wants from a position. Empty slices
// and nil pointers mean the candidate stated no preference on that aspect.
type Preferences struct {
	JobTypes          []string     `json:"job_types,omitempty"`
	WorkModes         []string     `json:"work_modes,omitempty"`
	SalaryExpectation *SalaryRange `json:"salary_expectation,omitempty"`
	Industries        []string     `json:"industries,omitempty"`
	AvailableFrom     *time.Time   `json:"available_from,omitempty"`
}

// HasJobTypePreference reports whether the candidate stated any job type.
func (p Preferences) HasJobTypePreference() bool {
	return len(p.JobTypes) > 0
}

// AcceptsJobType reports whether the given job type appears in the stated
// preferences. Callers should check HasJobTypePreference first; with no
// stated preference this returns false.
func (p Preferences) AcceptsJobType(jobType string) bool {
	return containsFold(p.JobTypes, jobType)
}

// HasWorkModePreference reports whether the candidate stated any work mode.
func (p Preferences) HasWorkModePreference() bool {
	return len(p.WorkModes) > 0
}

// AcceptsWorkMode reports whether the given work mode appears in the stated
// preferences.
func (p Preferences) AcceptsWorkMode(mode string) bool {
	return containsFold(p.WorkModes, mode)
}

// HasIndustryPreference reports whether the candidate stated any industry.
func (p Preferences) HasIndustryPreference() bool {
	return len(p.Industries) > 0
}

// PrefersIndustry reports whether the given industry appears in the stated
// preferences.
func (p Preferences) PrefersIndustry(industry string) bool {
	return containsFold(p.Industries, industry)
}

// Validate checks the internal consistency of the stated preferences.
func (p Preferences) Validate() error {
	if p.SalaryExpectation != nil {
		if err := p.SalaryExpectation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func containsFold(list []string, v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	for _, item := range list {
		if strings.ToLower(strings.TrimSpace(item)) == v {
			return true
		}
	}
	return false
}
