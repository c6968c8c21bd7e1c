package types

import (
	"fmt"
	"strings"
)

// EducationLevel is a rank-ordered formal education attainment. The empty
// string means unspecified.
type EducationLevel string

const (
	EducationUnspecified EducationLevel = ""
	EducationNone        EducationLevel = "none"
	EducationHighSchool  EducationLevel = "high_school"
	EducationAssociate   EducationLevel = "associate"
	EducationBachelor    EducationLevel = "bachelor"
	EducationMaster      EducationLevel = "master"
	EducationDoctorate   EducationLevel = "doctorate"
)

var educationRanks = map[EducationLevel]int{
	EducationNone:       0,
	EducationHighSchool: 1,
	EducationAssociate:  2,
	EducationBachelor:   3,
	EducationMaster:     4,
	EducationDoctorate:  5,
}

var educationAliases = map[string]EducationLevel{
	"none":        EducationNone,
	"high_school": EducationHighSchool,
	"high school": EducationHighSchool,
	"highschool":  EducationHighSchool,
	"secondary":   EducationHighSchool,
	"associate":   EducationAssociate,
	"associates":  EducationAssociate,
	"associate's": EducationAssociate,
	"bachelor":    EducationBachelor,
	"bachelors":   EducationBachelor,
	"bachelor's":  EducationBachelor,
	"bs":          EducationBachelor,
	"ba":          EducationBachelor,
	"bsc":         EducationBachelor,
	"licence":     EducationBachelor,
	"master":      EducationMaster,
	"masters":     EducationMaster,
	"master's":    EducationMaster,
	"ms":          EducationMaster,
	"msc":         EducationMaster,
	"mba":         EducationMaster,
	"doctorate":   EducationDoctorate,
	"doctoral":    EducationDoctorate,
	"phd":         EducationDoctorate,
	"ph.d":        EducationDoctorate,
	"ph.d.":       EducationDoctorate,
}

// ParseEducationLevel maps a free-form label to an EducationLevel. Common
// degree abbreviations are accepted. An empty input parses to
// EducationUnspecified.
func ParseEducationLevel(s string) (EducationLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return EducationUnspecified, nil
	}
	if level, ok := educationAliases[key]; ok {
		return level, nil
	}
	return EducationUnspecified, fmt.Errorf("unknown education level %q", s)
}

// Known reports whether the level is a recognized attainment (as opposed to
// unspecified or an invalid string).
func (l EducationLevel) Known() bool {
	_, ok := educationRanks[l]
	return ok
}

// Rank returns the ordinal position of the level, from 0 (none) to
// 5 (doctorate). Unknown levels return -1.
func (l EducationLevel) Rank() int {
	if r, ok := educationRanks[l]; ok {
		return r
	}
	return -1
}

// Compare returns the signed rank distance l-other. Both levels must be
// known; use Known before calling.
func (l EducationLevel) Compare(other EducationLevel) int {
	return l.Rank() - other.Rank()
}

// String returns the level name.
func (l EducationLevel) String() string {
	return string(l)
}
