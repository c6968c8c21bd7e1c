package scoring

import (
	"math"

	"github.com/jonathan/match-engine/internal/experience"
	"github.com/jonathan/match-engine/internal/types"
)

// weightSumEpsilon is the tolerated drift from 1.0 before a weight vector
// gets renormalized.
const weightSumEpsilon = 1e-6

// Weights is a per-criterion weight vector. A valid vector has no negative
// or non-finite entries and a positive sum; Normalize scales it to sum 1.0.
type Weights struct {
	Skills      float64 `json:"skills"`
	Location    float64 `json:"location"`
	Experience  float64 `json:"experience"`
	Education   float64 `json:"education"`
	Preferences float64 `json:"preferences"`
}

// DefaultWeights returns the balanced vector used when no seniority signal
// is available.
func DefaultWeights() Weights {
	return WeightsForSeniority(experience.SeniorityConfirmed)
}

// WeightsForSeniority returns the adaptive vector for a seniority bucket.
// Juniors are judged more on experience fit and location, seniors on skills
// and compensation fit.
func WeightsForSeniority(s experience.Seniority) Weights {
	switch s {
	case experience.SeniorityJunior:
		return Weights{Skills: 0.30, Location: 0.20, Experience: 0.25, Education: 0.15, Preferences: 0.10}
	case experience.SenioritySenior:
		return Weights{Skills: 0.40, Location: 0.10, Experience: 0.10, Education: 0.10, Preferences: 0.30}
	default:
		return Weights{Skills: 0.30, Location: 0.15, Experience: 0.20, Education: 0.15, Preferences: 0.20}
	}
}

// WeightsFromMap builds a vector from criterion-name keys, rejecting
// unknown names. The result is not normalized; call Normalize before use.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	var w Weights
	for name, value := range m {
		switch name {
		case types.CriterionSkills:
			w.Skills = value
		case types.CriterionLocation:
			w.Location = value
		case types.CriterionExperience:
			w.Experience = value
		case types.CriterionEducation:
			w.Education = value
		case types.CriterionPreferences:
			w.Preferences = value
		default:
			return Weights{}, &InvalidWeightConfigurationError{Reason: "unknown criterion " + name}
		}
	}
	return w, nil
}

// Sum returns the total of all entries.
func (w Weights) Sum() float64 {
	return w.Skills + w.Location + w.Experience + w.Education + w.Preferences
}

// Validate checks that every entry is finite and non-negative and that the
// vector is not all zero.
func (w Weights) Validate() error {
	for _, cw := range w.ordered() {
		if math.IsNaN(cw.weight) || math.IsInf(cw.weight, 0) {
			return &InvalidWeightConfigurationError{Reason: "non-finite weight for " + cw.criterion}
		}
		if cw.weight < 0 {
			return &InvalidWeightConfigurationError{Reason: "negative weight for " + cw.criterion}
		}
	}
	if w.Sum() == 0 {
		return &InvalidWeightConfigurationError{Reason: "all weights are zero"}
	}
	return nil
}

// Normalize validates the vector and scales it so the entries sum to 1.0.
// Vectors already within epsilon of 1.0 pass through unchanged.
func (w Weights) Normalize() (Weights, error) {
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	sum := w.Sum()
	if math.Abs(sum-1.0) <= weightSumEpsilon {
		return w, nil
	}
	return Weights{
		Skills:      w.Skills / sum,
		Location:    w.Location / sum,
		Experience:  w.Experience / sum,
		Education:   w.Education / sum,
		Preferences: w.Preferences / sum,
	}, nil
}

// Apply computes the weighted sum of the detailed scores.
func (w Weights) Apply(d types.DetailedScores) float64 {
	return d.Skills*w.Skills +
		d.Location*w.Location +
		d.Experience*w.Experience +
		d.Education*w.Education +
		d.Preferences*w.Preferences
}

type criterionWeight struct {
	criterion string
	weight    float64
}

func (w Weights) ordered() []criterionWeight {
	return []criterionWeight{
		{types.CriterionSkills, w.Skills},
		{types.CriterionLocation, w.Location},
		{types.CriterionExperience, w.Experience},
		{types.CriterionEducation, w.Education},
		{types.CriterionPreferences, w.Preferences},
	}
}
