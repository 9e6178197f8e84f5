package matching

import (
	"math"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// Rubric weights. They always sum to the denominator, whether or not a
// line can be satisfied for a given pair.
const (
	WeightLocation    = 30
	WeightGender      = 15
	WeightSmoking     = 15
	WeightBudget      = 20
	WeightPersonality = 20

	totalWeight = WeightLocation + WeightGender + WeightSmoking + WeightBudget + WeightPersonality

	// budgetTolerance is relative to the requester's own budget.
	budgetTolerance = 0.20
)

// ScoreBreakdown holds the points earned on each rubric line.
type ScoreBreakdown struct {
	Location    int `json:"location"`
	Gender      int `json:"gender"`
	Smoking     int `json:"smoking"`
	Budget      int `json:"budget"`
	Personality int `json:"personality"`
	Percentage  int `json:"percentage"`
}

// Score returns the compatibility percentage of candidate from requester's
// point of view. It is not symmetric.
func Score(requester, candidate *domain.Profile) int {
	return Breakdown(requester, candidate).Percentage
}

// Breakdown evaluates every rubric line for the pair.
func Breakdown(requester, candidate *domain.Profile) ScoreBreakdown {
	var b ScoreBreakdown
	if requester == nil || candidate == nil {
		return b
	}

	if nonEmpty(requester.Location) && nonEmpty(candidate.Location) && *requester.Location == *candidate.Location {
		b.Location = WeightLocation
	}
	if requester.PreferredGender != nil && candidate.Gender != nil &&
		string(*requester.PreferredGender) == string(*candidate.Gender) {
		b.Gender = WeightGender
	}
	if requester.Smoking != nil && candidate.Smoking != nil && *requester.Smoking == *candidate.Smoking {
		b.Smoking = WeightSmoking
	}
	if budgetCompatible(requester.Budget, candidate.Budget) {
		b.Budget = WeightBudget
	}
	if requester.Personality != nil && candidate.Personality != nil && *requester.Personality == *candidate.Personality {
		b.Personality = WeightPersonality
	}

	earned := b.Location + b.Gender + b.Smoking + b.Budget + b.Personality
	b.Percentage = int(math.Round(float64(earned) / totalWeight * 100))
	return b
}

// budgetCompatible needs a non-zero requester budget for the ratio; the
// line simply cannot be earned otherwise.
func budgetCompatible(requester, candidate *int) bool {
	if requester == nil || candidate == nil || *requester <= 0 || *candidate == 0 {
		return false
	}
	diff := math.Abs(float64(*requester - *candidate))
	return diff/float64(*requester) <= budgetTolerance
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
