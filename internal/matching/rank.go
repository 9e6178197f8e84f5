package matching

import (
	"sort"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

type SortMode string

const (
	SortCompatibility   SortMode = "compatibility"
	SortBudgetLowToHigh SortMode = "budgetLowToHigh"
	SortBudgetHighToLow SortMode = "budgetHighToLow"
)

// ParseSortMode accepts the canonical names plus the short budgetLow and
// budgetHigh values older clients send. Empty means compatibility.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", string(SortCompatibility):
		return SortCompatibility, nil
	case string(SortBudgetLowToHigh), "budgetLow":
		return SortBudgetLowToHigh, nil
	case string(SortBudgetHighToLow), "budgetHigh":
		return SortBudgetHighToLow, nil
	}
	return "", domain.NewInvalidCriteria("sort", "must be one of: compatibility, budgetLowToHigh, budgetHighToLow")
}

// Candidate is a filtered profile with its score against the requester.
type Candidate struct {
	Profile    *domain.Profile
	Percentage int
}

// Rank scores every profile against requester and orders them by mode.
// Sorting is stable, so ties keep their input order. The input slice is not
// reordered.
func Rank(filtered []*domain.Profile, requester *domain.Profile, mode SortMode) []Candidate {
	ranked := make([]Candidate, len(filtered))
	for i, p := range filtered {
		ranked[i] = Candidate{Profile: p, Percentage: Score(requester, p)}
	}

	switch mode {
	case SortBudgetLowToHigh:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Profile.BudgetOrZero() < ranked[j].Profile.BudgetOrZero()
		})
	case SortBudgetHighToLow:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Profile.BudgetOrZero() > ranked[j].Profile.BudgetOrZero()
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Percentage > ranked[j].Percentage
		})
	}
	return ranked
}

// Paginate returns the 1-indexed page of items and the total page count.
// A page outside the available range is empty, never an error. An empty
// input has zero pages.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize < 1 {
		return []T{}, 0
	}
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/pageSize + 1
	}

	// Bounded by totalPages before multiplying, so the offset cannot overflow.
	if page < 1 || page > totalPages {
		return []T{}, totalPages
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	return items[start:end], totalPages
}
