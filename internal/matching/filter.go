package matching

import (
	"strings"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// Filter returns the profiles in pool that satisfy every present criterion,
// in pool order. The requester is always excluded. Profiles are not copied
// or modified.
func Filter(pool []*domain.Profile, requesterID int, c Criteria) []*domain.Profile {
	out := make([]*domain.Profile, 0, len(pool))
	var needle string
	if c.Location != nil {
		needle = strings.ToLower(*c.Location)
	}

	for _, p := range pool {
		if p == nil || p.ID == requesterID {
			continue
		}
		if c.Location != nil && !locationContains(p, needle) {
			continue
		}
		// An unknown budget is never rejected by a bound.
		if c.BudgetMin != nil && p.Budget != nil && *p.Budget < *c.BudgetMin {
			continue
		}
		if c.BudgetMax != nil && p.Budget != nil && *p.Budget > *c.BudgetMax {
			continue
		}
		if c.Gender != nil && (p.Gender == nil || *p.Gender != *c.Gender) {
			continue
		}
		if c.Smoking != nil && (p.Smoking == nil || *p.Smoking != *c.Smoking) {
			continue
		}
		if !hasLifestyle(p, c.Lifestyle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func locationContains(p *domain.Profile, lowerNeedle string) bool {
	if p.Location == nil || *p.Location == "" {
		return false
	}
	return strings.Contains(strings.ToLower(*p.Location), lowerNeedle)
}

func hasLifestyle(p *domain.Profile, tags []LifestyleTag) bool {
	for _, t := range tags {
		if !t.Matches(p) {
			return false
		}
	}
	return true
}
