package matching

import "github.com/gdugdh24/roommate-backend/internal/domain"

// LifestyleTag is a search-side label derived from profile attributes.
type LifestyleTag string

const (
	TagEarlyBird   LifestyleTag = "early-bird"
	TagNightOwl    LifestyleTag = "night-owl"
	TagIntrovert   LifestyleTag = "introvert"
	TagExtrovert   LifestyleTag = "extrovert"
	TagClean       LifestyleTag = "clean"
	TagPetFriendly LifestyleTag = "pet-friendly"
)

// Matches reports whether p exhibits the tag. Profiles carry no sleep
// schedule, so early-bird and night-owl never exclude anyone.
func (t LifestyleTag) Matches(p *domain.Profile) bool {
	switch t {
	case TagIntrovert:
		return p.Personality != nil && *p.Personality == domain.PersonalityIntrovert
	case TagExtrovert:
		return p.Personality != nil && *p.Personality == domain.PersonalityExtrovert
	case TagClean:
		return p.Cleanliness != nil && p.Cleanliness.AtLeast(domain.CleanlinessClean)
	case TagPetFriendly:
		return p.HasPets
	case TagEarlyBird, TagNightOwl:
		return true
	}
	return false
}
