package matching

import "github.com/gdugdh24/roommate-backend/internal/domain"

func ptr[T any](v T) *T { return &v }

type profileOpt func(p *domain.Profile)

func newProfile(id int, opts ...profileOpt) *domain.Profile {
	p := &domain.Profile{ID: id, Username: "user"}
	for _, o := range opts {
		o(p)
	}
	return p
}

func withLocation(l string) profileOpt { return func(p *domain.Profile) { p.Location = ptr(l) } }
func withBudget(b int) profileOpt      { return func(p *domain.Profile) { p.Budget = ptr(b) } }
func withGender(g domain.Gender) profileOpt {
	return func(p *domain.Profile) { p.Gender = ptr(g) }
}
func withPreferred(g domain.PreferredGender) profileOpt {
	return func(p *domain.Profile) { p.PreferredGender = ptr(g) }
}
func withSmoking(s domain.Smoking) profileOpt {
	return func(p *domain.Profile) { p.Smoking = ptr(s) }
}
func withPersonality(v domain.Personality) profileOpt {
	return func(p *domain.Profile) { p.Personality = ptr(v) }
}
func withCleanliness(c domain.Cleanliness) profileOpt {
	return func(p *domain.Profile) { p.Cleanliness = ptr(c) }
}
func withPets() profileOpt { return func(p *domain.Profile) { p.HasPets = true } }

func ids(profiles []*domain.Profile) []int {
	out := make([]int, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func candidateIDs(cs []Candidate) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Profile.ID)
	}
	return out
}
