package domain

import "time"

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonbinary Gender = "nonbinary"
	GenderOther     Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonbinary, GenderOther:
		return true
	}
	return false
}

// PreferredGender is the profile's own roommate preference. "any" is a real
// value here; search filters translate it to "no constraint".
type PreferredGender string

const (
	PreferAny       PreferredGender = "any"
	PreferMale      PreferredGender = "male"
	PreferFemale    PreferredGender = "female"
	PreferNonbinary PreferredGender = "nonbinary"
)

func (p PreferredGender) Valid() bool {
	switch p {
	case PreferAny, PreferMale, PreferFemale, PreferNonbinary:
		return true
	}
	return false
}

type Smoking string

const (
	SmokingNo           Smoking = "no"
	SmokingYes          Smoking = "yes"
	SmokingOccasionally Smoking = "occasionally"
)

func (s Smoking) Valid() bool {
	switch s {
	case SmokingNo, SmokingYes, SmokingOccasionally:
		return true
	}
	return false
}

type Cleanliness string

const (
	CleanlinessMessy     Cleanliness = "messy"
	CleanlinessAverage   Cleanliness = "average"
	CleanlinessClean     Cleanliness = "clean"
	CleanlinessVeryClean Cleanliness = "very-clean"
)

var cleanlinessRank = map[Cleanliness]int{
	CleanlinessMessy:     0,
	CleanlinessAverage:   1,
	CleanlinessClean:     2,
	CleanlinessVeryClean: 3,
}

func (c Cleanliness) Valid() bool {
	_, ok := cleanlinessRank[c]
	return ok
}

// AtLeast reports whether c is the same or tidier than floor.
func (c Cleanliness) AtLeast(floor Cleanliness) bool {
	r, ok := cleanlinessRank[c]
	if !ok {
		return false
	}
	return r >= cleanlinessRank[floor]
}

type Personality string

const (
	PersonalityIntrovert Personality = "introvert"
	PersonalityExtrovert Personality = "extrovert"
	PersonalityAmbivert  Personality = "ambivert"
)

func (p Personality) Valid() bool {
	switch p {
	case PersonalityIntrovert, PersonalityExtrovert, PersonalityAmbivert:
		return true
	}
	return false
}

type Profile struct {
	ID              int              `json:"id" db:"id"`
	Username        string           `json:"username" db:"username"`
	FullName        string           `json:"fullName" db:"full_name"`
	Age             *int             `json:"age" db:"age"`
	Gender          *Gender          `json:"gender" db:"gender"`
	PreferredGender *PreferredGender `json:"preferredGender" db:"preferred_gender"`
	Smoking         *Smoking         `json:"smoking" db:"smoking"`
	Location        *string          `json:"location" db:"location"`
	Budget          *int             `json:"budget" db:"budget"`
	MoveInDate      *string          `json:"moveInDate" db:"move_in_date"`
	Cleanliness     *Cleanliness     `json:"cleanliness" db:"cleanliness"`
	Personality     *Personality     `json:"personality" db:"personality"`
	HasPets         bool             `json:"hasPets" db:"has_pets"`
	Religion        *string          `json:"religion" db:"religion"`
	Bio             *string          `json:"bio" db:"bio"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// BudgetOrZero returns the monthly budget, 0 when unset.
func (p *Profile) BudgetOrZero() int {
	if p.Budget == nil {
		return 0
	}
	return *p.Budget
}

// Clone returns a deep copy so callers can hand out snapshots.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Age = clonePtr(p.Age)
	c.Gender = clonePtr(p.Gender)
	c.PreferredGender = clonePtr(p.PreferredGender)
	c.Smoking = clonePtr(p.Smoking)
	c.Location = clonePtr(p.Location)
	c.Budget = clonePtr(p.Budget)
	c.MoveInDate = clonePtr(p.MoveInDate)
	c.Cleanliness = clonePtr(p.Cleanliness)
	c.Personality = clonePtr(p.Personality)
	c.Religion = clonePtr(p.Religion)
	c.Bio = clonePtr(p.Bio)
	return &c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
