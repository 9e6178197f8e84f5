package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnums_Valid(t *testing.T) {
	assert.True(t, GenderNonbinary.Valid())
	assert.False(t, Gender("any").Valid())
	assert.True(t, PreferAny.Valid())
	assert.False(t, PreferredGender("other").Valid())
	assert.True(t, SmokingOccasionally.Valid())
	assert.False(t, Smoking("sometimes").Valid())
	assert.True(t, CleanlinessVeryClean.Valid())
	assert.False(t, Cleanliness("spotless").Valid())
	assert.True(t, PersonalityAmbivert.Valid())
	assert.False(t, Personality("").Valid())
}

func TestCleanliness_AtLeast(t *testing.T) {
	assert.True(t, CleanlinessVeryClean.AtLeast(CleanlinessClean))
	assert.True(t, CleanlinessClean.AtLeast(CleanlinessClean))
	assert.False(t, CleanlinessAverage.AtLeast(CleanlinessClean))
	assert.False(t, Cleanliness("bogus").AtLeast(CleanlinessMessy))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	loc := "Austin"
	budget := 1000
	p := &Profile{ID: 1, Location: &loc, Budget: &budget}

	c := p.Clone()
	*c.Location = "Dallas"
	*c.Budget = 5

	assert.Equal(t, "Austin", *p.Location)
	assert.Equal(t, 1000, p.BudgetOrZero())
	assert.Nil(t, (*Profile)(nil).Clone())
}

func TestMessage_GetOtherUserID(t *testing.T) {
	m := &Message{SenderID: 1, ReceiverID: 2}

	other, ok := m.GetOtherUserID(1)
	assert.True(t, ok)
	assert.Equal(t, 2, other)

	_, ok = m.GetOtherUserID(3)
	assert.False(t, ok)
	assert.True(t, m.HasUser(2))
}

func TestInvalidCriteriaError(t *testing.T) {
	var err error = fmt.Errorf("search: %w", NewInvalidCriteria("budgetMax", "must be >= budgetMin"))

	assert.True(t, errors.Is(err, ErrInvalidCriteria))

	var ice *InvalidCriteriaError
	assert.True(t, errors.As(err, &ice))
	assert.Equal(t, "budgetMax", ice.Field)
}

func TestScoreResult_Quality(t *testing.T) {
	assert.Equal(t, MatchQualityExcellent, ScoreResult{Percentage: 100}.Quality())
	assert.Equal(t, MatchQualityGood, ScoreResult{Percentage: 65}.Quality())
	assert.Equal(t, MatchQualityFair, ScoreResult{Percentage: 50}.Quality())
	assert.Equal(t, MatchQualityPoor, ScoreResult{Percentage: 0}.Quality())
}
