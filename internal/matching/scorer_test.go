package matching

import (
	"testing"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func austinRequester() *domain.Profile {
	return newProfile(1,
		withLocation("Austin"),
		withPreferred(domain.PreferFemale),
		withSmoking(domain.SmokingNo),
		withBudget(1000),
		withPersonality(domain.PersonalityIntrovert),
	)
}

func TestScore_FullMatch(t *testing.T) {
	candidate := newProfile(2,
		withLocation("Austin"),
		withGender(domain.GenderFemale),
		withSmoking(domain.SmokingNo),
		withBudget(1100),
		withPersonality(domain.PersonalityIntrovert),
	)

	b := Breakdown(austinRequester(), candidate)

	assert.Equal(t, ScoreBreakdown{
		Location: 30, Gender: 15, Smoking: 15, Budget: 20, Personality: 20, Percentage: 100,
	}, b)
	assert.Equal(t, 100, Score(austinRequester(), candidate))
}

func TestScore_NoMatch(t *testing.T) {
	candidate := newProfile(3,
		withLocation("Dallas"),
		withGender(domain.GenderMale),
		withSmoking(domain.SmokingYes),
		withBudget(5000),
		withPersonality(domain.PersonalityExtrovert),
	)

	assert.Equal(t, 0, Score(austinRequester(), candidate))
}

func TestScore_Lines(t *testing.T) {
	tests := []struct {
		name      string
		requester *domain.Profile
		candidate *domain.Profile
		want      int
	}{
		{
			name:      "location is exact, not substring",
			requester: newProfile(1, withLocation("Austin")),
			candidate: newProfile(2, withLocation("Austin North")),
			want:      0,
		},
		{
			name:      "location is case sensitive",
			requester: newProfile(1, withLocation("Austin")),
			candidate: newProfile(2, withLocation("austin")),
			want:      0,
		},
		{
			name:      "empty locations never match",
			requester: newProfile(1, withLocation("")),
			candidate: newProfile(2, withLocation("")),
			want:      0,
		},
		{
			name:      "preferred any never earns gender line",
			requester: newProfile(1, withPreferred(domain.PreferAny)),
			candidate: newProfile(2, withGender(domain.GenderFemale)),
			want:      0,
		},
		{
			name:      "budget at exactly twenty percent",
			requester: newProfile(1, withBudget(1000)),
			candidate: newProfile(2, withBudget(800)),
			want:      20,
		},
		{
			name:      "budget just outside tolerance",
			requester: newProfile(1, withBudget(1000)),
			candidate: newProfile(2, withBudget(1201)),
			want:      0,
		},
		{
			name:      "requester without budget cannot earn budget line",
			requester: newProfile(1),
			candidate: newProfile(2, withBudget(1000)),
			want:      0,
		},
		{
			name:      "requester zero budget cannot earn budget line",
			requester: newProfile(1, withBudget(0)),
			candidate: newProfile(2, withBudget(0)),
			want:      0,
		},
		{
			name:      "smoking and personality",
			requester: newProfile(1, withSmoking(domain.SmokingOccasionally), withPersonality(domain.PersonalityAmbivert)),
			candidate: newProfile(2, withSmoking(domain.SmokingOccasionally), withPersonality(domain.PersonalityAmbivert)),
			want:      35,
		},
		{
			name:      "empty profiles",
			requester: newProfile(1),
			candidate: newProfile(2),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.requester, tt.candidate))
		})
	}
}

func TestScore_AsymmetricBudget(t *testing.T) {
	a := newProfile(1, withBudget(1000))
	b := newProfile(2, withBudget(1240))

	// |1000-1240|/1000 = 0.24 but |1240-1000|/1240 ≈ 0.19
	assert.Equal(t, 0, Score(a, b))
	assert.Equal(t, 20, Score(b, a))
}

func TestScore_BoundsAndDeterminism(t *testing.T) {
	genders := []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderNonbinary, domain.GenderOther}
	prefs := []domain.PreferredGender{domain.PreferAny, domain.PreferMale, domain.PreferFemale, domain.PreferNonbinary}
	smoking := []domain.Smoking{domain.SmokingNo, domain.SmokingYes, domain.SmokingOccasionally}
	budgets := []int{0, 500, 1000, 1150, 3000}

	var profiles []*domain.Profile
	id := 1
	for i, g := range genders {
		for j, s := range smoking {
			profiles = append(profiles, newProfile(id,
				withGender(g),
				withPreferred(prefs[(i+j)%len(prefs)]),
				withSmoking(s),
				withBudget(budgets[(i+j)%len(budgets)]),
				withLocation([]string{"Austin", "Dallas"}[j%2]),
			))
			id++
		}
	}
	profiles = append(profiles, newProfile(id))

	for _, r := range profiles {
		for _, c := range profiles {
			got := Score(r, c)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
			assert.Equal(t, got, Score(r, c))
		}
	}
}

func TestScore_NilProfiles(t *testing.T) {
	assert.Equal(t, 0, Score(nil, newProfile(1)))
	assert.Equal(t, 0, Score(newProfile(1), nil))
}
