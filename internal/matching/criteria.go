package matching

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Criteria narrows a candidate pool. A nil field places no constraint on
// its dimension. Values are assumed valid; build them with SearchInput.Parse.
type Criteria struct {
	Location  *string
	BudgetMin *int
	BudgetMax *int
	Gender    *domain.Gender
	Smoking   *domain.Smoking
	Lifestyle []LifestyleTag
}

// IsEmpty reports whether no constraint is present.
func (c Criteria) IsEmpty() bool {
	return c.Location == nil && c.BudgetMin == nil && c.BudgetMax == nil &&
		c.Gender == nil && c.Smoking == nil && len(c.Lifestyle) == 0
}

// SearchInput is the wire shape of a roommate search request.
type SearchInput struct {
	Location        *string  `json:"location" validate:"omitempty,max=100"`
	BudgetMin       *int     `json:"budgetMin" validate:"omitempty,min=0"`
	BudgetMax       *int     `json:"budgetMax" validate:"omitempty,min=0"`
	PreferredGender *string  `json:"preferredGender" validate:"omitempty,oneof=any male female nonbinary"`
	Smoking         *string  `json:"smoking" validate:"omitempty,oneof=any no yes occasionally"`
	Lifestyle       []string `json:"lifestyle" validate:"omitempty,dive,oneof=early-bird night-owl introvert extrovert clean pet-friendly"`
	Sort            string   `json:"sort" validate:"omitempty,oneof=compatibility budgetLowToHigh budgetHighToLow budgetLow budgetHigh"`
	Page            int      `json:"page" validate:"omitempty,min=1"`
	PageSize        int      `json:"pageSize" validate:"omitempty,min=1"`
}

// Query is a validated search request.
type Query struct {
	Criteria Criteria
	Sort     SortMode
	Page     int
	PageSize int
}

const anyValue = "any"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse validates the input and converts it into a Query. The literal "any"
// is translated to an absent constraint here and nowhere else. Any failure
// is returned as *domain.InvalidCriteriaError before filtering can start.
func (in *SearchInput) Parse(defaultPageSize, maxPageSize int) (*Query, error) {
	if in == nil {
		in = &SearchInput{}
	}
	if err := validate.Struct(in); err != nil {
		return nil, translateValidationError(err)
	}
	if in.BudgetMin != nil && in.BudgetMax != nil && *in.BudgetMin > *in.BudgetMax {
		return nil, domain.NewInvalidCriteria("budgetMax", "must be greater than or equal to budgetMin")
	}
	if in.PageSize > maxPageSize {
		return nil, domain.NewInvalidCriteria("pageSize", fmt.Sprintf("must be at most %d", maxPageSize))
	}

	sortMode, err := ParseSortMode(in.Sort)
	if err != nil {
		return nil, err
	}

	q := &Query{
		Sort:     sortMode,
		Page:     in.Page,
		PageSize: in.PageSize,
		Criteria: Criteria{
			BudgetMin: in.BudgetMin,
			BudgetMax: in.BudgetMax,
		},
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	if in.Location != nil {
		if loc := strings.TrimSpace(*in.Location); loc != "" {
			q.Criteria.Location = &loc
		}
	}
	if in.PreferredGender != nil && *in.PreferredGender != anyValue {
		g := domain.Gender(*in.PreferredGender)
		q.Criteria.Gender = &g
	}
	if in.Smoking != nil && *in.Smoking != anyValue {
		s := domain.Smoking(*in.Smoking)
		q.Criteria.Smoking = &s
	}

	seen := make(map[LifestyleTag]bool, len(in.Lifestyle))
	for _, raw := range in.Lifestyle {
		tag := LifestyleTag(raw)
		if seen[tag] {
			continue
		}
		seen[tag] = true
		q.Criteria.Lifestyle = append(q.Criteria.Lifestyle, tag)
	}

	return q, nil
}

func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewInvalidCriteria("request", err.Error())
	}
	fe := verrs[0]
	field := fe.Field()

	var reason string
	switch fe.Tag() {
	case "oneof":
		reason = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		reason = "must be at least " + fe.Param()
	case "max":
		reason = "must be at most " + fe.Param() + " characters"
	default:
		reason = "failed " + fe.Tag() + " validation"
	}
	return domain.NewInvalidCriteria(field, reason)
}
