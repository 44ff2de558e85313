package validation_test

import (
	"testing"

	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangedInput mirrors the salary-range rule-set shape used by profile
// and search inputs.
type rangedInput struct {
	Title     string `json:"title" validate:"required,min=3,max=100"`
	SalaryMin *int   `json:"salary_min" validate:"omitempty,min=20000,max=1000000"`
	SalaryMax *int   `json:"salary_max" validate:"omitempty,min=20000,max=1000000"`
}

func (in *rangedInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		{
			Field:   "salary_max",
			Code:    validation.CodeInconsistent,
			Message: "must be greater than or equal to salary_min",
			Check: func() bool {
				return in.SalaryMin == nil || in.SalaryMax == nil || *in.SalaryMax >= *in.SalaryMin
			},
		},
	}
}

func intPtr(v int) *int { return &v }

func TestEngineCollectsAllStructuralErrors(t *testing.T) {
	engine := validation.NewEngine()

	errs := engine.Validate(&rangedInput{
		Title:     "ab",
		SalaryMin: intPtr(100),
	})
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "salary_min")
}

func TestEngineRefinementsRunOnlyAfterCleanPass(t *testing.T) {
	engine := validation.NewEngine()

	t.Run("structural failure suppresses refinements", func(t *testing.T) {
		errs := engine.Validate(&rangedInput{
			Title:     "", // structural error
			SalaryMin: intPtr(80000),
			SalaryMax: intPtr(60000), // would also fail the refinement
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
		assert.Equal(t, validation.CodeRequired, errs[0].Code)
	})

	t.Run("inverted range is blamed on the max field", func(t *testing.T) {
		errs := engine.Validate(&rangedInput{
			Title:     "Backend Engineer",
			SalaryMin: intPtr(80000),
			SalaryMax: intPtr(60000),
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "salary_max", errs[0].Field)
		assert.Equal(t, validation.CodeInconsistent, errs[0].Code)
	})

	t.Run("valid range passes", func(t *testing.T) {
		errs := engine.Validate(&rangedInput{
			Title:     "Backend Engineer",
			SalaryMin: intPtr(60000),
			SalaryMax: intPtr(80000),
		})
		assert.Empty(t, errs)
	})

	t.Run("half-open range skips the check", func(t *testing.T) {
		errs := engine.Validate(&rangedInput{
			Title:     "Backend Engineer",
			SalaryMax: intPtr(60000),
		})
		assert.Empty(t, errs)
	})
}

func TestEngineReportsJSONFieldPaths(t *testing.T) {
	engine := validation.NewEngine()

	type nested struct {
		Sections []struct {
			Heading string `json:"heading" validate:"required"`
		} `json:"sections" validate:"dive"`
	}

	in := nested{Sections: make([]struct {
		Heading string `json:"heading" validate:"required"`
	}, 1)}

	errs := engine.Validate(&in)
	assert.Len(t, errs, 1)
	assert.Equal(t, "sections[0].heading", errs[0].Field)
}
