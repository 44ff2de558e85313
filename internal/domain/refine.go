package domain

import (
	"time"

	"go-jobboard-backend/pkg/validation"
)

const dateLayout = "2006-01-02"

// Shared cross-field refinements. By convention the error is attributed
// to the field judged "wrong": the max bound for inverted ranges, the
// end date for temporal conflicts.

func refineSalaryRange(field string, min, max *int) validation.Refinement {
	return validation.Refinement{
		Field:   field,
		Code:    validation.CodeInconsistent,
		Message: "must be greater than or equal to the salary minimum",
		Check: func() bool {
			return min == nil || max == nil || *max >= *min
		},
	}
}

func refineEndAfterStart(field, start, end string) validation.Refinement {
	return validation.Refinement{
		Field:   field,
		Code:    validation.CodeInconsistent,
		Message: "must not be earlier than the start date",
		Check: func() bool {
			if start == "" || end == "" {
				return true
			}
			s, errS := time.Parse(dateLayout, start)
			e, errE := time.Parse(dateLayout, end)
			if errS != nil || errE != nil {
				// structurally invalid dates never reach refinements
				return true
			}
			return !e.Before(s)
		},
	}
}

func refineEndAbsentWhenOngoing(field string, ongoing bool, end string) validation.Refinement {
	return validation.Refinement{
		Field:   field,
		Code:    validation.CodeInconsistent,
		Message: "must be empty while the period is marked as ongoing",
		Check: func() bool {
			return !ongoing || end == ""
		},
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolOrFalse(p *bool) bool {
	return p != nil && *p
}
