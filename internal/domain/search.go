package domain

import (
	"context"

	"go-jobboard-backend/pkg/validation"
)

// SearchQuery is the rule set for candidate search requests. It is
// validated like any other entity but never persisted.
type SearchQuery struct {
	Keywords         string   `json:"keywords" validate:"max=200"`
	Location         string   `json:"location" validate:"max=150"`
	Skills           []string `json:"skills" validate:"max=20,unique_fold,dive,min=2,max=100"`
	SalaryMin        *int     `json:"salary_min" validate:"omitempty,min=20000,max=1000000"`
	SalaryMax        *int     `json:"salary_max" validate:"omitempty,min=20000,max=1000000"`
	RemotePreference string   `json:"remote_preference" validate:"omitempty,oneof=remote hybrid office"`
	Limit            int      `json:"limit" validate:"min=0,max=100"`
	Offset           int      `json:"offset" validate:"min=0"`
}

func (q *SearchQuery) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineSalaryRange("salary_max", q.SalaryMin, q.SalaryMax),
	}
}

type SearchRepository interface {
	SearchProfiles(ctx context.Context, q *SearchQuery) ([]Profile, int64, error)
}

type SearchUsecase interface {
	Search(ctx context.Context, q *SearchQuery) ([]Profile, int64, error)
}
