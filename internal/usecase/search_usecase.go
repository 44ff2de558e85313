package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

const defaultSearchLimit = 20

type searchUsecase struct {
	repo   domain.SearchRepository
	engine *validation.Engine
}

func NewSearchUsecase(repo domain.SearchRepository, engine *validation.Engine) domain.SearchUsecase {
	return &searchUsecase{repo: repo, engine: engine}
}

func (u *searchUsecase) Search(ctx context.Context, q *domain.SearchQuery) ([]domain.Profile, int64, error) {
	if errs := u.engine.Validate(q); len(errs) > 0 {
		return nil, 0, apperror.Validation(errs)
	}
	if q.Limit == 0 {
		q.Limit = defaultSearchLimit
	}
	q.Skills = validation.SanitizeSkills(q.Skills)
	return u.repo.SearchProfiles(ctx, q)
}
