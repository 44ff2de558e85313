package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type educationUsecase struct {
	repo   domain.EducationRepository
	engine *validation.Engine
}

func NewEducationUsecase(repo domain.EducationRepository, engine *validation.Engine) domain.EducationUsecase {
	return &educationUsecase{repo: repo, engine: engine}
}

func (u *educationUsecase) List(ctx context.Context) ([]domain.Education, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *educationUsecase) Create(ctx context.Context, in *domain.EducationCreateInput) (*domain.Education, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	now := time.Now().UTC()
	edu := &domain.Education{
		UserID:       userID,
		Institution:  in.Institution,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		IsOngoing:    in.IsOngoing,
		Grade:        in.Grade,
		Description:  in.Description,
		SortOrder:    in.SortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.Create(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) Update(ctx context.Context, id int64, in *domain.EducationUpdateInput) (*domain.Education, error) {
	edu, err := u.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	if in.Institution != nil {
		edu.Institution = *in.Institution
	}
	if in.Degree != nil {
		edu.Degree = *in.Degree
	}
	if in.FieldOfStudy != nil {
		edu.FieldOfStudy = *in.FieldOfStudy
	}
	if in.Location != nil {
		edu.Location = *in.Location
	}
	if in.StartDate != nil {
		edu.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		edu.EndDate = in.EndDate
	}
	if in.IsOngoing != nil {
		edu.IsOngoing = *in.IsOngoing
		if edu.IsOngoing {
			edu.EndDate = nil
		}
	}
	if in.Grade != nil {
		edu.Grade = *in.Grade
	}
	if in.Description != nil {
		edu.Description = *in.Description
	}
	if in.SortOrder != nil {
		edu.SortOrder = *in.SortOrder
	}
	edu.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.getOwned(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *educationUsecase) getOwned(ctx context.Context, id int64) (*domain.Education, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	edu, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if edu == nil {
		return nil, apperror.NotFound("Education entry not found")
	}
	if edu.UserID != userID {
		return nil, apperror.Forbidden("You can only modify your own education entries")
	}
	return edu, nil
}
