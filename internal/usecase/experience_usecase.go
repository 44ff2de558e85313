package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type experienceUsecase struct {
	repo   domain.WorkExperienceRepository
	engine *validation.Engine
}

func NewExperienceUsecase(repo domain.WorkExperienceRepository, engine *validation.Engine) domain.WorkExperienceUsecase {
	return &experienceUsecase{repo: repo, engine: engine}
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.WorkExperience, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *experienceUsecase) Create(ctx context.Context, in *domain.WorkExperienceCreateInput) (*domain.WorkExperience, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	now := time.Now().UTC()
	exp := &domain.WorkExperience{
		UserID:         userID,
		JobTitle:       in.JobTitle,
		CompanyName:    in.CompanyName,
		CompanyWebsite: in.CompanyWebsite,
		Location:       in.Location,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		IsCurrent:      in.IsCurrent,
		Description:    in.Description,
		Achievements:   in.Achievements,
		Skills:         validation.SanitizeSkills(in.Skills),
		SortOrder:      in.SortOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) Update(ctx context.Context, id int64, in *domain.WorkExperienceUpdateInput) (*domain.WorkExperience, error) {
	exp, err := u.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	if in.JobTitle != nil {
		exp.JobTitle = *in.JobTitle
	}
	if in.CompanyName != nil {
		exp.CompanyName = *in.CompanyName
	}
	if in.CompanyWebsite != nil {
		exp.CompanyWebsite = *in.CompanyWebsite
	}
	if in.Location != nil {
		exp.Location = *in.Location
	}
	if in.StartDate != nil {
		exp.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		exp.EndDate = in.EndDate
	}
	if in.IsCurrent != nil {
		exp.IsCurrent = *in.IsCurrent
		if exp.IsCurrent {
			exp.EndDate = nil
		}
	}
	if in.Description != nil {
		exp.Description = *in.Description
	}
	if in.Achievements != nil {
		exp.Achievements = in.Achievements
	}
	if in.Skills != nil {
		exp.Skills = validation.SanitizeSkills(in.Skills)
	}
	if in.SortOrder != nil {
		exp.SortOrder = *in.SortOrder
	}
	exp.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.getOwned(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *experienceUsecase) getOwned(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, apperror.NotFound("Work experience not found")
	}
	if exp.UserID != userID {
		return nil, apperror.Forbidden("You can only modify your own work experience")
	}
	return exp, nil
}
