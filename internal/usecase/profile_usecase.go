package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type profileUsecase struct {
	repo   domain.ProfileRepository
	engine *validation.Engine
}

func NewProfileUsecase(repo domain.ProfileRepository, engine *validation.Engine) domain.ProfileUsecase {
	return &profileUsecase{repo: repo, engine: engine}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctxUserID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) CreateProfile(ctx context.Context, in *domain.ProfileCreateInput) (*domain.Profile, []string, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, nil, apperror.Validation(errs)
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.BadRequest("Profile already exists; use update instead")
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		UserID:               userID,
		Headline:             in.Headline,
		Summary:              in.Summary,
		Location:             in.Location,
		Phone:                in.Phone,
		LinkedInURL:          in.LinkedInURL,
		GitHubURL:            in.GitHubURL,
		PortfolioURL:         in.PortfolioURL,
		ExperienceYears:      in.ExperienceYears,
		Skills:               validation.SanitizeSkills(in.Skills),
		Industries:           validation.SanitizeTechnologies(in.Industries),
		SalaryExpectationMin: in.SalaryExpectationMin,
		SalaryExpectationMax: in.SalaryExpectationMax,
		AvailableFrom:        in.AvailableFrom,
		WillingToRelocate:    in.WillingToRelocate,
		RemotePreference:     in.RemotePreference,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, nil, err
	}
	return profile, profileWarnings(profile), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, in *domain.ProfileUpdateInput) (*domain.Profile, []string, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, nil, apperror.Validation(errs)
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, apperror.NotFound("Profile not found")
	}

	applyProfileUpdate(profile, in)
	profile.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, nil, err
	}
	return profile, profileWarnings(profile), nil
}

func applyProfileUpdate(p *domain.Profile, in *domain.ProfileUpdateInput) {
	if in.Headline != nil {
		p.Headline = *in.Headline
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.LinkedInURL != nil {
		p.LinkedInURL = *in.LinkedInURL
	}
	if in.GitHubURL != nil {
		p.GitHubURL = *in.GitHubURL
	}
	if in.PortfolioURL != nil {
		p.PortfolioURL = *in.PortfolioURL
	}
	if in.ExperienceYears != nil {
		p.ExperienceYears = *in.ExperienceYears
	}
	if in.Skills != nil {
		p.Skills = validation.SanitizeSkills(in.Skills)
	}
	if in.Industries != nil {
		p.Industries = validation.SanitizeTechnologies(in.Industries)
	}
	if in.SalaryExpectationMin != nil {
		p.SalaryExpectationMin = in.SalaryExpectationMin
	}
	if in.SalaryExpectationMax != nil {
		p.SalaryExpectationMax = in.SalaryExpectationMax
	}
	if in.AvailableFrom != nil {
		p.AvailableFrom = *in.AvailableFrom
	}
	if in.WillingToRelocate != nil {
		p.WillingToRelocate = *in.WillingToRelocate
	}
	if in.RemotePreference != nil {
		p.RemotePreference = *in.RemotePreference
	}
}

// profileWarnings runs the advisory business checks on the final
// profile state. They never block the write.
func profileWarnings(p *domain.Profile) []string {
	var warnings []string
	if res := validation.CheckEntryLevelConsistency(p.ExperienceYears, len(p.Skills)); !res.IsValid {
		warnings = append(warnings, res.Errors...)
	}
	if res := validation.CheckLinkedInProfileURL(p.LinkedInURL); !res.IsValid {
		warnings = append(warnings, res.Errors...)
	}
	return warnings
}
