package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type privacyUsecase struct {
	repo   domain.PrivacySettingsRepository
	engine *validation.Engine
}

func NewPrivacyUsecase(repo domain.PrivacySettingsRepository, engine *validation.Engine) domain.PrivacySettingsUsecase {
	return &privacyUsecase{repo: repo, engine: engine}
}

func (u *privacyUsecase) GetSettings(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	ctxUserID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own privacy settings")
	}

	settings, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NotFound("Privacy settings not found")
	}
	return settings, nil
}

// ReplaceSettings swaps the active record wholesale; there is no
// partial-update variant for privacy settings.
func (u *privacyUsecase) ReplaceSettings(ctx context.Context, in *domain.PrivacySettingsInput) (*domain.PrivacySettings, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	settings := &domain.PrivacySettings{
		UserID:                    userID,
		PrivacyLevel:              in.PrivacyLevel,
		ProfileVisibleToEmployers: in.ProfileVisibleToEmployers,
		ContactInfoVisible:        in.ContactInfoVisible,
		SalaryVisible:             in.SalaryVisible,
		UpdatedAt:                 time.Now().UTC(),
	}

	if err := u.repo.Replace(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
