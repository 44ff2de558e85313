package domain

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/validation"
)

// PrivacySettings is a one-to-one child of Profile. There is no partial
// update: the active record is replaced wholesale.
type PrivacySettings struct {
	ID                        int64     `json:"id"`
	UserID                    string    `json:"user_id"`
	PrivacyLevel              string    `json:"privacy_level"`
	ProfileVisibleToEmployers bool      `json:"profile_visible_to_employers"`
	ContactInfoVisible        bool      `json:"contact_info_visible"`
	SalaryVisible             bool      `json:"salary_visible"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

type PrivacySettingsInput struct {
	PrivacyLevel              string `json:"privacy_level" validate:"required,oneof=public semi_private anonymous"`
	ProfileVisibleToEmployers bool   `json:"profile_visible_to_employers"`
	ContactInfoVisible        bool   `json:"contact_info_visible"`
	SalaryVisible             bool   `json:"salary_visible"`
}

func (in *PrivacySettingsInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		{
			Field:   "contact_info_visible",
			Code:    validation.CodeInconsistent,
			Message: "must be false while the privacy level is anonymous",
			Check: func() bool {
				return in.PrivacyLevel != "anonymous" || !in.ContactInfoVisible
			},
		},
	}
}

type PrivacySettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*PrivacySettings, error)
	Replace(ctx context.Context, settings *PrivacySettings) error
}

type PrivacySettingsUsecase interface {
	GetSettings(ctx context.Context, userID string) (*PrivacySettings, error)
	ReplaceSettings(ctx context.Context, in *PrivacySettingsInput) (*PrivacySettings, error)
}
