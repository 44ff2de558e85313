package domain

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/validation"
)

// PortfolioVerification is the tri-state outcome of the external URL
// verifier (plus "pending" before the first probe). It is metadata set
// by the verifier path only, never by the caller, and never rejects the
// write that introduced the URL.
type PortfolioVerification string

const (
	VerificationPending     PortfolioVerification = "pending"
	VerificationValid       PortfolioVerification = "valid"
	VerificationInvalid     PortfolioVerification = "invalid"
	VerificationUnreachable PortfolioVerification = "unreachable"
)

type PortfolioItem struct {
	ID               int64                 `json:"id"`
	UserID           string                `json:"user_id"`
	Title            string                `json:"title"`
	Description      string                `json:"description,omitempty"`
	Type             string                `json:"type"`
	ExternalURL      string                `json:"external_url,omitempty"`
	FileName         string                `json:"file_name,omitempty"`
	Technologies     []string              `json:"technologies,omitempty"`
	ProjectDate      string                `json:"project_date,omitempty"`
	Role             string                `json:"role,omitempty"`
	IsPublic         bool                  `json:"is_public"`
	SortOrder        int                   `json:"sort_order"`
	ValidationStatus PortfolioVerification `json:"validation_status"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// PortfolioCreateInput: the type field is the discriminant for the
// conditional URL/file requirement. validation_status is deliberately
// not part of the input.
type PortfolioCreateInput struct {
	Title        string   `json:"title" validate:"required,min=2,max=150"`
	Description  string   `json:"description" validate:"max=1000"`
	Type         string   `json:"type" validate:"required,oneof=project article design code document link"`
	ExternalURL  string   `json:"external_url" validate:"omitempty,url"`
	FileName     string   `json:"file_name" validate:"omitempty,max=255"`
	Technologies []string `json:"technologies" validate:"max=20,unique_fold,dive,min=1,max=100"`
	ProjectDate  string   `json:"project_date" validate:"omitempty,date_string,past_date"`
	Role         string   `json:"role" validate:"omitempty,max=200"`
	IsPublic     bool     `json:"is_public"`
	SortOrder    int      `json:"sort_order" validate:"min=0"`
}

func (in *PortfolioCreateInput) Refinements() []validation.Refinement {
	return portfolioURLRefinements(in.Type, in.ExternalURL, in.FileName)
}

type PortfolioUpdateInput struct {
	Title        *string  `json:"title" validate:"omitempty,min=2,max=150"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	Type         *string  `json:"type" validate:"omitempty,oneof=project article design code document link"`
	ExternalURL  *string  `json:"external_url" validate:"omitempty,url"`
	FileName     *string  `json:"file_name" validate:"omitempty,max=255"`
	Technologies []string `json:"technologies" validate:"omitempty,max=20,unique_fold,dive,min=1,max=100"`
	ProjectDate  *string  `json:"project_date" validate:"omitempty,date_string,past_date"`
	Role         *string  `json:"role" validate:"omitempty,max=200"`
	IsPublic     *bool    `json:"is_public"`
	SortOrder    *int     `json:"sort_order" validate:"omitempty,min=0"`
}

func (in *PortfolioUpdateInput) Refinements() []validation.Refinement {
	if in.Type == nil {
		// without the discriminant the conditional requirement cannot
		// be judged on a partial update
		return nil
	}
	return portfolioURLRefinements(*in.Type, strOrEmpty(in.ExternalURL), strOrEmpty(in.FileName))
}

func portfolioURLRefinements(itemType, externalURL, fileName string) []validation.Refinement {
	return []validation.Refinement{
		{
			Field:   "external_url",
			Code:    validation.CodeRequired,
			Message: "is required for link items",
			Check: func() bool {
				return itemType != "link" || externalURL != ""
			},
		},
		{
			Field:   "external_url",
			Code:    validation.CodeRequired,
			Message: "an attached file or an external url is required",
			Check: func() bool {
				return itemType == "link" || externalURL != "" || fileName != ""
			},
		},
	}
}

type PortfolioRepository interface {
	GetByID(ctx context.Context, id int64) (*PortfolioItem, error)
	ListByUserID(ctx context.Context, userID string) ([]PortfolioItem, error)
	Create(ctx context.Context, item *PortfolioItem) error
	Update(ctx context.Context, item *PortfolioItem) error
	UpdateValidationStatus(ctx context.Context, id int64, status PortfolioVerification) error
	Delete(ctx context.Context, id int64) error
}

type PortfolioUsecase interface {
	List(ctx context.Context) ([]PortfolioItem, error)
	Create(ctx context.Context, in *PortfolioCreateInput) (*PortfolioItem, []string, error)
	Update(ctx context.Context, id int64, in *PortfolioUpdateInput) (*PortfolioItem, []string, error)
	VerifyLinks(ctx context.Context) ([]PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
}
