package domain

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/validation"
)

// Profile is the aggregate root of a candidate's public presence.
// UserID is the opaque owner identifier from the auth layer; ownership
// enforcement happens in the usecases, referential integrity in the DB.
type Profile struct {
	ID                   int64     `json:"id"`
	UserID               string    `json:"user_id"`
	Headline             string    `json:"headline"`
	Summary              string    `json:"summary,omitempty"`
	Location             string    `json:"location,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	LinkedInURL          string    `json:"linkedin_url,omitempty"`
	GitHubURL            string    `json:"github_url,omitempty"`
	PortfolioURL         string    `json:"portfolio_url,omitempty"`
	ExperienceYears      int       `json:"experience_years"`
	Skills               []string  `json:"skills"`
	Industries           []string  `json:"industries,omitempty"`
	SalaryExpectationMin *int      `json:"salary_expectation_min,omitempty"`
	SalaryExpectationMax *int      `json:"salary_expectation_max,omitempty"`
	AvailableFrom        string    `json:"available_from,omitempty"`
	WillingToRelocate    bool      `json:"willing_to_relocate"`
	RemotePreference     string    `json:"remote_preference"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProfileCreateInput is the admission rule set for new profiles.
type ProfileCreateInput struct {
	Headline             string   `json:"headline" validate:"required,min=3,max=150"`
	Summary              string   `json:"summary" validate:"max=2000"`
	Location             string   `json:"location" validate:"max=150"`
	Phone                string   `json:"phone" validate:"omitempty,intl_phone"`
	LinkedInURL          string   `json:"linkedin_url" validate:"omitempty,url,linkedin_url"`
	GitHubURL            string   `json:"github_url" validate:"omitempty,url,github_url"`
	PortfolioURL         string   `json:"portfolio_url" validate:"omitempty,url"`
	ExperienceYears      int      `json:"experience_years" validate:"min=0,max=50"`
	Skills               []string `json:"skills" validate:"required,min=1,max=50,unique_fold,dive,min=2,max=100"`
	Industries           []string `json:"industries" validate:"max=10,dive,min=2,max=100"`
	SalaryExpectationMin *int     `json:"salary_expectation_min" validate:"omitempty,min=20000,max=1000000"`
	SalaryExpectationMax *int     `json:"salary_expectation_max" validate:"omitempty,min=20000,max=1000000"`
	AvailableFrom        string   `json:"available_from" validate:"omitempty,date_string,future_date"`
	WillingToRelocate    bool     `json:"willing_to_relocate"`
	RemotePreference     string   `json:"remote_preference" validate:"required,oneof=remote hybrid office"`
}

func (in *ProfileCreateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineSalaryRange("salary_expectation_max", in.SalaryExpectationMin, in.SalaryExpectationMax),
	}
}

// ProfileUpdateInput is the partial-update rule set: every field is
// optional, but whenever both sides of a pair are supplied they must
// still be mutually consistent.
type ProfileUpdateInput struct {
	Headline             *string  `json:"headline" validate:"omitempty,min=3,max=150"`
	Summary              *string  `json:"summary" validate:"omitempty,max=2000"`
	Location             *string  `json:"location" validate:"omitempty,max=150"`
	Phone                *string  `json:"phone" validate:"omitempty,intl_phone"`
	LinkedInURL          *string  `json:"linkedin_url" validate:"omitempty,url,linkedin_url"`
	GitHubURL            *string  `json:"github_url" validate:"omitempty,url,github_url"`
	PortfolioURL         *string  `json:"portfolio_url" validate:"omitempty,url"`
	ExperienceYears      *int     `json:"experience_years" validate:"omitempty,min=0,max=50"`
	Skills               []string `json:"skills" validate:"omitempty,min=1,max=50,unique_fold,dive,min=2,max=100"`
	Industries           []string `json:"industries" validate:"omitempty,max=10,dive,min=2,max=100"`
	SalaryExpectationMin *int     `json:"salary_expectation_min" validate:"omitempty,min=20000,max=1000000"`
	SalaryExpectationMax *int     `json:"salary_expectation_max" validate:"omitempty,min=20000,max=1000000"`
	AvailableFrom        *string  `json:"available_from" validate:"omitempty,date_string,future_date"`
	WillingToRelocate    *bool    `json:"willing_to_relocate"`
	RemotePreference     *string  `json:"remote_preference" validate:"omitempty,oneof=remote hybrid office"`
}

func (in *ProfileUpdateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineSalaryRange("salary_expectation_max", in.SalaryExpectationMin, in.SalaryExpectationMax),
	}
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, in *ProfileCreateInput) (*Profile, []string, error)
	UpdateProfile(ctx context.Context, in *ProfileUpdateInput) (*Profile, []string, error)
}
