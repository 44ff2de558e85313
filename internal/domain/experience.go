package domain

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/validation"
)

type WorkExperience struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name"`
	CompanyWebsite string    `json:"company_website,omitempty"`
	Location       string    `json:"location,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date,omitempty"`
	IsCurrent      bool      `json:"is_current"`
	Description    string    `json:"description,omitempty"`
	Achievements   []string  `json:"achievements,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	SortOrder      int       `json:"sort_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WorkExperienceCreateInput struct {
	JobTitle       string   `json:"job_title" validate:"required,min=2,max=150"`
	CompanyName    string   `json:"company_name" validate:"required,min=2,max=150"`
	CompanyWebsite string   `json:"company_website" validate:"omitempty,url"`
	Location       string   `json:"location" validate:"max=150"`
	StartDate      string   `json:"start_date" validate:"required,date_string,past_date"`
	EndDate        *string  `json:"end_date" validate:"omitempty,date_string,past_date"`
	IsCurrent      bool     `json:"is_current"`
	Description    string   `json:"description" validate:"max=2000"`
	Achievements   []string `json:"achievements" validate:"max=20,dive,min=10,max=500"`
	Skills         []string `json:"skills" validate:"max=30,unique_fold,dive,min=2,max=100"`
	SortOrder      int      `json:"sort_order" validate:"min=0"`
}

func (in *WorkExperienceCreateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineEndAfterStart("end_date", in.StartDate, strOrEmpty(in.EndDate)),
		refineEndAbsentWhenOngoing("end_date", in.IsCurrent, strOrEmpty(in.EndDate)),
	}
}

type WorkExperienceUpdateInput struct {
	JobTitle       *string  `json:"job_title" validate:"omitempty,min=2,max=150"`
	CompanyName    *string  `json:"company_name" validate:"omitempty,min=2,max=150"`
	CompanyWebsite *string  `json:"company_website" validate:"omitempty,url"`
	Location       *string  `json:"location" validate:"omitempty,max=150"`
	StartDate      *string  `json:"start_date" validate:"omitempty,date_string,past_date"`
	EndDate        *string  `json:"end_date" validate:"omitempty,date_string,past_date"`
	IsCurrent      *bool    `json:"is_current"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	Achievements   []string `json:"achievements" validate:"omitempty,max=20,dive,min=10,max=500"`
	Skills         []string `json:"skills" validate:"omitempty,max=30,unique_fold,dive,min=2,max=100"`
	SortOrder      *int     `json:"sort_order" validate:"omitempty,min=0"`
}

func (in *WorkExperienceUpdateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineEndAfterStart("end_date", strOrEmpty(in.StartDate), strOrEmpty(in.EndDate)),
		refineEndAbsentWhenOngoing("end_date", boolOrFalse(in.IsCurrent), strOrEmpty(in.EndDate)),
	}
}

type WorkExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*WorkExperience, error)
	ListByUserID(ctx context.Context, userID string) ([]WorkExperience, error)
	Create(ctx context.Context, exp *WorkExperience) error
	Update(ctx context.Context, exp *WorkExperience) error
	Delete(ctx context.Context, id int64) error
}

type WorkExperienceUsecase interface {
	List(ctx context.Context) ([]WorkExperience, error)
	Create(ctx context.Context, in *WorkExperienceCreateInput) (*WorkExperience, error)
	Update(ctx context.Context, id int64, in *WorkExperienceUpdateInput) (*WorkExperience, error)
	Delete(ctx context.Context, id int64) error
}
