package domain

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/validation"
)

// Education shares the temporal rule set of WorkExperience: the end
// date must follow the start date and must be absent while is_ongoing.
type Education struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	Location     string    `json:"location,omitempty"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date,omitempty"`
	IsOngoing    bool      `json:"is_ongoing"`
	Grade        string    `json:"grade,omitempty"`
	Description  string    `json:"description,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EducationCreateInput struct {
	Institution  string  `json:"institution" validate:"required,min=2,max=150"`
	Degree       string  `json:"degree" validate:"required,min=2,max=150"`
	FieldOfStudy string  `json:"field_of_study" validate:"required,min=2,max=150"`
	Location     string  `json:"location" validate:"max=150"`
	StartDate    string  `json:"start_date" validate:"required,date_string,past_date"`
	EndDate      *string `json:"end_date" validate:"omitempty,date_string,past_date"`
	IsOngoing    bool    `json:"is_ongoing"`
	Grade        string  `json:"grade" validate:"max=50"`
	Description  string  `json:"description" validate:"max=2000"`
	SortOrder    int     `json:"sort_order" validate:"min=0"`
}

func (in *EducationCreateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineEndAfterStart("end_date", in.StartDate, strOrEmpty(in.EndDate)),
		refineEndAbsentWhenOngoing("end_date", in.IsOngoing, strOrEmpty(in.EndDate)),
	}
}

type EducationUpdateInput struct {
	Institution  *string `json:"institution" validate:"omitempty,min=2,max=150"`
	Degree       *string `json:"degree" validate:"omitempty,min=2,max=150"`
	FieldOfStudy *string `json:"field_of_study" validate:"omitempty,min=2,max=150"`
	Location     *string `json:"location" validate:"omitempty,max=150"`
	StartDate    *string `json:"start_date" validate:"omitempty,date_string,past_date"`
	EndDate      *string `json:"end_date" validate:"omitempty,date_string,past_date"`
	IsOngoing    *bool   `json:"is_ongoing"`
	Grade        *string `json:"grade" validate:"omitempty,max=50"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	SortOrder    *int    `json:"sort_order" validate:"omitempty,min=0"`
}

func (in *EducationUpdateInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		refineEndAfterStart("end_date", strOrEmpty(in.StartDate), strOrEmpty(in.EndDate)),
		refineEndAbsentWhenOngoing("end_date", boolOrFalse(in.IsOngoing), strOrEmpty(in.EndDate)),
	}
}

type EducationRepository interface {
	GetByID(ctx context.Context, id int64) (*Education, error)
	ListByUserID(ctx context.Context, userID string) ([]Education, error)
	Create(ctx context.Context, edu *Education) error
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id int64) error
}

type EducationUsecase interface {
	List(ctx context.Context) ([]Education, error)
	Create(ctx context.Context, in *EducationCreateInput) (*Education, error)
	Update(ctx context.Context, id int64, in *EducationUpdateInput) (*Education, error)
	Delete(ctx context.Context, id int64) error
}
