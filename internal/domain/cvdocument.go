package domain

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/pkg/upload"
	"go-jobboard-backend/pkg/validation"
)

// CVStatus is the lifecycle state of an uploaded CV document.
type CVStatus string

const (
	CVStatusProcessing CVStatus = "processing"
	CVStatusActive     CVStatus = "active"
	CVStatusArchived   CVStatus = "archived"
	CVStatusFailed     CVStatus = "failed"
)

// cvTransitions is the complete legal transition table. There is no
// terminal state: failed documents re-enter processing on re-upload and
// archived documents can be reactivated.
var cvTransitions = map[CVStatus][]CVStatus{
	CVStatusProcessing: {CVStatusActive, CVStatusFailed},
	CVStatusActive:     {CVStatusArchived},
	CVStatusArchived:   {CVStatusActive},
	CVStatusFailed:     {CVStatusProcessing},
}

// CanTransition reports whether moving from to next is legal.
func (s CVStatus) CanTransition(next CVStatus) bool {
	for _, allowed := range cvTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates and performs a status change.
func (s CVStatus) Transition(next CVStatus) (CVStatus, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("cannot transition cv from %s to %s", s, next)
	}
	return next, nil
}

type CVDocument struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Label     string    `json:"label"`
	IsDefault bool      `json:"is_default"`
	Status    CVStatus  `json:"status"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CVUploadInput validates the upload descriptor supplied by the
// file-upload collaborator before any bytes are persisted. The
// extension/MIME cross-check is a refinement since both fields must be
// individually valid first.
type CVUploadInput struct {
	Label     string `json:"label" validate:"required,min=1,max=100"`
	IsDefault bool   `json:"is_default"`
	FileName  string `json:"file_name" validate:"required,max=255"`
	FileSize  int64  `json:"file_size" validate:"required,min=1,max=10485760"`
	MimeType  string `json:"mime_type" validate:"required,oneof=application/pdf application/msword application/vnd.openxmlformats-officedocument.wordprocessingml.document"`
}

func (in *CVUploadInput) Refinements() []validation.Refinement {
	return []validation.Refinement{
		{
			Field:   "file_name",
			Code:    validation.CodeInconsistent,
			Message: "file extension does not match the declared MIME type",
			Check: func() bool {
				return upload.ExtensionMatchesMIME(in.FileName, in.MimeType)
			},
		},
	}
}

// CVUpdateInput covers metadata edits; status changes additionally pass
// through the transition table in the usecase.
type CVUpdateInput struct {
	Label     *string `json:"label" validate:"omitempty,min=1,max=100"`
	IsDefault *bool   `json:"is_default"`
	Status    *string `json:"status" validate:"omitempty,oneof=processing active archived failed"`
}

// CVSection is an operator-defined extra section on the rendered CV.
type CVSection struct {
	Title    string `json:"title" validate:"required,max=100"`
	Content  string `json:"content" validate:"required,max=2000"`
	OrderKey int    `json:"order_key" validate:"min=0"`
}

// CVRenderInput validates rendering options before the document is
// handed to the PDF pipeline (which is an external collaborator).
type CVRenderInput struct {
	PrimaryColor   string      `json:"primary_color" validate:"omitempty,hex_color"`
	CustomSections []CVSection `json:"custom_sections" validate:"max=5,dive"`
}

type CVRepository interface {
	GetByID(ctx context.Context, id int64) (*CVDocument, error)
	ListByUserID(ctx context.Context, userID string) ([]CVDocument, error)
	Create(ctx context.Context, doc *CVDocument) error
	Update(ctx context.Context, doc *CVDocument) error
	Delete(ctx context.Context, id int64) error
}

type CVUsecase interface {
	List(ctx context.Context) ([]CVDocument, error)
	Upload(ctx context.Context, in *CVUploadInput) (*CVDocument, error)
	Update(ctx context.Context, id int64, in *CVUpdateInput) (*CVDocument, error)
	ValidateRenderOptions(ctx context.Context, id int64, in *CVRenderInput) error
	Delete(ctx context.Context, id int64) error
}
