package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type cvUsecase struct {
	repo   domain.CVRepository
	engine *validation.Engine
}

func NewCVUsecase(repo domain.CVRepository, engine *validation.Engine) domain.CVUsecase {
	return &cvUsecase{repo: repo, engine: engine}
}

func (u *cvUsecase) List(ctx context.Context) ([]domain.CVDocument, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUserID(ctx, userID)
}

// Upload admits the descriptor supplied by the upload collaborator.
// Every document starts in processing; the pipeline moves it on.
func (u *cvUsecase) Upload(ctx context.Context, in *domain.CVUploadInput) (*domain.CVDocument, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	now := time.Now().UTC()
	doc := &domain.CVDocument{
		UserID:    userID,
		Label:     in.Label,
		IsDefault: in.IsDefault,
		Status:    domain.CVStatusProcessing,
		FileName:  in.FileName,
		FileSize:  in.FileSize,
		MimeType:  in.MimeType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *cvUsecase) Update(ctx context.Context, id int64, in *domain.CVUpdateInput) (*domain.CVDocument, error) {
	doc, err := u.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	if in.Status != nil {
		next, err := doc.Status.Transition(domain.CVStatus(*in.Status))
		if err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		doc.Status = next
	}
	if in.Label != nil {
		doc.Label = *in.Label
	}
	if in.IsDefault != nil {
		doc.IsDefault = *in.IsDefault
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ValidateRenderOptions gates the hand-off to the PDF pipeline: the
// options must validate structurally and the primary color must pass
// the contrast check. Rendering itself happens elsewhere.
func (u *cvUsecase) ValidateRenderOptions(ctx context.Context, id int64, in *domain.CVRenderInput) error {
	doc, err := u.getOwned(ctx, id)
	if err != nil {
		return err
	}
	if doc.Status != domain.CVStatusActive {
		return apperror.BadRequest("only active CV documents can be rendered")
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return apperror.Validation(errs)
	}
	if res := validation.CheckTemplateColor(in.PrimaryColor); !res.IsValid {
		return apperror.BadRequest(res.Errors[0])
	}
	return nil
}

func (u *cvUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.getOwned(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *cvUsecase) getOwned(ctx context.Context, id int64) (*domain.CVDocument, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("CV document not found")
	}
	if doc.UserID != userID {
		return nil, apperror.Forbidden("You can only modify your own CV documents")
	}
	return doc, nil
}
