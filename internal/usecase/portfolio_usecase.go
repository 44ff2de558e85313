package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
	"go-jobboard-backend/pkg/verifier"

	"golang.org/x/sync/errgroup"
)

// verifyConcurrency bounds parallel link probes per batch.
const verifyConcurrency = 4

type portfolioUsecase struct {
	repo     domain.PortfolioRepository
	engine   *validation.Engine
	verifier *verifier.Verifier
}

func NewPortfolioUsecase(repo domain.PortfolioRepository, engine *validation.Engine, v *verifier.Verifier) domain.PortfolioUsecase {
	return &portfolioUsecase{repo: repo, engine: engine, verifier: v}
}

func (u *portfolioUsecase) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *portfolioUsecase) Create(ctx context.Context, in *domain.PortfolioCreateInput) (*domain.PortfolioItem, []string, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, nil, apperror.Validation(errs)
	}

	now := time.Now().UTC()
	item := &domain.PortfolioItem{
		UserID:           userID,
		Title:            in.Title,
		Description:      in.Description,
		Type:             in.Type,
		ExternalURL:      in.ExternalURL,
		FileName:         in.FileName,
		Technologies:     validation.SanitizeTechnologies(in.Technologies),
		ProjectDate:      in.ProjectDate,
		Role:             in.Role,
		IsPublic:         in.IsPublic,
		SortOrder:        in.SortOrder,
		ValidationStatus: domain.VerificationPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := u.repo.Create(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, portfolioWarnings(item), nil
}

func (u *portfolioUsecase) Update(ctx context.Context, id int64, in *domain.PortfolioUpdateInput) (*domain.PortfolioItem, []string, error) {
	item, err := u.getOwned(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if errs := u.engine.Validate(in); len(errs) > 0 {
		return nil, nil, apperror.Validation(errs)
	}

	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.ExternalURL != nil && *in.ExternalURL != item.ExternalURL {
		item.ExternalURL = *in.ExternalURL
		// a new link has not been probed yet
		item.ValidationStatus = domain.VerificationPending
	}
	if in.FileName != nil {
		item.FileName = *in.FileName
	}
	if in.Technologies != nil {
		item.Technologies = validation.SanitizeTechnologies(in.Technologies)
	}
	if in.ProjectDate != nil {
		item.ProjectDate = *in.ProjectDate
	}
	if in.Role != nil {
		item.Role = *in.Role
	}
	if in.IsPublic != nil {
		item.IsPublic = *in.IsPublic
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	item.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, item); err != nil {
		return nil, nil, err
	}
	return item, portfolioWarnings(item), nil
}

// VerifyLinks probes every item that carries an external URL and
// persists the classification. Outcomes are metadata: a dead link never
// fails the batch, only probe persistence errors do.
func (u *portfolioUsecase) VerifyLinks(ctx context.Context) ([]domain.PortfolioItem, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)

	for i := range items {
		if items[i].ExternalURL == "" {
			continue
		}
		item := &items[i]
		g.Go(func() error {
			status, _ := u.verifier.Verify(gctx, item.ExternalURL)
			item.ValidationStatus = domain.PortfolioVerification(status)
			return u.repo.UpdateValidationStatus(gctx, item.ID, item.ValidationStatus)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (u *portfolioUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.getOwned(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *portfolioUsecase) getOwned(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("Portfolio item not found")
	}
	if item.UserID != userID {
		return nil, apperror.Forbidden("You can only modify your own portfolio items")
	}
	return item, nil
}

func portfolioWarnings(item *domain.PortfolioItem) []string {
	res := validation.CheckPortfolioRequirements(item.Type, item.FileName != "", item.ExternalURL, item.ProjectDate, item.Role)
	if res.IsValid {
		return nil
	}
	return res.Errors
}
