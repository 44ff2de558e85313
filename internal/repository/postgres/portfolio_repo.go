package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

const portfolioColumns = `id, user_id, title, description, type, external_url, file_name, technologies,
	project_date, role, is_public, sort_order, validation_status, created_at, updated_at`

func scanPortfolio(row pgx.Row, p *domain.PortfolioItem) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Type, &p.ExternalURL, &p.FileName, pq.Array(&p.Technologies),
		&p.ProjectDate, &p.Role, &p.IsPublic, &p.SortOrder, &p.ValidationStatus, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *portfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`
	var p domain.PortfolioItem
	err := scanPortfolio(r.db.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepo) ListByUserID(ctx context.Context, userID string) ([]domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE user_id = $1 ORDER BY sort_order, created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.PortfolioItem
	for rows.Next() {
		var p domain.PortfolioItem
		if err := scanPortfolio(rows, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *portfolioRepo) Create(ctx context.Context, p *domain.PortfolioItem) error {
	query := `INSERT INTO portfolio_items (user_id, title, description, type, external_url, file_name, technologies,
		project_date, role, is_public, sort_order, validation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRow(ctx, query,
		p.UserID, p.Title, p.Description, p.Type, p.ExternalURL, p.FileName, pq.Array(p.Technologies),
		p.ProjectDate, p.Role, p.IsPublic, p.SortOrder, p.ValidationStatus, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *portfolioRepo) Update(ctx context.Context, p *domain.PortfolioItem) error {
	query := `UPDATE portfolio_items SET title = $1, description = $2, type = $3, external_url = $4, file_name = $5,
		technologies = $6, project_date = $7, role = $8, is_public = $9, sort_order = $10, validation_status = $11,
		updated_at = $12 WHERE id = $13`
	_, err := r.db.Exec(ctx, query,
		p.Title, p.Description, p.Type, p.ExternalURL, p.FileName,
		pq.Array(p.Technologies), p.ProjectDate, p.Role, p.IsPublic, p.SortOrder, p.ValidationStatus,
		p.UpdatedAt, p.ID,
	)
	return err
}

// UpdateValidationStatus is the only write path for verifier outcomes.
func (r *portfolioRepo) UpdateValidationStatus(ctx context.Context, id int64, status domain.PortfolioVerification) error {
	_, err := r.db.Exec(ctx, `UPDATE portfolio_items SET validation_status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

func (r *portfolioRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	return err
}
