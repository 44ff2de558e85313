package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

const cvColumns = `id, user_id, label, is_default, status, file_name, file_size, mime_type, created_at, updated_at`

func scanCV(row pgx.Row, d *domain.CVDocument) error {
	return row.Scan(
		&d.ID, &d.UserID, &d.Label, &d.IsDefault, &d.Status, &d.FileName, &d.FileSize, &d.MimeType,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CVDocument, error) {
	query := `SELECT ` + cvColumns + ` FROM cv_documents WHERE id = $1`
	var d domain.CVDocument
	err := scanCV(r.db.QueryRow(ctx, query, id), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *cvRepo) ListByUserID(ctx context.Context, userID string) ([]domain.CVDocument, error) {
	query := `SELECT ` + cvColumns + ` FROM cv_documents WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.CVDocument
	for rows.Next() {
		var d domain.CVDocument
		if err := scanCV(rows, &d); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *cvRepo) Create(ctx context.Context, d *domain.CVDocument) error {
	query := `INSERT INTO cv_documents (user_id, label, is_default, status, file_name, file_size, mime_type,
		created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		d.UserID, d.Label, d.IsDefault, d.Status, d.FileName, d.FileSize, d.MimeType, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
}

func (r *cvRepo) Update(ctx context.Context, d *domain.CVDocument) error {
	query := `UPDATE cv_documents SET label = $1, is_default = $2, status = $3, updated_at = $4 WHERE id = $5`
	_, err := r.db.Exec(ctx, query, d.Label, d.IsDefault, d.Status, d.UpdatedAt, d.ID)
	return err
}

func (r *cvRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cv_documents WHERE id = $1`, id)
	return err
}
