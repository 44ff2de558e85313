package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, user_id, institution, degree, field_of_study, location, start_date, end_date,
	is_ongoing, grade, description, sort_order, created_at, updated_at`

func scanEducation(row pgx.Row, e *domain.Education) error {
	return row.Scan(
		&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.Location, &e.StartDate, &e.EndDate,
		&e.IsOngoing, &e.Grade, &e.Description, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1`
	var e domain.Education
	err := scanEducation(r.db.QueryRow(ctx, query, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE user_id = $1 ORDER BY sort_order, start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := scanEducation(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *educationRepo) Create(ctx context.Context, e *domain.Education) error {
	query := `INSERT INTO educations (user_id, institution, degree, field_of_study, location, start_date, end_date,
		is_ongoing, grade, description, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRow(ctx, query,
		e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.StartDate, e.EndDate,
		e.IsOngoing, e.Grade, e.Description, e.SortOrder, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) error {
	query := `UPDATE educations SET institution = $1, degree = $2, field_of_study = $3, location = $4, start_date = $5,
		end_date = $6, is_ongoing = $7, grade = $8, description = $9, sort_order = $10, updated_at = $11 WHERE id = $12`
	_, err := r.db.Exec(ctx, query,
		e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.StartDate,
		e.EndDate, e.IsOngoing, e.Grade, e.Description, e.SortOrder, e.UpdatedAt, e.ID,
	)
	return err
}

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	return err
}
