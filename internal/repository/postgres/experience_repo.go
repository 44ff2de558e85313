package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, user_id, job_title, company_name, company_website, location, start_date, end_date,
	is_current, description, achievements, skills, sort_order, created_at, updated_at`

func scanExperience(row pgx.Row, e *domain.WorkExperience) error {
	return row.Scan(
		&e.ID, &e.UserID, &e.JobTitle, &e.CompanyName, &e.CompanyWebsite, &e.Location, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Description, pq.Array(&e.Achievements), pq.Array(&e.Skills), &e.SortOrder,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	query := `SELECT ` + experienceColumns + ` FROM work_experiences WHERE id = $1`
	var e domain.WorkExperience
	err := scanExperience(r.db.QueryRow(ctx, query, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) ListByUserID(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	query := `SELECT ` + experienceColumns + ` FROM work_experiences WHERE user_id = $1 ORDER BY sort_order, start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.WorkExperience
	for rows.Next() {
		var e domain.WorkExperience
		if err := scanExperience(rows, &e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.WorkExperience) error {
	query := `INSERT INTO work_experiences (user_id, job_title, company_name, company_website, location, start_date,
		end_date, is_current, description, achievements, skills, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRow(ctx, query,
		e.UserID, e.JobTitle, e.CompanyName, e.CompanyWebsite, e.Location, e.StartDate,
		e.EndDate, e.IsCurrent, e.Description, pq.Array(e.Achievements), pq.Array(e.Skills), e.SortOrder,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.WorkExperience) error {
	query := `UPDATE work_experiences SET job_title = $1, company_name = $2, company_website = $3, location = $4,
		start_date = $5, end_date = $6, is_current = $7, description = $8, achievements = $9, skills = $10,
		sort_order = $11, updated_at = $12 WHERE id = $13`
	_, err := r.db.Exec(ctx, query,
		e.JobTitle, e.CompanyName, e.CompanyWebsite, e.Location,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description, pq.Array(e.Achievements), pq.Array(e.Skills),
		e.SortOrder, e.UpdatedAt, e.ID,
	)
	return err
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	return err
}
