package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, headline, summary, location, phone, linkedin_url, github_url, portfolio_url,
	experience_years, skills, industries, salary_expectation_min, salary_expectation_max, available_from,
	willing_to_relocate, remote_preference, created_at, updated_at`

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Summary, &p.Location, &p.Phone, &p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL,
		&p.ExperienceYears, pq.Array(&p.Skills), pq.Array(&p.Industries), &p.SalaryExpectationMin, &p.SalaryExpectationMax,
		&p.AvailableFrom, &p.WillingToRelocate, &p.RemotePreference, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, headline, summary, location, phone, linkedin_url, github_url, portfolio_url,
		experience_years, skills, industries, salary_expectation_min, salary_expectation_max, available_from,
		willing_to_relocate, remote_preference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18) RETURNING id`
	return r.db.QueryRow(ctx, query,
		p.UserID, p.Headline, p.Summary, p.Location, p.Phone, p.LinkedInURL, p.GitHubURL, p.PortfolioURL,
		p.ExperienceYears, pq.Array(p.Skills), pq.Array(p.Industries), p.SalaryExpectationMin, p.SalaryExpectationMax,
		p.AvailableFrom, p.WillingToRelocate, p.RemotePreference, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET headline = $1, summary = $2, location = $3, phone = $4, linkedin_url = $5,
		github_url = $6, portfolio_url = $7, experience_years = $8, skills = $9, industries = $10,
		salary_expectation_min = $11, salary_expectation_max = $12, available_from = $13,
		willing_to_relocate = $14, remote_preference = $15, updated_at = $16
		WHERE user_id = $17`
	_, err := r.db.Exec(ctx, query,
		p.Headline, p.Summary, p.Location, p.Phone, p.LinkedInURL,
		p.GitHubURL, p.PortfolioURL, p.ExperienceYears, pq.Array(p.Skills), pq.Array(p.Industries),
		p.SalaryExpectationMin, p.SalaryExpectationMax, p.AvailableFrom,
		p.WillingToRelocate, p.RemotePreference, p.UpdatedAt, p.UserID,
	)
	return err
}
