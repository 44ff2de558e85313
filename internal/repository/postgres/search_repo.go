package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type searchRepo struct {
	db *pgxpool.Pool
}

func NewSearchRepository(db *pgxpool.Pool) domain.SearchRepository {
	return &searchRepo{db: db}
}

// SearchProfiles filters on the already-validated query. Only profiles
// whose privacy settings expose them to employers are returned.
func (r *searchRepo) SearchProfiles(ctx context.Context, q *domain.SearchQuery) ([]domain.Profile, int64, error) {
	where := []string{`ps.profile_visible_to_employers = true`}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Keywords != "" {
		n := arg("%" + q.Keywords + "%")
		where = append(where, fmt.Sprintf("(p.headline ILIKE %s OR p.summary ILIKE %s)", n, n))
	}
	if q.Location != "" {
		where = append(where, fmt.Sprintf("p.location ILIKE %s", arg("%"+q.Location+"%")))
	}
	if len(q.Skills) > 0 {
		where = append(where, fmt.Sprintf("p.skills && %s", arg(pq.Array(q.Skills))))
	}
	if q.SalaryMin != nil {
		where = append(where, fmt.Sprintf("(p.salary_expectation_max IS NULL OR p.salary_expectation_max >= %s)", arg(*q.SalaryMin)))
	}
	if q.SalaryMax != nil {
		where = append(where, fmt.Sprintf("(p.salary_expectation_min IS NULL OR p.salary_expectation_min <= %s)", arg(*q.SalaryMax)))
	}
	if q.RemotePreference != "" {
		where = append(where, fmt.Sprintf("p.remote_preference = %s", arg(q.RemotePreference)))
	}

	base := ` FROM profiles p
		JOIN privacy_settings ps ON ps.user_id = p.user_id
		WHERE ` + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+base, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT p.id, p.user_id, p.headline, p.summary, p.location, p.phone, p.linkedin_url, p.github_url,
		p.portfolio_url, p.experience_years, p.skills, p.industries, p.salary_expectation_min, p.salary_expectation_max,
		p.available_from, p.willing_to_relocate, p.remote_preference, p.created_at, p.updated_at` + base +
		fmt.Sprintf(" ORDER BY p.updated_at DESC LIMIT %s OFFSET %s", arg(q.Limit), arg(q.Offset))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Headline, &p.Summary, &p.Location, &p.Phone, &p.LinkedInURL, &p.GitHubURL,
			&p.PortfolioURL, &p.ExperienceYears, pq.Array(&p.Skills), pq.Array(&p.Industries),
			&p.SalaryExpectationMin, &p.SalaryExpectationMax, &p.AvailableFrom, &p.WillingToRelocate,
			&p.RemotePreference, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}
