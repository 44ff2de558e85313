package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type privacyRepo struct {
	db *pgxpool.Pool
}

func NewPrivacyRepository(db *pgxpool.Pool) domain.PrivacySettingsRepository {
	return &privacyRepo{db: db}
}

func (r *privacyRepo) GetByUserID(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	query := `SELECT id, user_id, privacy_level, profile_visible_to_employers, contact_info_visible, salary_visible,
		created_at, updated_at FROM privacy_settings WHERE user_id = $1`

	var s domain.PrivacySettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.PrivacyLevel, &s.ProfileVisibleToEmployers, &s.ContactInfoVisible, &s.SalaryVisible,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Replace upserts the single active record per profile.
func (r *privacyRepo) Replace(ctx context.Context, s *domain.PrivacySettings) error {
	query := `INSERT INTO privacy_settings (user_id, privacy_level, profile_visible_to_employers, contact_info_visible,
		salary_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (user_id) DO UPDATE SET
			privacy_level = EXCLUDED.privacy_level,
			profile_visible_to_employers = EXCLUDED.profile_visible_to_employers,
			contact_info_visible = EXCLUDED.contact_info_visible,
			salary_visible = EXCLUDED.salary_visible,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		s.UserID, s.PrivacyLevel, s.ProfileVisibleToEmployers, s.ContactInfoVisible, s.SalaryVisible, s.UpdatedAt,
	).Scan(&s.ID, &s.CreatedAt)
}
