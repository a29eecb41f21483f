package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/service"
)

type HelperRepository struct {
	db *pgxpool.Pool
}

func NewHelperRepository(db *pgxpool.Pool) service.HelperRepository {
	return &HelperRepository{db: db}
}

const helperColumns = `id, user_id, role, lat, lng, available, blocked`

func scanHelper(row pgx.Row) (*models.Helper, error) {
	helper := &models.Helper{}
	err := row.Scan(
		&helper.ID,
		&helper.UserID,
		&helper.Role,
		&helper.Lat,
		&helper.Lng,
		&helper.Available,
		&helper.Blocked,
	)
	if err != nil {
		return nil, err
	}
	return helper, nil
}

// GetByUserID возвращает профиль помощника по id пользователя.
// Предполагаем не более одного профиля на пользователя.
func (r *HelperRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Helper, error) {
	query := `SELECT ` + helperColumns + ` FROM helpers WHERE user_id = $1 LIMIT 1;`
	helper, err := scanHelper(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("helper for user %s: %w", userID, models.ErrNoHelperProfile)
		}
		return nil, fmt.Errorf("failed to get helper by user id: %w", err)
	}
	return helper, nil
}

// ListCandidates возвращает помощников, пригодных для подбора:
// доступных, не заблокированных, с известной позицией и допустимой ролью.
func (r *HelperRepository) ListCandidates(ctx context.Context) ([]*models.Helper, error) {
	query := `
		SELECT ` + helperColumns + `
		FROM helpers
		WHERE available = true
			AND blocked = false
			AND lat IS NOT NULL
			AND lng IS NOT NULL
			AND role = ANY($1);
	`
	rows, err := r.db.Query(ctx, query, models.AllowedHelperRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate helpers: %w", err)
	}
	defer rows.Close()

	helpers := make([]*models.Helper, 0)
	for rows.Next() {
		helper, err := scanHelper(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan helper row: %w", err)
		}
		helpers = append(helpers, helper)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListCandidates: %w", err)
	}
	return helpers, nil
}

// UpdateLocation обновляет последнюю известную позицию помощника.
// Хранится только последняя точка, история не ведется.
func (r *HelperRepository) UpdateLocation(ctx context.Context, helperID uuid.UUID, lat, lng float64) error {
	query := `UPDATE helpers SET lat = $1, lng = $2 WHERE id = $3;`
	cmdTag, err := r.db.Exec(ctx, query, lat, lng, helperID)
	if err != nil {
		return fmt.Errorf("failed to update helper location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("helper %s not found for location update: %w", helperID, models.ErrNotFound)
	}
	return nil
}
