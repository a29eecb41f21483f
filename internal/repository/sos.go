package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/service"
)

type SOSRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSOSRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SOSRepository {
	return &SOSRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const sosColumns = `id, user_id, type, latitude, longitude, status, helper_id, created_at, assigned_at`

func scanSOS(row pgx.Row) (*models.SOS, error) {
	sos := &models.SOS{}
	err := row.Scan(
		&sos.ID,
		&sos.UserID,
		&sos.Type,
		&sos.Latitude,
		&sos.Longitude,
		&sos.Status,
		&sos.HelperID,
		&sos.CreatedAt,
		&sos.AssignedAt,
	)
	if err != nil {
		return nil, err
	}
	return sos, nil
}

// Create создает новую запись SOS-запроса в статусе open
func (r *SOSRepository) Create(ctx context.Context, sos *models.SOS) error {
	query := `
		INSERT INTO sos_requests (user_id, type, latitude, longitude, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		sos.UserID,
		sos.Type,
		sos.Latitude,
		sos.Longitude,
		sos.Status,
	).Scan(&sos.ID, &sos.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sos request: %w", err)
	}
	return nil
}

// GetByID возвращает SOS-запрос по его UUID
func (r *SOSRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SOS, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_requests WHERE id = $1;`
	sos, err := scanSOS(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos request %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sos request by id: %w", err)
	}
	return sos, nil
}

// ListOpen возвращает открытые SOS-запросы в порядке создания
func (r *SOSRepository) ListOpen(ctx context.Context) ([]*models.SOS, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_requests WHERE status = $1 ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query, models.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sos requests: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SOS, 0)
	for rows.Next() {
		sos, err := scanSOS(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos row: %w", err)
		}
		result = append(result, sos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return result, nil
}

// ClaimOpen атомарно переводит open -> assigned и закрепляет помощника.
// Условный UPDATE гарантирует ровно одного победителя среди конкурентных вызовов:
// проигравший не получает строк и видит ErrConflict.
func (r *SOSRepository) ClaimOpen(ctx context.Context, sosID, helperID uuid.UUID) (*models.SOS, error) {
	query := `
		UPDATE sos_requests
		SET status = $1, helper_id = $2, assigned_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING ` + sosColumns + `;
	`
	sos, err := scanSOS(r.db.QueryRow(ctx, query, models.StatusAssigned, helperID, sosID, models.StatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionFailure(ctx, sosID, "claim")
		}
		return nil, fmt.Errorf("failed to claim sos request: %w", err)
	}
	return sos, nil
}

// RejectOpen атомарно переводит open -> rejected.
// Переход ключуется только на текущем статусе open, без привязки к помощнику.
func (r *SOSRepository) RejectOpen(ctx context.Context, sosID uuid.UUID) (*models.SOS, error) {
	query := `
		UPDATE sos_requests
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING ` + sosColumns + `;
	`
	sos, err := scanSOS(r.db.QueryRow(ctx, query, models.StatusRejected, sosID, models.StatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionFailure(ctx, sosID, "reject")
		}
		return nil, fmt.Errorf("failed to reject sos request: %w", err)
	}
	return sos, nil
}

// ResolveAssigned атомарно переводит assigned -> closed, дополнительно
// проверяя, что запрос закреплен именно за этим помощником.
func (r *SOSRepository) ResolveAssigned(ctx context.Context, sosID, helperID uuid.UUID) (*models.SOS, error) {
	query := `
		UPDATE sos_requests
		SET status = $1
		WHERE id = $2 AND helper_id = $3 AND status = $4
		RETURNING ` + sosColumns + `;
	`
	sos, err := scanSOS(r.db.QueryRow(ctx, query, models.StatusClosed, sosID, helperID, models.StatusAssigned))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.transitionFailure(ctx, sosID, "resolve")
		}
		return nil, fmt.Errorf("failed to resolve sos request: %w", err)
	}
	return sos, nil
}

// transitionFailure различает проигранную гонку и несуществующий id.
// Чтение выполняется уже после условного UPDATE и окно гонки не открывает.
func (r *SOSRepository) transitionFailure(ctx context.Context, sosID uuid.UUID, op string) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sos_requests WHERE id = $1);`, sosID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check sos request existence after %s: %w", op, err)
	}
	if !exists {
		return fmt.Errorf("sos request %s: %w", sosID, models.ErrNotFound)
	}
	return fmt.Errorf("sos request %s is not in the expected status for %s: %w", sosID, op, models.ErrConflict)
}

// GetSOSFromCache пытается получить SOS-запрос из Redis
func (r *SOSRepository) GetSOSFromCache(ctx context.Context, id uuid.UUID) (*models.SOS, error) {
	key := fmt.Sprintf("sos:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sos request from cache: %w", err)
	}

	sos := &models.SOS{}
	if err := json.Unmarshal(val, sos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sos request from cache: %w", err)
	}
	return sos, nil
}

// SetSOSCache сохраняет SOS-запрос в Redis
func (r *SOSRepository) SetSOSCache(ctx context.Context, sos *models.SOS) error {
	key := fmt.Sprintf("sos:%s", sos.ID.String())
	val, err := json.Marshal(sos)
	if err != nil {
		return fmt.Errorf("failed to marshal sos request for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set sos request in cache: %w", err)
	}
	return nil
}

// InvalidateSOSCache удаляет SOS-запрос из Redis кэша.
// Вызывается после каждого перехода статуса.
func (r *SOSRepository) InvalidateSOSCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("sos:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate sos request cache: %w", err)
	}
	return nil
}
