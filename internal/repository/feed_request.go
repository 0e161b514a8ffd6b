package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
)

type FeedRequestRepository struct {
	db *pgxpool.Pool
}

func NewFeedRequestRepository(db *pgxpool.Pool) service.FeedRequestRepository {
	return &FeedRequestRepository{
		db: db,
	}
}

// Create добавляет запись аудита. execution_time хранится в секундах.
func (r *FeedRequestRepository) Create(ctx context.Context, req *models.FeedRequest) error {
	query := `
		INSERT INTO feed_requests (id, requested_at, execution_time, success, parser, incidents, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.RequestedAt,
		req.ExecutionTime.Seconds(),
		req.Success,
		req.Parser,
		req.Incidents,
		nullString(req.Message),
	)
	if err != nil {
		return fmt.Errorf("failed to create feed request: %w", err)
	}
	return nil
}

// ListRecent возвращает последние записи аудита, новые первыми
func (r *FeedRequestRepository) ListRecent(ctx context.Context, limit int) ([]*models.FeedRequest, error) {
	query := `
		SELECT id, requested_at, execution_time, success, parser, incidents, COALESCE(message, '')
		FROM feed_requests
		ORDER BY requested_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.FeedRequest, 0)
	for rows.Next() {
		var (
			req       models.FeedRequest
			seconds   float64
			incidents *int32
		)
		err := rows.Scan(
			&req.ID,
			&req.RequestedAt,
			&seconds,
			&req.Success,
			&req.Parser,
			&incidents,
			&req.Message,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed request row: %w", err)
		}
		req.ExecutionTime = time.Duration(seconds * float64(time.Second))
		if incidents != nil {
			n := int(*incidents)
			req.Incidents = &n
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}
