package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// UpsertIncident вставляет инцидент или обновляет изменяемые поля существующего.
// added_at, dispatched_at и agency после вставки не меняются.
func (r *IncidentRepository) UpsertIncident(ctx context.Context, incident models.LiveIncident, parser string, now time.Time, reactivate bool) error {
	query := `
		INSERT INTO incidents (
			number, category, description, intersection, municipality,
			dispatched_at, priority, agency, latitude, longitude,
			added_at, updated_at, client
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11, $12)
		ON CONFLICT (number) DO UPDATE SET
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			intersection = EXCLUDED.intersection,
			municipality = EXCLUDED.municipality,
			priority = EXCLUDED.priority,
			latitude = COALESCE(EXCLUDED.latitude, incidents.latitude),
			longitude = COALESCE(EXCLUDED.longitude, incidents.longitude),
			updated_at = EXCLUDED.updated_at,
			resolved_at = CASE WHEN $13::boolean THEN NULL ELSE incidents.resolved_at END,
			automatically_resolved = CASE WHEN $13::boolean THEN FALSE ELSE incidents.automatically_resolved END;
	`
	var lat, lon *float64
	if incident.Coordinates != nil {
		lat, lon = &incident.Coordinates.Latitude, &incident.Coordinates.Longitude
	}

	_, err := r.db.Exec(ctx, query,
		incident.Number,
		string(incident.Category),
		incident.Description,
		nullString(incident.Intersection),
		incident.Municipality,
		incident.DispatchedAt,
		incident.Priority,
		incident.Agency,
		lat,
		lon,
		now,
		nullString(parser),
		reactivate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert incident %d: %w", incident.Number, err)
	}
	return nil
}

// ResolveIncident отмечает инцидент разрешенным. Возвращает false, если он уже был разрешен или не найден.
func (r *IncidentRepository) ResolveIncident(ctx context.Context, number int64, now time.Time) (bool, error) {
	query := `
		UPDATE incidents SET
			resolved_at = $2
		WHERE number = $1 AND resolved_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, number, now)
	if err != nil {
		return false, fmt.Errorf("failed to resolve incident %d: %w", number, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// UpsertUnits вставляет подразделения инцидента или продлевает их last_seen. Одна транзакция на инцидент.
func (r *IncidentRepository) UpsertUnits(ctx context.Context, number int64, units []models.LiveUnit, now time.Time, reactivate bool) (int, error) {
	query := `
		INSERT INTO units (incident_number, short_name, name, added_at, last_seen)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (incident_number, short_name) DO UPDATE SET
			last_seen = EXCLUDED.last_seen,
			removed_at = CASE WHEN $5::boolean THEN NULL ELSE units.removed_at END,
			automatically_removed = CASE WHEN $5::boolean THEN FALSE ELSE units.automatically_removed END;
	`
	affected := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := ensureIncident(ctx, tx, number); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, unit := range units {
			batch.Queue(query, number, unit.ShortName, nullString(unit.Name), now, reactivate)
		}
		results := tx.SendBatch(ctx, batch)
		for range units {
			cmdTag, err := results.Exec()
			if err != nil {
				results.Close()
				return err
			}
			affected += int(cmdTag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert units for incident %d: %w", number, err)
	}
	return affected, nil
}

// RemoveUnits отмечает подразделения снятыми. Уже снятые не трогаются.
func (r *IncidentRepository) RemoveUnits(ctx context.Context, number int64, shortNames []string, now time.Time) (int, error) {
	query := `
		UPDATE units SET
			removed_at = $3
		WHERE incident_number = $1
			AND short_name = ANY($2)
			AND removed_at IS NULL;
	`
	affected := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := ensureIncident(ctx, tx, number); err != nil {
			return err
		}
		cmdTag, err := tx.Exec(ctx, query, number, shortNames, now)
		if err != nil {
			return err
		}
		affected = int(cmdTag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to remove units for incident %d: %w", number, err)
	}
	return affected, nil
}

// ResolveStaleIncidents разрешает активные инциденты, не обновлявшиеся с cutoff
func (r *IncidentRepository) ResolveStaleIncidents(ctx context.Context, now, cutoff time.Time) (int64, error) {
	query := `
		UPDATE incidents SET
			resolved_at = $1,
			automatically_resolved = TRUE
		WHERE resolved_at IS NULL AND updated_at <= $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, now, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve stale incidents: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// RemoveStaleUnits снимает подразделения, не подтвержденные лентой с cutoff
func (r *IncidentRepository) RemoveStaleUnits(ctx context.Context, now, cutoff time.Time) (int64, error) {
	query := `
		UPDATE units SET
			removed_at = $1,
			automatically_removed = TRUE
		WHERE removed_at IS NULL AND last_seen <= $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, now, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to remove stale units: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListActive возвращает неразрешенные инциденты с неснятыми подразделениями, по возрастанию номера
func (r *IncidentRepository) ListActive(ctx context.Context) ([]models.LiveIncident, error) {
	query := `
		SELECT
			number,
			category,
			description,
			COALESCE(intersection, ''),
			municipality,
			dispatched_at,
			priority,
			agency,
			latitude,
			longitude
		FROM incidents
		WHERE resolved_at IS NULL
		ORDER BY number;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.LiveIncident, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			incident models.LiveIncident
			category string
			priority *int32
			lat, lon *float64
		)
		err := rows.Scan(
			&incident.Number,
			&category,
			&incident.Description,
			&incident.Intersection,
			&incident.Municipality,
			&incident.DispatchedAt,
			&priority,
			&incident.Agency,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Category = models.Category(category)
		if priority != nil {
			p := int(*priority)
			incident.Priority = &p
		}
		if lat != nil && lon != nil {
			incident.Coordinates = &models.Coordinates{Latitude: *lat, Longitude: *lon}
		}
		index[incident.Number] = len(incidents)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	if err := r.attachActiveUnits(ctx, incidents, index); err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *IncidentRepository) attachActiveUnits(ctx context.Context, incidents []models.LiveIncident, index map[int64]int) error {
	query := `
		SELECT u.incident_number, u.short_name, COALESCE(u.name, '')
		FROM units u
		JOIN incidents i ON i.number = u.incident_number
		WHERE i.resolved_at IS NULL AND u.removed_at IS NULL
		ORDER BY u.incident_number, u.short_name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list active units: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			number int64
			unit   models.LiveUnit
		)
		if err := rows.Scan(&number, &unit.ShortName, &unit.Name); err != nil {
			return fmt.Errorf("failed to scan unit row: %w", err)
		}
		// Инцидент мог разрешиться между двумя запросами
		if i, ok := index[number]; ok {
			incidents[i].Units = append(incidents[i].Units, unit)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error unit iteration: %w", err)
	}
	return nil
}

// ensureIncident проверяет наличие родительского инцидента внутри транзакции
func ensureIncident(ctx context.Context, tx pgx.Tx, number int64) error {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM incidents WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check incident %d: %w", number, err)
	}
	if !exists {
		return service.ErrIncidentNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
