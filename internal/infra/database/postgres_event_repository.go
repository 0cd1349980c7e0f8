// internal/infra/database/postgres_event_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"birthday_notifier/internal/domain/event"
	"birthday_notifier/internal/infra/logger"

	"github.com/google/uuid"
)

type PostgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

// Start inserts a new system_events row with status "started" and returns it
// with the generated id and start timestamp.
func (r *PostgresEventRepository) Start(ctx context.Context, functionName, triggerType, eventType string) (*event.SystemEvent, error) {
	query := `INSERT INTO system_events (function_name, trigger_type, event_type, status)
               VALUES ($1, $2, $3, $4)
               RETURNING id, started_at`
	ev := &event.SystemEvent{
		FunctionName: functionName,
		TriggerType:  triggerType,
		EventType:    eventType,
		Status:       event.StatusStarted,
	}
	err := r.db.QueryRowContext(ctx, query, functionName, triggerType, eventType, ev.Status).
		Scan(&ev.ID, &ev.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("error starting system event: %w", err)
	}

	logger.Log.Infof("Started system event id=%s function=%s trigger=%s type=%s",
		ev.ID, functionName, triggerType, eventType)
	return ev, nil
}

// Complete marks an existing system_events row as finished. An id with no
// matching row updates nothing and is not treated as an error; the caller
// owns the id for the lifetime of a run, so a miss means the row was removed
// out of band.
func (r *PostgresEventRepository) Complete(ctx context.Context, id uuid.UUID, status event.Status, details string) error {
	query := `UPDATE system_events
               SET status = $1, details = NULLIF($2, ''), completed_at = NOW()
               WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, status, details, id); err != nil {
		return fmt.Errorf("error completing system event: %w", err)
	}

	logger.Log.Infof("Completed system event id=%s with status=%s", id, status)
	if details != "" {
		logger.Log.Infof("System event id=%s completion details: %s", id, details)
	}
	return nil
}
