package event

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the audit-trail operations on system_events.
type Repository interface {
	// Start inserts a new row with status "started" and returns it with the
	// generated id, so callers can reference the row for the rest of the run.
	Start(ctx context.Context, functionName, triggerType, eventType string) (*SystemEvent, error)
	// Complete updates the row's status, details and completion timestamp by
	// id. An empty details string is stored as NULL. An id with no matching
	// row is silently a no-op.
	Complete(ctx context.Context, id uuid.UUID, status Status, details string) error
}
