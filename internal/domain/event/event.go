package event

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a system event.
type Status string

const (
	StatusStarted   Status = "started"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Trigger types recorded on a system event.
const (
	TriggerTimer = "timer"
	TriggerHTTP  = "http"
)

// TypeNotification is the event type for birthday notification runs.
const TypeNotification = "notification"

// SystemEvent is one row of the system_events audit trail. A row is created
// when a run starts and updated exactly once when the run ends; rows are kept
// indefinitely.
type SystemEvent struct {
	ID           uuid.UUID
	FunctionName string
	TriggerType  string
	EventType    string
	Status       Status
	Details      sql.NullString
	StartedAt    time.Time
	CompletedAt  sql.NullTime
}
