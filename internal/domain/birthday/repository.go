package birthday

import (
	"context"
	"time"
)

// Repository defines read access to the birthdays reference table. The table
// is owned by an external system; this service never writes to it.
type Repository interface {
	// ListForDate returns records whose date_of_birth shares the month and day
	// of the given date, ordered by email_to, then name.
	ListForDate(ctx context.Context, date time.Time) ([]DailyRow, error)
	// ListForMonth returns records whose date_of_birth shares the month of the
	// given date, ordered by email_to, then day, then name.
	ListForMonth(ctx context.Context, date time.Time) ([]MonthlyRow, error)
}
