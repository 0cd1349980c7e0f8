package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"birthday_notifier/internal/domain/birthday"
	"birthday_notifier/internal/infra/logger"
)

type PostgresBirthdayRepository struct {
	db *sql.DB
}

func NewPostgresBirthdayRepository(db *sql.DB) *PostgresBirthdayRepository {
	return &PostgresBirthdayRepository{db: db}
}

// ListForDate returns records whose date_of_birth shares the month and day of
// the given date. The year is ignored, which captures recurring annual
// birthdays.
func (r *PostgresBirthdayRepository) ListForDate(ctx context.Context, date time.Time) ([]birthday.DailyRow, error) {
	query := `SELECT full_name, email_to
               FROM birthdays
               WHERE EXTRACT(MONTH FROM date_of_birth) = EXTRACT(MONTH FROM $1::date)
                 AND EXTRACT(DAY FROM date_of_birth) = EXTRACT(DAY FROM $1::date)
               ORDER BY email_to, full_name`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying birthdays for date: %w", err)
	}
	defer rows.Close()

	birthdays := make([]birthday.DailyRow, 0)
	for rows.Next() {
		var row birthday.DailyRow
		if err := rows.Scan(&row.Name, &row.EmailTo); err != nil {
			return nil, fmt.Errorf("error scanning daily birthday row: %w", err)
		}
		birthdays = append(birthdays, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily birthday rows: %w", err)
	}

	logger.Log.Infof("Retrieved %d birthdays for date %s", len(birthdays), date.Format("2006-01-02"))
	return birthdays, nil
}

// ListForMonth returns records whose date_of_birth shares the month of the
// given date, with the day of month projected out for the summary.
func (r *PostgresBirthdayRepository) ListForMonth(ctx context.Context, date time.Time) ([]birthday.MonthlyRow, error) {
	query := `SELECT full_name, EXTRACT(DAY FROM date_of_birth)::int AS birthday_day, email_to
               FROM birthdays
               WHERE EXTRACT(MONTH FROM date_of_birth) = EXTRACT(MONTH FROM $1::date)
               ORDER BY email_to, EXTRACT(DAY FROM date_of_birth), full_name`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying birthdays for month: %w", err)
	}
	defer rows.Close()

	birthdays := make([]birthday.MonthlyRow, 0)
	for rows.Next() {
		var row birthday.MonthlyRow
		if err := rows.Scan(&row.Name, &row.BirthdayDay, &row.EmailTo); err != nil {
			return nil, fmt.Errorf("error scanning monthly birthday row: %w", err)
		}
		birthdays = append(birthdays, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly birthday rows: %w", err)
	}

	logger.Log.Infof("Retrieved %d birthdays for month of date %s", len(birthdays), date.Format("2006-01-02"))
	return birthdays, nil
}
