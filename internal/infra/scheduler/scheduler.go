package scheduler

import (
	"context"
	"fmt"
	"time"

	"birthday_notifier/internal/app"
	"birthday_notifier/internal/domain/event"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 5 * time.Minute

// NotificationScheduler owns the two timer triggers: the monthly summary run
// on the first of the month and the daily birthday run. Job failures are
// logged and swallowed; the system_events audit row already records them.
type NotificationScheduler struct {
	cronEngine      *cron.Cron
	runner          app.Runner // Using the interface
	logger          *logrus.Logger
	cronSpecMonthly string
	cronSpecDaily   string
}

func NewNotificationScheduler(
	runner app.Runner,
	logger *logrus.Logger,
	cronSpecMonthly string, // e.g., "0 5 1 * *" (05:00 on the 1st)
	cronSpecDaily string, // e.g., "30 5 * * *" (05:30 daily)
) *NotificationScheduler {
	return &NotificationScheduler{
		cronEngine:      cron.New(cron.WithLocation(time.UTC)),
		runner:          runner,
		logger:          logger,
		cronSpecMonthly: cronSpecMonthly,
		cronSpecDaily:   cronSpecDaily,
	}
}

func (s *NotificationScheduler) Start() error {
	s.logger.Info("Starting notification scheduler...")

	// Job for the monthly birthday summary
	_, err := s.cronEngine.AddFunc(s.cronSpecMonthly, func() {
		s.logger.Info("Cron job triggered for monthly birthday summary.")
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if eventID, err := s.runner.RunMonthly(ctx, event.TriggerTimer); err != nil {
			s.logger.Errorf("Monthly birthday summary run failed (system_event_id=%s): %v", eventID, err)
		}
	})
	if err != nil {
		return fmt.Errorf("could not add monthly summary cron job: %w", err)
	}

	// Job for the daily birthday notifications
	_, err = s.cronEngine.AddFunc(s.cronSpecDaily, func() {
		s.logger.Info("Cron job triggered for daily birthdays.")
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if eventID, err := s.runner.RunDaily(ctx, event.TriggerTimer); err != nil {
			s.logger.Errorf("Daily birthday run failed (system_event_id=%s): %v", eventID, err)
		}
	})
	if err != nil {
		return fmt.Errorf("could not add daily birthday cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Notification scheduler started with jobs.")
	return nil
}

func (s *NotificationScheduler) Stop() {
	s.logger.Info("Stopping notification scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Notification scheduler gracefully stopped.")
}
