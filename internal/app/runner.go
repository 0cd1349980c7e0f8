package app

import (
	"context"

	"birthday_notifier/internal/domain/event"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Function names recorded in the system_events audit trail.
const (
	FunctionDailySummary   = "DailyBirthdaySummary"
	FunctionMonthlySummary = "MonthlyBirthdaySummary"
)

// Runner defines one end-to-end notification run: start an audit row, fetch
// the birthday set, send the emails, and close the audit row with the
// outcome. The returned event id identifies the audit row whenever the run
// got far enough to create one (uuid.Nil otherwise).
type Runner interface {
	RunDaily(ctx context.Context, triggerType string) (uuid.UUID, error)
	RunMonthly(ctx context.Context, triggerType string) (uuid.UUID, error)
}

// RunnerImpl implements the Runner interface.
type RunnerImpl struct {
	events    event.Repository
	birthdays *BirthdayService
	emails    *EmailService
	logger    *logrus.Logger
}

func NewRunnerImpl(
	er event.Repository,
	bs *BirthdayService,
	es *EmailService,
	logger *logrus.Logger,
) *RunnerImpl {
	return &RunnerImpl{
		events:    er,
		birthdays: bs,
		emails:    es,
		logger:    logger,
	}
}

// RunDaily executes the daily birthday notification run.
func (r *RunnerImpl) RunDaily(ctx context.Context, triggerType string) (uuid.UUID, error) {
	return r.run(ctx, FunctionDailySummary, triggerType, r.dailyOnce)
}

// RunMonthly executes the monthly birthday summary run.
func (r *RunnerImpl) RunMonthly(ctx context.Context, triggerType string) (uuid.UUID, error) {
	return r.run(ctx, FunctionMonthlySummary, triggerType, r.monthlyOnce)
}

// run records the lifecycle of one invocation: exactly one system_events row
// whose terminal status reflects whether fetch and send completed cleanly.
func (r *RunnerImpl) run(ctx context.Context, functionName, triggerType string, work func(context.Context) error) (uuid.UUID, error) {
	r.logger.Infof("%s triggered (trigger=%s).", functionName, triggerType)

	ev, err := r.events.Start(ctx, functionName, triggerType, event.TypeNotification)
	if err != nil {
		r.logger.Errorf("%s: failed to start system event: %v", functionName, err)
		return uuid.Nil, err
	}

	if err := work(ctx); err != nil {
		r.logger.Errorf("%s failed: %v", functionName, err)
		if completeErr := r.events.Complete(ctx, ev.ID, event.StatusFailed, err.Error()); completeErr != nil {
			r.logger.Errorf("%s: failed to record failure for system event %s: %v", functionName, ev.ID, completeErr)
		}
		return ev.ID, err
	}

	if err := r.events.Complete(ctx, ev.ID, event.StatusSucceeded, ""); err != nil {
		r.logger.Errorf("%s: failed to record success for system event %s: %v", functionName, ev.ID, err)
		return ev.ID, err
	}

	r.logger.Infof("%s completed (system_event_id=%s).", functionName, ev.ID)
	return ev.ID, nil
}

func (r *RunnerImpl) dailyOnce(ctx context.Context) error {
	r.logger.Info("Retrieving daily birthdays.")
	rows, err := r.birthdays.DailyBirthdays(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("Daily birthdays retrieved.")

	r.logger.Info("Sending daily birthday emails.")
	if err := r.emails.SendDailyBirthdayEmails(ctx, rows); err != nil {
		return err
	}
	r.logger.Info("Daily birthday emails sent.")
	return nil
}

func (r *RunnerImpl) monthlyOnce(ctx context.Context) error {
	r.logger.Info("Retrieving monthly birthday summary.")
	rows, err := r.birthdays.MonthlyBirthdays(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("Monthly birthday summary retrieved.")

	r.logger.Info("Sending monthly birthday summary email.")
	if err := r.emails.SendMonthlySummaryEmail(ctx, rows); err != nil {
		return err
	}
	r.logger.Info("Monthly birthday summary email sent.")
	return nil
}
