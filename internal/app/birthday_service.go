package app

import (
	"context"
	"time"

	"birthday_notifier/internal/domain/birthday"

	"github.com/sirupsen/logrus"
)

// BirthdayService fetches the birthday sets for the current date and month.
// It stamps "now" at invocation time and delegates to the repository; rows
// come back unchanged.
type BirthdayService struct {
	birthdayRepo birthday.Repository
	logger       *logrus.Logger
	now          func() time.Time
}

func NewBirthdayService(br birthday.Repository, logger *logrus.Logger) *BirthdayService {
	return &BirthdayService{
		birthdayRepo: br,
		logger:       logger,
		now:          time.Now,
	}
}

// DailyBirthdays returns the records whose birthday falls on today's month and day.
func (s *BirthdayService) DailyBirthdays(ctx context.Context) ([]birthday.DailyRow, error) {
	rows, err := s.birthdayRepo.ListForDate(ctx, s.now())
	if err != nil {
		s.logger.Errorf("Error getting daily birthdays: %v", err)
		return nil, err
	}
	return rows, nil
}

// MonthlyBirthdays returns the records whose birthday falls in the current month.
func (s *BirthdayService) MonthlyBirthdays(ctx context.Context) ([]birthday.MonthlyRow, error) {
	rows, err := s.birthdayRepo.ListForMonth(ctx, s.now())
	if err != nil {
		s.logger.Errorf("Error getting monthly birthday summary: %v", err)
		return nil, err
	}
	return rows, nil
}
