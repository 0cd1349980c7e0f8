package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"birthday_notifier/internal/domain/birthday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyBirthdaysStampsTodayAndPassesRowsThrough(t *testing.T) {
	repo := &fakeBirthdayRepo{daily: []birthday.DailyRow{
		{Name: "Alice", EmailTo: "a@x.com"},
		{Name: "Bob", EmailTo: "b@x.com"},
	}}
	svc := NewBirthdayService(repo, testLogger())
	today := time.Date(2024, time.March, 14, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	rows, err := svc.DailyBirthdays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, today, repo.gotDate)
	assert.Equal(t, repo.daily, rows)
}

func TestDailyBirthdaysPropagatesError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewBirthdayService(&fakeBirthdayRepo{dailyErr: repoErr}, testLogger())

	_, err := svc.DailyBirthdays(context.Background())

	assert.Equal(t, repoErr, err)
}

func TestMonthlyBirthdaysStampsTodayAndPassesRowsThrough(t *testing.T) {
	repo := &fakeBirthdayRepo{monthly: []birthday.MonthlyRow{
		{Name: "Alice", BirthdayDay: 14, EmailTo: "a@x.com"},
	}}
	svc := NewBirthdayService(repo, testLogger())
	today := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	rows, err := svc.MonthlyBirthdays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, today, repo.gotDate)
	assert.Equal(t, repo.monthly, rows)
}

func TestMonthlyBirthdaysPropagatesError(t *testing.T) {
	repoErr := errors.New("query timeout")
	svc := NewBirthdayService(&fakeBirthdayRepo{monthlyErr: repoErr}, testLogger())

	_, err := svc.MonthlyBirthdays(context.Background())

	assert.Equal(t, repoErr, err)
}
