package app

import (
	"context"
	"testing"
	"time"

	"birthday_notifier/internal/domain/birthday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDailyBirthdayEmailsEmptyRowsSendsNothing(t *testing.T) {
	client := &fakeEmailClient{}
	svc := NewEmailService(client, "notifier@example.com", nil, testLogger())

	err := svc.SendDailyBirthdayEmails(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, client.sent)
}

func TestSendDailyBirthdayEmailsMissingSenderSkips(t *testing.T) {
	client := &fakeEmailClient{}
	svc := NewEmailService(client, "", nil, testLogger())

	err := svc.SendDailyBirthdayEmails(context.Background(), []birthday.DailyRow{
		{Name: "Alice", EmailTo: "a@x.com"},
	})

	require.NoError(t, err)
	assert.Empty(t, client.sent)
}

func TestSendDailyBirthdayEmailsMissingClientSkips(t *testing.T) {
	svc := NewEmailService(nil, "notifier@example.com", nil, testLogger())

	err := svc.SendDailyBirthdayEmails(context.Background(), []birthday.DailyRow{
		{Name: "Alice", EmailTo: "a@x.com"},
	})

	require.NoError(t, err)
}

func TestSendDailyBirthdayEmailsGroupsByRecipient(t *testing.T) {
	client := &fakeEmailClient{}
	svc := NewEmailService(client, "notifier@example.com", nil, testLogger())

	err := svc.SendDailyBirthdayEmails(context.Background(), []birthday.DailyRow{
		{Name: "Alice", EmailTo: "a@x.com"},
		{Name: "Anna", EmailTo: "a@x.com"},
		{Name: "Bob", EmailTo: "b@x.com"},
	})

	require.NoError(t, err)
	require.Len(t, client.sent, 2)

	first := client.sent[0]
	assert.Equal(t, "notifier@example.com", first.From)
	assert.Equal(t, []string{"a@x.com"}, first.To)
	assert.Contains(t, first.Text, "Alice")
	assert.Contains(t, first.Text, "Anna")
	assert.Contains(t, first.HTML, "<li>Alice</li>")

	second := client.sent[1]
	assert.Equal(t, []string{"b@x.com"}, second.To)
	assert.Contains(t, second.Text, "Bob")
	assert.NotContains(t, second.Text, "Alice")
}

func TestSendMonthlySummaryEmailEmptyRowsSendsNothing(t *testing.T) {
	client := &fakeEmailClient{}
	svc := NewEmailService(client, "notifier@example.com", []string{"admin@x.com"}, testLogger())

	err := svc.SendMonthlySummaryEmail(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, client.sent)
}

func TestSendMonthlySummaryEmailPerRecipientAndDefaults(t *testing.T) {
	client := &fakeEmailClient{}
	svc := NewEmailService(client, "notifier@example.com", []string{"admin@x.com"}, testLogger())
	svc.now = func() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) }

	err := svc.SendMonthlySummaryEmail(context.Background(), []birthday.MonthlyRow{
		{Name: "Alice", BirthdayDay: 14, EmailTo: "a@x.com"},
		{Name: "Bob", BirthdayDay: 14, EmailTo: "b@x.com"},
	})

	require.NoError(t, err)
	require.Len(t, client.sent, 3)

	assert.Equal(t, []string{"a@x.com"}, client.sent[0].To)
	assert.Contains(t, client.sent[0].Text, "Day 14: Alice")
	assert.Equal(t, "Birthday summary for March", client.sent[0].Subject)

	assert.Equal(t, []string{"b@x.com"}, client.sent[1].To)
	assert.Contains(t, client.sent[1].Text, "Day 14: Bob")

	// default recipients get the complete summary
	full := client.sent[2]
	assert.Equal(t, []string{"admin@x.com"}, full.To)
	assert.Contains(t, full.Text, "Alice")
	assert.Contains(t, full.Text, "Bob")
}

func TestGroupDailyRowsPreservesOrder(t *testing.T) {
	groups := groupDailyRows([]birthday.DailyRow{
		{Name: "Alice", EmailTo: "a@x.com"},
		{Name: "Bob", EmailTo: "b@x.com"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "a@x.com", groups[0].emailTo)
	assert.Equal(t, []string{"Alice"}, groups[0].names)
	assert.Equal(t, "b@x.com", groups[1].emailTo)
}
