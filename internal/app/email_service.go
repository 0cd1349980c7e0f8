package app

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"birthday_notifier/internal/domain/birthday"
	"birthday_notifier/internal/domain/email"

	"github.com/sirupsen/logrus"
)

// EmailService formats and dispatches birthday notification emails. Rows are
// grouped by their email_to address so each recipient gets one message.
// Missing email configuration is a soft skip, not an error: the run still
// succeeds and the gap is only visible in the logs.
type EmailService struct {
	client    email.Client
	from      string
	defaultTo []string // extra recipients for the full monthly summary
	logger    *logrus.Logger
	now       func() time.Time
}

func NewEmailService(client email.Client, from string, defaultTo []string, logger *logrus.Logger) *EmailService {
	return &EmailService{
		client:    client,
		from:      from,
		defaultTo: defaultTo,
		logger:    logger,
		now:       time.Now,
	}
}

// SendDailyBirthdayEmails sends one notification per recipient listing the
// people whose birthday is today. An empty row list sends nothing.
func (s *EmailService) SendDailyBirthdayEmails(ctx context.Context, rows []birthday.DailyRow) error {
	if len(rows) == 0 {
		s.logger.Info("No birthdays today; no email will be sent.")
		return nil
	}
	if !s.configured() {
		return nil
	}

	for _, group := range groupDailyRows(rows) {
		text, htmlBody := buildDailyBodies(group.names)
		msg := email.Message{
			From:    s.from,
			To:      []string{group.emailTo},
			Subject: "Birthdays today",
			Text:    text,
			HTML:    htmlBody,
		}
		messageID, err := s.client.Send(ctx, msg)
		if err != nil {
			s.logger.Errorf("Failed to send daily birthday email to %s: %v", group.emailTo, err)
			return fmt.Errorf("failed to send daily birthday email: %w", err)
		}
		s.logger.Infof("Daily birthday email sent to=%s message_id=%s", group.emailTo, messageID)
	}
	return nil
}

// SendMonthlySummaryEmail sends each recipient a summary of the birthdays
// addressed to them this month. When default recipients are configured they
// additionally receive the complete summary. An empty row list sends nothing.
func (s *EmailService) SendMonthlySummaryEmail(ctx context.Context, rows []birthday.MonthlyRow) error {
	if len(rows) == 0 {
		s.logger.Info("No birthdays this month; no summary email will be sent.")
		return nil
	}
	if !s.configured() {
		return nil
	}

	subject := fmt.Sprintf("Birthday summary for %s", s.now().Month())

	for _, group := range groupMonthlyRows(rows) {
		text, htmlBody := buildMonthlyBodies(group.rows)
		msg := email.Message{
			From:    s.from,
			To:      []string{group.emailTo},
			Subject: subject,
			Text:    text,
			HTML:    htmlBody,
		}
		messageID, err := s.client.Send(ctx, msg)
		if err != nil {
			s.logger.Errorf("Failed to send monthly summary email to %s: %v", group.emailTo, err)
			return fmt.Errorf("failed to send monthly summary email: %w", err)
		}
		s.logger.Infof("Monthly summary email sent to=%s message_id=%s", group.emailTo, messageID)
	}

	if len(s.defaultTo) > 0 {
		text, htmlBody := buildMonthlyBodies(rows)
		msg := email.Message{
			From:    s.from,
			To:      s.defaultTo,
			Subject: subject,
			Text:    text,
			HTML:    htmlBody,
		}
		messageID, err := s.client.Send(ctx, msg)
		if err != nil {
			s.logger.Errorf("Failed to send monthly summary email to default recipients: %v", err)
			return fmt.Errorf("failed to send monthly summary email: %w", err)
		}
		s.logger.Infof("Monthly summary email sent to default recipients message_id=%s", messageID)
	}
	return nil
}

// configured reports whether dispatch has what it needs; warns otherwise.
func (s *EmailService) configured() bool {
	if s.client == nil {
		s.logger.Warn("Email not sent: missing SMTP_HOST configuration.")
		return false
	}
	if s.from == "" {
		s.logger.Warn("Email not sent: missing EMAIL_FROM configuration.")
		return false
	}
	return true
}

type dailyGroup struct {
	emailTo string
	names   []string
}

// groupDailyRows cuts the rows into per-recipient groups. Rows arrive ordered
// by email_to, so a single pass preserves the query order.
func groupDailyRows(rows []birthday.DailyRow) []dailyGroup {
	groups := make([]dailyGroup, 0)
	for _, row := range rows {
		if n := len(groups); n > 0 && groups[n-1].emailTo == row.EmailTo {
			groups[n-1].names = append(groups[n-1].names, row.Name)
			continue
		}
		groups = append(groups, dailyGroup{emailTo: row.EmailTo, names: []string{row.Name}})
	}
	return groups
}

type monthlyGroup struct {
	emailTo string
	rows    []birthday.MonthlyRow
}

// groupMonthlyRows cuts the rows into per-recipient groups, preserving the
// (email_to, day, name) query order within each group.
func groupMonthlyRows(rows []birthday.MonthlyRow) []monthlyGroup {
	groups := make([]monthlyGroup, 0)
	for _, row := range rows {
		if n := len(groups); n > 0 && groups[n-1].emailTo == row.EmailTo {
			groups[n-1].rows = append(groups[n-1].rows, row)
			continue
		}
		groups = append(groups, monthlyGroup{emailTo: row.EmailTo, rows: []birthday.MonthlyRow{row}})
	}
	return groups
}

func buildDailyBodies(names []string) (string, string) {
	var text, htmlBody strings.Builder

	text.WriteString("The following birthdays are today:\n\n")
	htmlBody.WriteString("<p>The following birthdays are today:</p><ul>")
	for _, name := range names {
		fmt.Fprintf(&text, "- %s\n", name)
		fmt.Fprintf(&htmlBody, "<li>%s</li>", html.EscapeString(name))
	}
	htmlBody.WriteString("</ul>")

	return text.String(), htmlBody.String()
}

func buildMonthlyBodies(rows []birthday.MonthlyRow) (string, string) {
	var text, htmlBody strings.Builder

	text.WriteString("Birthdays this month:\n\n")
	htmlBody.WriteString("<p>Birthdays this month:</p><ul>")
	for _, row := range rows {
		fmt.Fprintf(&text, "- Day %d: %s\n", row.BirthdayDay, row.Name)
		fmt.Fprintf(&htmlBody, "<li>Day %d: %s</li>", row.BirthdayDay, html.EscapeString(row.Name))
	}
	htmlBody.WriteString("</ul>")

	return text.String(), htmlBody.String()
}
