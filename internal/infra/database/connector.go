package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	"birthday_notifier/internal/infra/logger"

	"github.com/lib/pq"
)

// Connector establishes authenticated Postgres connections for database/sql.
// Every physical connection is opened with a fresh access token from the
// TokenProvider (injected as the connection password), and establishment is
// retried per the policy.
type Connector struct {
	dsnBase string
	tokens  TokenProvider
	retry   RetryPolicy

	// dial opens one physical connection; overridable in tests.
	dial func(ctx context.Context) (driver.Conn, error)
}

func NewConnector(host string, port int, dbname, user string, tokens TokenProvider, retry RetryPolicy) *Connector {
	c := &Connector{
		dsnBase: fmt.Sprintf(
			"host=%s port=%d dbname=%s user=%s sslmode=require connect_timeout=30",
			quoteDSNValue(host), port, quoteDSNValue(dbname), quoteDSNValue(user),
		),
		tokens: tokens,
		retry:  retry,
	}
	c.dial = c.dialPostgres
	return c
}

// Connect implements driver.Connector.
func (c *Connector) Connect(ctx context.Context) (driver.Conn, error) {
	var conn driver.Conn
	err := c.retry.Do(func(attempt int) error {
		var dialErr error
		conn, dialErr = c.dial(ctx)
		if dialErr != nil {
			logger.Log.Warnf("Database connection attempt %d/%d failed: %v", attempt, c.retry.MaxAttempts, dialErr)
		}
		return dialErr
	})
	if err != nil {
		logger.Log.Errorf("Database connection failed after %d attempts", c.retry.MaxAttempts)
		return nil, err
	}
	return conn, nil
}

// Driver implements driver.Connector.
func (c *Connector) Driver() driver.Driver {
	return &pq.Driver{}
}

func (c *Connector) dialPostgres(ctx context.Context) (driver.Conn, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire database access token: %w", err)
	}

	inner, err := pq.NewConnector(c.dsnBase + " password=" + quoteDSNValue(token))
	if err != nil {
		return nil, fmt.Errorf("failed to build postgres connector: %w", err)
	}
	return inner.Connect(ctx)
}

// quoteDSNValue quotes a value for use in a libpq keyword/value DSN.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
