package database

import (
	"context"
	"fmt"
)

var ErrNoAccessSecret = fmt.Errorf("database access secret is not configured")

// TokenProvider mints a short-lived access token for authenticating a new
// database connection. A fresh token is requested for every physical
// connection and never reused, so a pooled connection cannot outlive the
// credential it was opened with.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider hands out the same configured secret for every
// connection. It backs deployments where the platform provides one long-lived
// secret instead of a token-minting endpoint; the TokenProvider seam stays
// the same either way.
type StaticTokenProvider struct {
	secret string
}

func NewStaticTokenProvider(secret string) *StaticTokenProvider {
	return &StaticTokenProvider{secret: secret}
}

func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.secret == "" {
		return "", ErrNoAccessSecret
	}
	return p.secret, nil
}
