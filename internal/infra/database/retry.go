package database

import "time"

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 5 * time.Second
	defaultMultiplier  = 2
)

// RetryPolicy is a bounded retry with exponential backoff. It exists to absorb
// cold-start latency of the managed database service during connection
// establishment; nothing else in the service retries.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  int
	Sleep       func(time.Duration) // nil means time.Sleep; injectable for tests
}

// DefaultRetryPolicy returns the connection retry policy: 3 attempts, 5s base
// delay, doubling between attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: defaultMaxAttempts,
		BaseDelay:   defaultBaseDelay,
		Multiplier:  defaultMultiplier,
	}
}

// Do runs fn up to MaxAttempts times, sleeping between attempts with the
// delay doubling (per Multiplier) each time. The last error is returned when
// all attempts fail.
func (p RetryPolicy) Do(fn func(attempt int) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	delay := p.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if lastErr = fn(attempt); lastErr == nil {
			return nil
		}
		if attempt < p.MaxAttempts {
			sleep(delay)
			delay *= time.Duration(p.Multiplier)
		}
	}
	return lastErr
}
