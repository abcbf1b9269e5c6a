package retry

import (
	"context"
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration. The payment flow uses a single retry
// with a fixed short delay; the policy lives at the caller so it stays
// explicit and testable.
type Config struct {
	MaxRetries int
	Delay      time.Duration
}

// DefaultConfig returns the verification/settlement retry policy: one retry
// after a one second pause.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 1,
		Delay:      1 * time.Second,
	}
}

// Retrier executes functions with a fixed-delay retry policy
type Retrier struct {
	config Config
	logger *logger.ZapLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	return &Retrier{
		config: config,
		logger: l,
		sleep:  sleepCtx,
	}
}

// NewWithDefaults creates a new retrier with the default policy
func NewWithDefaults(l *logger.ZapLogger) *Retrier {
	return New(DefaultConfig(), l)
}

// Execute runs fn, retrying up to MaxRetries times with the configured delay
// between attempts. The last error is returned when all attempts fail.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("succeeded after retry",
					logger.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		if attempt == r.config.MaxRetries {
			break
		}

		r.logger.Debug("attempt failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", r.config.Delay))

		if err := r.sleep(ctx, r.config.Delay); err != nil {
			return err
		}
	}

	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
