// Package retry provides a fixed-interval polling primitive for waiting on
// conditions that become true asymptotically, such as a host system
// finishing its startup.
package retry

import (
	"context"
	"time"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// Config bounds a polling loop
type Config struct {
	// Interval is the pause between attempts
	Interval time.Duration
	// MaxAttempts caps the number of condition checks
	MaxAttempts int
}

// Validate ensures the bounds are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Interval <= 0 {
		vb.InvalidField("Interval", "must be positive")
	}
	errors.ValidateMin("MaxAttempts", c.MaxAttempts, 1, vb)

	return vb.Build()
}

// WaitUntil polls cond every interval until it returns true, the attempt
// budget runs out, or the context is canceled. The condition is checked
// once immediately before any sleep. Exhausting the budget returns
// errors.Unavailable; a canceled context returns the context error
// unwrapped so callers can distinguish shutdown from absence.
func WaitUntil(ctx context.Context, cfg *Config, cond func(ctx context.Context) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if cond(ctx) {
			return nil
		}

		// The last attempt does not pay for a sleep it cannot use
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return errors.Unavailablef("condition not met after %d attempts", cfg.MaxAttempts)
}
