package generation

import (
	"context"
	"time"
)

// SetSleepForTesting replaces the client's backoff sleep so tests can record
// the schedule without waiting on real timers.
func SetSleepForTesting(c *ResilientClient, sleep func(ctx context.Context, d time.Duration) error) {
	c.sleep = sleep
}
