// Package clock provides the system time adapter.
package clock

import (
	"context"
	"time"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func NewSystemClock() *SystemClock { return &SystemClock{} }

func (c *SystemClock) Now(_ context.Context) (time.Time, error) {
	return time.Now().UTC(), nil
}
