// Package clock abstracts time so course timestamps can be pinned in tests.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/coursebot/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time truncated to the second, the precision
// course records are stored with
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
