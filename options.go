package skyseq

import (
	"fmt"
	"math"
	"time"
)

// DefaultLimit is how far a sequence searches from its start instant when no
// limit option is given.
const DefaultLimit = 365 * 24 * time.Hour

// Option configures a sequence at construction time.
type Option func(*config)

type config struct {
	limit     time.Duration
	unbounded bool
	reverse   bool
	elevation float64 // meters above sea level
}

func defaultConfig() config {
	return config{limit: DefaultLimit}
}

// WithLimit bounds how far from the start instant the sequence will search
// before ending.
func WithLimit(d time.Duration) Option {
	return func(c *config) {
		c.limit = d
		c.unbounded = false
	}
}

// Unbounded removes the search limit: the sequence never ends on its own.
// This is safe — nothing is precomputed, so only the elements actually
// pulled cost anything.
func Unbounded() Option {
	return func(c *config) { c.unbounded = true }
}

// Reversed makes the sequence search backward from the start instant,
// producing events in descending time order.
func Reversed() Option {
	return func(c *config) { c.reverse = true }
}

// WithElevation sets the observer's height above sea level in meters,
// which lowers the visible horizon for rise/set style events.
func WithElevation(meters float64) Option {
	return func(c *config) { c.elevation = meters }
}

func (c config) validate() error {
	if c.elevation < 0 {
		return fmt.Errorf("%w: %v", ErrElevationRange, c.elevation)
	}
	if !c.unbounded && c.limit < 0 {
		return fmt.Errorf("skyseq: negative search limit %v", c.limit)
	}
	return nil
}

// limitHours returns the search window length in hours; +Inf when unbounded.
func (c config) limitHours() float64 {
	if c.unbounded {
		return math.Inf(1)
	}
	return c.limit.Hours()
}

// direction returns +1 for forward search, -1 for reverse.
func (c config) direction() float64 {
	if c.reverse {
		return -1
	}
	return 1
}
