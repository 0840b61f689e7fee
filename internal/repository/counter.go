package repository

import (
	"asset-marketplace/internal/marketerrors"
	"fmt"
	"math"
	"sync/atomic"
)

// Counter is a monotonic process-wide counter. Inc fails at the upper bound
// instead of wrapping; Dec is only used for the active-items count on burn.
type Counter struct {
	v atomic.Uint64
}

// Inc increments the counter and returns the new value. At the upper bound
// the counter saturates and an error is returned.
func (c *Counter) Inc() (uint64, error) {
	for {
		cur := c.v.Load()
		if cur == math.MaxUint64 {
			return cur, fmt.Errorf("counter at %d: %w", cur, marketerrors.ErrCounterOverflow)
		}
		if c.v.CompareAndSwap(cur, cur+1) {
			return cur + 1, nil
		}
	}
}

// Dec decrements the counter, stopping at zero
func (c *Counter) Dec() {
	for {
		cur := c.v.Load()
		if cur == 0 {
			return
		}
		if c.v.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Value returns the current counter value
func (c *Counter) Value() uint64 {
	return c.v.Load()
}
