package utils

import "time"

// DeltaTimer hands out the wall-clock time elapsed between consecutive
// Next calls. The first call returns 0.
type DeltaTimer struct {
	last time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// acquire the timestamp exactly once so we don't accumulate error
	now := time.Now()

	defer func() { d.last = now }()
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}
