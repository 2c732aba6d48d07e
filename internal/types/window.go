package types

import (
	"math"
	"time"
)

// TimeWindow is the observation span starting at Start.
type TimeWindow struct {
	Start time.Time
	Hours float64
}

// End returns the instant the window closes.
func (w TimeWindow) End() time.Time {
	return w.Start.Add(w.Duration())
}

// Duration returns the window span.
func (w TimeWindow) Duration() time.Duration {
	return time.Duration(w.Hours * float64(time.Hour))
}

// Timestamps returns n evenly spaced instants start + k*(span/n) for k in [0, n).
func (w TimeWindow) Timestamps(n int) []time.Time {
	if n <= 0 {
		return nil
	}
	step := w.Duration() / time.Duration(n)
	out := make([]time.Time, n)
	for k := range out {
		out[k] = w.Start.Add(time.Duration(k) * step)
	}
	return out
}

// SampleCount returns the number of samples for the window. A fixed count is used
// unless scale is set, in which case it grows with the span (10 per hour) and is
// clamped to [2, max].
func (w TimeWindow) SampleCount(max int, scale bool) int {
	if !scale {
		return max
	}
	n := int(math.Round(w.Hours * 10))
	if n < 2 {
		n = 2
	}
	if n > max {
		n = max
	}
	return n
}
