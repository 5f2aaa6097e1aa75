package skyraid

import (
	"math"
	"time"
)

// FrameClock turns wall-clock frame times into simulation deltas.
// Anomalous deltas are replaced by the nominal frame time so a stalled
// terminal never produces one giant step.
type FrameClock struct {
	last    time.Time
	nominal float64
	max     float64
}

// NewFrameClock creates a clock with the given nominal and maximum deltas in
// milliseconds.
func NewFrameClock(nominalMs, maxMs float64) *FrameClock {
	return &FrameClock{nominal: nominalMs, max: maxMs}
}

// Delta returns milliseconds since the previous call, clamped.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}
	dt := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return clampDelta(dt, c.nominal, c.max)
}

// Restart forgets the previous frame time.
func (c *FrameClock) Restart() {
	c.last = time.Time{}
}

// clampDelta substitutes nominal for non-positive, non-finite or oversized
// deltas.
func clampDelta(dt, nominal, maxDt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 || dt > maxDt {
		return nominal
	}
	return dt
}
