package core

import "time"

// FixedStep reports when a periodic tick is due. The GUI uses it to re-extract
// contours at a fixed period regardless of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing once per period. The first call
// to ShouldStep always fires.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the tick period. Non-positive periods fall back to 15ms.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = 15 * time.Millisecond
	}
	f.step = period
}

// Period returns the configured tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// SetClock replaces the time source.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// ShouldStep reports whether a tick is due and consumes it. Backlog is capped
// at one pending tick so a stalled frame does not trigger a burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
