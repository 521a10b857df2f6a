package sim

import "time"

// Ticker schedules generations against the wall clock. It is polled from the
// event loop and fires at most once per poll.
type Ticker struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
}

// NewTicker returns a ticker armed for rate generations per second. A nil clock means time.Now.
func NewTicker(rate int, now func() time.Time) *Ticker {
	if now == nil {
		now = time.Now
	}
	t := &Ticker{now: now}
	t.SetRate(rate)
	return t
}

// SetRate changes the rate and re-arms the ticker, so the next tick is one new
// interval from now. Rates below 1 are treated as 1.
func (t *Ticker) SetRate(rate int) {
	rate = max(rate, 1)
	t.interval = time.Second / time.Duration(rate)
	t.next = t.now().Add(t.interval)
}

// Interval returns the time between ticks at the current rate
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Due reports whether a tick is owed and, if so, arms the next one. A ticker
// that fell more than one interval behind skips ahead instead of bursting.
func (t *Ticker) Due() bool {
	now := t.now()
	if now.Before(t.next) {
		return false
	}

	t.next = t.next.Add(t.interval)
	if !t.next.After(now) {
		t.next = now.Add(t.interval)
	}
	return true
}
