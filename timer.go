package drift

// RepeatTimer fires every Interval seconds of accumulated frame time. It is
// owned by the frame loop and passed into every Swarm.Update call.
type RepeatTimer struct {
	// Interval is the period in seconds. A non-positive interval fires on
	// every tick.
	Interval float64

	elapsed float64
}

// NewRepeatTimer creates a timer with the given period in seconds.
func NewRepeatTimer(interval float64) *RepeatTimer {
	return &RepeatTimer{Interval: interval}
}

// Tick accumulates dt and reports whether the timer fired. Firing resets
// the accumulated time to zero and drops any overshoot, so a long frame
// fires once and the next period starts fresh.
func (t *RepeatTimer) Tick(dt float64) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.Interval > 0 && t.elapsed < t.Interval {
		return false
	}
	t.elapsed = 0
	return true
}

// Elapsed returns the time accumulated since the timer last fired.
func (t *RepeatTimer) Elapsed() float64 {
	return t.elapsed
}

// Reset clears the accumulated time.
func (t *RepeatTimer) Reset() {
	t.elapsed = 0
}
