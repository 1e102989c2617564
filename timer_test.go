package drift

import "testing"

func TestRepeatTimerFiresOnSecondTick(t *testing.T) {
	timer := NewRepeatTimer(2.0)
	if timer.Tick(1.0) {
		t.Fatal("timer fired after 1s of a 2s interval")
	}
	assertNear(t, "elapsed after first tick", timer.Elapsed(), 1.0)
	if !timer.Tick(1.0) {
		t.Fatal("timer did not fire after 2s")
	}
	assertNear(t, "elapsed after firing", timer.Elapsed(), 0)
	if timer.Tick(1.0) {
		t.Error("timer fired again one tick after firing")
	}
}

func TestRepeatTimerDropsOvershoot(t *testing.T) {
	timer := NewRepeatTimer(1.0)
	if !timer.Tick(1.25) {
		t.Fatal("timer did not fire")
	}
	assertNear(t, "elapsed", timer.Elapsed(), 0)
	if timer.Tick(0.75) {
		t.Error("overshoot carried into the next period")
	}
	if !timer.Tick(0.25) {
		t.Error("timer did not fire after a full period")
	}
}

func TestRepeatTimerLongFrameFiresOnce(t *testing.T) {
	timer := NewRepeatTimer(1.0)
	if !timer.Tick(3.5) {
		t.Fatal("timer did not fire")
	}
	assertNear(t, "elapsed", timer.Elapsed(), 0)
	if timer.Tick(0.5) {
		t.Error("timer should not fire with 0.5s accumulated")
	}
}

func TestRepeatTimerPeriodAtFrameRate(t *testing.T) {
	timer := NewRepeatTimer(0.5)
	var fired []int
	for frame := 1; frame <= 90; frame++ {
		if timer.Tick(0.2) {
			fired = append(fired, frame)
		}
	}
	// Each firing restarts the count, so every third 0.2s frame fires.
	for i, f := range fired {
		if f != 3*(i+1) {
			t.Fatalf("firings at frames %v, want every third frame", fired)
		}
	}
	if len(fired) != 30 {
		t.Errorf("fired %d times, want 30", len(fired))
	}
}

func TestRepeatTimerNonPositiveInterval(t *testing.T) {
	for _, interval := range []float64{0, -1} {
		timer := NewRepeatTimer(interval)
		for i := 0; i < 3; i++ {
			if !timer.Tick(0.1) {
				t.Errorf("interval %v: tick %d did not fire", interval, i)
			}
		}
		assertNear(t, "elapsed", timer.Elapsed(), 0)
	}
}

func TestRepeatTimerIgnoresNegativeAndZeroDt(t *testing.T) {
	timer := NewRepeatTimer(1.0)
	timer.Tick(0.5)
	timer.Tick(-3)
	timer.Tick(0)
	assertNear(t, "elapsed", timer.Elapsed(), 0.5)
}

func TestRepeatTimerReset(t *testing.T) {
	timer := NewRepeatTimer(1.0)
	timer.Tick(0.9)
	timer.Reset()
	assertNear(t, "elapsed", timer.Elapsed(), 0)
	if timer.Tick(0.5) {
		t.Error("timer fired after reset with only 0.5s accumulated")
	}
}
