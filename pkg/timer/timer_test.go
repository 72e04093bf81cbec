package timer

import (
	"math"
	"testing"
	"time"
)

func TestTimerTickIsAdditive(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
	}{
		{"Two ticks", []float64{1.5, 2.5}},
		{"Many small ticks", []float64{0.016, 0.016, 0.016, 0.016}},
		{"Zero delta", []float64{0, 3.0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := NewTimer(10, false)
			total := 0.0
			for _, d := range tt.deltas {
				split.Tick(d)
				total += d
			}
			whole := NewTimer(10, false)
			whole.Tick(total)

			if math.Abs(split.Elapsed()-whole.Elapsed()) > 1e-12 {
				t.Errorf("split ticks elapsed %v, single tick elapsed %v", split.Elapsed(), whole.Elapsed())
			}
		})
	}
}

func TestTimerFinishedBoundary(t *testing.T) {
	tm := NewTimer(5, false)

	tm.Tick(4.999)
	if tm.Finished() {
		t.Fatal("timer finished before reaching its duration")
	}
	tm.Tick(0.001)
	if !tm.Finished() {
		t.Fatal("timer not finished at elapsed == duration")
	}
	tm.Tick(1)
	if !tm.Finished() {
		t.Fatal("timer un-finished after extra tick")
	}
}

func TestTimerPercent(t *testing.T) {
	tm := NewTimer(10, false)
	tm.Tick(2.5)

	if got := tm.Percent(); got != 0.25 {
		t.Errorf("Percent() = %v, want 0.25", got)
	}
	if got := tm.PercentLeft(); got != 0.75 {
		t.Errorf("PercentLeft() = %v, want 0.75", got)
	}

	// Значение не зажимается: после завершения оно превышает единицу.
	tm.Tick(10)
	if got := tm.Percent(); got != 1.25 {
		t.Errorf("Percent() after overshoot = %v, want 1.25", got)
	}
}

func TestTimerZeroDuration(t *testing.T) {
	tm := NewTimer(0, false)
	if !tm.Finished() {
		t.Error("zero-duration timer must be finished immediately")
	}
	if got := tm.Percent(); got != 1.0 {
		t.Errorf("zero-duration Percent() = %v, want 1.0", got)
	}
}

func TestTimerRemaining(t *testing.T) {
	tm := NewTimer(8, false)
	tm.Tick(3)
	if got := tm.Remaining(); got != 5 {
		t.Errorf("Remaining() = %v, want 5", got)
	}
	tm.Tick(10)
	if got := tm.Remaining(); got != 0 {
		t.Errorf("Remaining() after overshoot = %v, want 0", got)
	}
}

func TestTimerAutoReset(t *testing.T) {
	tm := NewTimer(2, true)
	tm.Tick(5)
	if got := tm.Elapsed(); got != 1 {
		t.Errorf("auto-reset elapsed = %v, want 1", got)
	}
	if tm.Finished() {
		t.Error("auto-reset timer must not stay finished")
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(4, false)
	tm.Tick(4)
	tm.Reset()
	if tm.Finished() {
		t.Error("reset timer must not be finished")
	}
	if got := tm.Elapsed(); got != 0 {
		t.Errorf("elapsed after reset = %v, want 0", got)
	}
}

func TestClockTick(t *testing.T) {
	c := NewClock()
	time.Sleep(time.Millisecond)
	first := c.Tick()
	if first <= 0 {
		t.Errorf("first delta = %v, want > 0", first)
	}
	second := c.Tick()
	if second < 0 {
		t.Errorf("second delta = %v, want >= 0", second)
	}
	if c.Since() < first {
		t.Errorf("Since() = %v, want >= first delta %v", c.Since(), first)
	}
}
