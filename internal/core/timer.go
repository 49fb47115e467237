package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Ticks reports how many whole simulation ticks are due since the last call,
// capping the backlog so a stall never triggers a catch-up burst.
func (f *FixedStep) Ticks() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < 4 {
		f.accumulator -= f.step
		n++
	}
	if n == 4 {
		f.accumulator = 0
	}
	return n
}
