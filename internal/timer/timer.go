// Package timer implements the single process-wide rest/cooldown countdown.
package timer

import (
	"sync"
	"time"
)

// MinSeconds is the smallest duration the countdown accepts.
const MinSeconds = 5

// State is a snapshot of the countdown for display.
type State struct {
	TotalSeconds     int  `json:"total_seconds"`
	RemainingSeconds int  `json:"remaining_seconds"`
	Running          bool `json:"running"`
}

// Countdown decrements once per second until zero, then stops and fires the
// on-done hook. At most one countdown runs at a time: Start while running
// is a no-op, so a new rest interval never silently cancels an active one.
type Countdown struct {
	mu        sync.Mutex
	total     int
	remaining int
	stop      chan struct{}
	interval  time.Duration
	onDone    func()
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithTickInterval overrides the one-second tick. Tests use this to run the
// countdown at full speed.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) { c.interval = d }
}

// WithOnDone sets the completion hook (the audible-alert seam). It is
// called outside the countdown's lock.
func WithOnDone(fn func()) Option {
	return func(c *Countdown) { c.onDone = fn }
}

// New creates a stopped countdown preset to seconds.
func New(seconds int, opts ...Option) *Countdown {
	c := &Countdown{interval: time.Second}
	for _, opt := range opts {
		opt(c)
	}
	c.SetDuration(seconds)
	return c
}

// SetDuration presets the countdown and resets the remaining time. The
// value is floored to a whole second and clamped to MinSeconds. Setting
// the duration does not stop a running countdown.
func (c *Countdown) SetDuration(seconds int) {
	if seconds < MinSeconds {
		seconds = MinSeconds
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total = seconds
	c.remaining = seconds
}

// Start begins ticking. No-op if already running.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	if c.remaining <= 0 {
		c.remaining = c.total
	}
	stop := make(chan struct{})
	c.stop = stop
	go c.run(stop)
}

// Pause halts ticking, keeping the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Reset halts ticking and restores the remaining time to the preset total.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.remaining = c.total
}

// StartFor is the one-call form the session and run-plan state machines
// use when a stage or run session is marked done: preset and start. The
// no-op-while-running rule still applies, and the check-preset-start
// sequence holds the lock throughout so concurrent callers cannot clobber
// a countdown another caller just armed.
func (c *Countdown) StartFor(seconds int) {
	if seconds < MinSeconds {
		seconds = MinSeconds
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.total = seconds
	c.remaining = seconds
	stop := make(chan struct{})
	c.stop = stop
	go c.run(stop)
}

// Snapshot returns the current display state.
func (c *Countdown) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		TotalSeconds:     c.total,
		RemainingSeconds: c.remaining,
		Running:          c.stop != nil,
	}
}

func (c *Countdown) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stop != stop {
				// Paused or reset between tick and lock.
				c.mu.Unlock()
				return
			}
			c.remaining--
			finished := c.remaining <= 0
			if finished {
				c.remaining = 0
				c.stopLocked()
			}
			done := c.onDone
			c.mu.Unlock()

			if finished {
				if done != nil {
					done()
				}
				return
			}
		}
	}
}
