// Package timing measures frame deltas and frames per second for the render loop.
package timing

import "time"

// Clock returns the current time. It must be monotonic; time.Now carries a
// monotonic reading and qualifies.
type Clock func() time.Time

// FrameTimer tracks the time between frames and a periodically refreshed FPS estimate.
type FrameTimer struct {
	clock  Clock
	window time.Duration

	lastTick   time.Time
	lastWindow time.Time
	frames     int
	fps        float64
}

// New creates a timer that refreshes its FPS estimate every window.
func New(window time.Duration) *FrameTimer {
	return NewWithClock(window, time.Now)
}

// NewWithClock creates a timer reading time from clock.
func NewWithClock(window time.Duration, clock Clock) *FrameTimer {
	ft := &FrameTimer{
		clock:  clock,
		window: window,
	}
	ft.Reset()
	return ft
}

// Reset restarts timing from now and clears the FPS estimate.
func (ft *FrameTimer) Reset() {
	now := ft.clock()
	ft.lastTick = now
	ft.lastWindow = now
	ft.frames = 0
	ft.fps = 0
}

// Tick returns the seconds elapsed since the previous tick (or Reset) and
// refreshes the FPS estimate once the averaging window has passed.
// A clock that steps backwards yields zero rather than a negative delta.
func (ft *FrameTimer) Tick() float64 {
	now := ft.clock()

	elapsed := now.Sub(ft.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	ft.lastTick = now

	ft.frames++
	if span := now.Sub(ft.lastWindow); span >= ft.window && span > 0 {
		ft.fps = float64(ft.frames) / span.Seconds()
		ft.frames = 0
		ft.lastWindow = now
	}

	return elapsed.Seconds()
}

// FPS returns the last computed frames-per-second estimate.
func (ft *FrameTimer) FPS() float64 {
	return ft.fps
}

// Window returns the FPS averaging window.
func (ft *FrameTimer) Window() time.Duration {
	return ft.window
}
