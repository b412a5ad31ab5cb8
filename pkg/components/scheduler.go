// Package components provides the plain building blocks the pre-game screens
// are assembled from: deferred-action scheduling, tweens, class cards and the
// details panel. Nothing in this package touches the window or input directly;
// scenes drive everything through Update and Draw.
package components

// Handle is a cancellation token for one deferred action scheduled with
// Scheduler.After. A handle fires at most once; Cancel is idempotent and is
// a no-op after the action has fired.
type Handle struct {
	remaining float64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the action from firing. Safe to call on a nil handle and
// safe to call more than once.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Pending reports whether the action is still waiting to fire.
func (h *Handle) Pending() bool {
	return h != nil && !h.cancelled && !h.fired
}

// Scheduler runs one-shot deferred actions off the host's per-frame tick.
// It is the single clock for every delayed behavior on a screen (hover
// debounce, post-commit delay), so tests can step time by hand.
//
// Not safe for concurrent use; all scheduling and ticking happens inside
// the single-threaded game loop.
type Scheduler struct {
	handles []*Handle
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once delay seconds of Update time have elapsed.
// A delay of zero or less fires on the next Update call.
func (s *Scheduler) After(delay float64, fn func()) *Handle {
	h := &Handle{remaining: delay, fn: fn}
	s.handles = append(s.handles, h)
	return h
}

// Update advances all pending actions by deltaTime seconds and fires the ones
// that come due. Actions scheduled from inside a firing callback start
// counting from the next Update call.
func (s *Scheduler) Update(deltaTime float64) {
	// Snapshot the length so callbacks that schedule new actions do not see
	// this tick's deltaTime applied to them. A callback may also tear the
	// scheduler down (CancelAll on a scene switch), so the live length is
	// re-checked every iteration.
	n := len(s.handles)
	for i := 0; i < n && i < len(s.handles); i++ {
		h := s.handles[i]
		if h.cancelled || h.fired {
			continue
		}
		h.remaining -= deltaTime
		if h.remaining <= 0 {
			h.fired = true
			h.fn()
		}
	}

	// Compact out finished handles.
	alive := s.handles[:0]
	for _, h := range s.handles {
		if !h.cancelled && !h.fired {
			alive = append(alive, h)
		}
	}
	s.handles = alive
}

// CancelAll cancels every pending action. Used at screen teardown so no
// callback can fire against a destroyed screen.
func (s *Scheduler) CancelAll() {
	for _, h := range s.handles {
		h.Cancel()
	}
	s.handles = s.handles[:0]
}

// PendingCount returns the number of actions still waiting to fire.
func (s *Scheduler) PendingCount() int {
	count := 0
	for _, h := range s.handles {
		if h.Pending() {
			count++
		}
	}
	return count
}
