package components

import "github.com/gonewx/riftborne/pkg/utils"

// Tween interpolates a single float value over a fixed duration, applying an
// easing curve and pushing every intermediate value through an update
// callback. It is driven by the host tick, never by wall-clock time.
//
// Stop routes through the same finalization as natural completion, so state
// guarded by the completion callback (such as a panel's "fade in flight"
// flag) is cleared no matter how the tween ends.
type Tween struct {
	from, to   float64
	duration   float64
	elapsed    float64
	easing     func(float64) float64
	onUpdate   func(float64)
	onComplete func()
	done       bool
}

// NewTween creates a tween from `from` to `to` over duration seconds.
// easing may be nil for linear. onUpdate receives the current value each
// Update; onComplete runs exactly once, on natural completion or Stop.
func NewTween(from, to, duration float64, easing func(float64) float64, onUpdate func(float64), onComplete func()) *Tween {
	if easing == nil {
		easing = utils.EaseLinear
	}
	return &Tween{
		from:       from,
		to:         to,
		duration:   duration,
		easing:     easing,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
}

// Update advances the tween by deltaTime seconds. A non-positive duration
// completes on the first call.
func (t *Tween) Update(deltaTime float64) {
	if t.done {
		return
	}

	t.elapsed += deltaTime
	progress := 1.0
	if t.duration > 0 {
		progress = utils.Clamp01(t.elapsed / t.duration)
	}

	value := utils.Lerp(t.from, t.to, t.easing(progress))
	if t.onUpdate != nil {
		t.onUpdate(value)
	}

	if progress >= 1.0 {
		t.finish()
	}
}

// Stop ends the tween early. The value stays wherever the last Update left
// it; the completion callback still runs, exactly once.
func (t *Tween) Stop() {
	t.finish()
}

// Done reports whether the tween has completed or been stopped.
func (t *Tween) Done() bool {
	return t.done
}

func (t *Tween) finish() {
	if t.done {
		return
	}
	t.done = true
	if t.onComplete != nil {
		t.onComplete()
	}
}
