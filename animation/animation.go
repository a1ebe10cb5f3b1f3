// Package animation drives time-based interpolation of widget attributes.
// The host delivers one Params per frame carrying the elapsed duration;
// Animators advance their value along an easing curve toward a target.
package animation

import "time"

// Duration is the time type used for animation lengths and frame deltas.
type Duration = time.Duration

// Params carries the time elapsed since the previous animation frame.
type Params struct {
	duration Duration
}

// NewParams creates frame parameters for the given elapsed duration.
func NewParams(d Duration) Params {
	return Params{duration: d}
}

// Duration returns the elapsed time this frame represents.
func (p *Params) Duration() Duration {
	return p.duration
}

// Animator interpolates a float64 toward a target over a fixed duration.
// Creating a new Animator for the same value re-anchors the curve at the
// value's current reading, so an in-flight transition is superseded without
// a discontinuity.
type Animator struct {
	value    *float64
	from     float64
	to       float64
	duration Duration
	easing   Easing
	elapsed  Duration
}

// NewAnimator starts a transition of *value toward target. A non-positive
// duration snaps the value to the target immediately.
func NewAnimator(value *float64, target float64, duration Duration, easing Easing) *Animator {
	a := &Animator{
		value:    value,
		from:     *value,
		to:       target,
		duration: duration,
		easing:   easing,
	}
	if a.duration <= 0 {
		*a.value = a.to
		a.elapsed = a.duration
	}
	return a
}

// To returns the target value. Callers compare against it to make target
// updates idempotent: re-targeting the current target is a no-op.
func (a *Animator) To() float64 {
	return a.to
}

// Done reports whether the transition has run its full duration.
func (a *Animator) Done() bool {
	return a.elapsed >= a.duration
}

// OnAnimation advances the transition by the frame's elapsed time. Once the
// total elapsed time reaches the duration the value equals the target exactly
// and further frames are no-ops.
func (a *Animator) OnAnimation(p *Params) {
	if a.Done() {
		return
	}
	a.elapsed += p.Duration()
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		*a.value = a.to
		return
	}
	t := float64(a.elapsed) / float64(a.duration)
	*a.value = a.from + (a.to-a.from)*a.easing(t)
}
