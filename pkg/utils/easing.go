package utils

import "math"

// Easing functions.
//
// Easing controls an animation's velocity curve so motion reads as natural.
// Every function takes a progress value t in [0, 1] and returns the eased
// value in [0, 1].
//
// Reference: https://easings.net/

// EaseLinear returns t unchanged (constant velocity).
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad starts fast and slows toward the end.
// f(t) = 1 - (1-t)^2
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad starts slow and speeds up toward the end.
// f(t) = t^2
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutCubic starts fast and slows toward the end, more sharply than
// EaseOutQuad. Recommended for "fly to target" motion.
// f(t) = 1 - (1-t)^3
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic is slow at both ends and fast in the middle.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp linearly interpolates between a and b.
// t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
