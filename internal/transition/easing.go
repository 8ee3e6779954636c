package transition

import "strings"

// EasingFunc maps linear progress in [0, 1] to eased progress in [0, 1].
// Every easing maps 0 to 0 and 1 to 1 exactly.
type EasingFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseIn accelerates from rest (t²).
func EaseIn(t float64) float64 { return t * t }

// EaseOut decelerates to rest (t(2−t)).
func EaseOut(t float64) float64 { return t * (2 - t) }

// EaseInOut blends EaseIn and EaseOut at the midpoint; EaseInOut(0.5) = 0.5.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Easing resolves an easing by name. Unrecognized names fall back to
// ease-in-out. Names are case-insensitive and ignore dashes, so "easeInOut"
// and "ease-in-out" both resolve.
func Easing(name string) EasingFunc {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "linear":
		return Linear
	case "easein":
		return EaseIn
	case "easeout":
		return EaseOut
	default:
		return EaseInOut
	}
}
