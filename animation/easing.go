package animation

import "math"

// Easing maps animation progress in [0, 1] to eased progress in [0, 1],
// with 0 mapping to 0 and 1 mapping to 1.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func QuadraticIn(t float64) float64  { return t * t }
func QuadraticOut(t float64) float64 { return t * (2 - t) }
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func CubicIn(t float64) float64 { return t * t * t }
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func SineInOut(t float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t) - 1)
}
