package utils

import (
	"math"
)

// Deg converts radians to degrees.
func Deg(rads float64) float64 {
	return rads * 180 / math.Pi
}

// Rad converts degrees to radians.
func Rad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// SinCos returns the sine and cosine of an angle given in degrees.
func SinCos(degrees float64) (float64, float64) {
	return math.Sincos(Rad(degrees))
}

// AcosDeg returns the arc cosine of ratio, in degrees. Ratios which drift
// just outside of [-1, 1] because of rounding would produce NaN; those return
// zero instead.
func AcosDeg(ratio float64) float64 {
	theta := math.Acos(ratio)
	if math.IsNaN(theta) {
		return 0
	}

	return Deg(theta)
}
