// Package angle has degree-based helpers shared by the ephemeris and
// sidereal code. Everything is in degrees unless a name says otherwise.
package angle

import "math"

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// Normalize wraps an angle in degrees into [0, 360).
//
// It uses the floor-based form 360*(x/360 - floor(x/360)) rather than
// math.Mod, so negative inputs wrap the right way instead of truncating
// toward zero. NaN stays NaN.
func Normalize(d float64) float64 {
	turns := d / 360.0
	return 360.0 * (turns - math.Floor(turns))
}

// NormalizeLon wraps an angle in degrees into the signed longitude
// range (-180, 180]. This is a wrap, not a clamp: 190 becomes -170.
func NormalizeLon(d float64) float64 {
	lon := Normalize(d)
	if lon > 180.0 {
		lon -= 360.0
	}
	return lon
}
