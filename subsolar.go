// Package subsolar locates the sub-solar point: the geographic latitude
// and longitude directly beneath the Sun at a given UTC instant.
//
// The pipeline is a straight line: calendar instant -> Julian date ->
// solar equatorial coordinates (declination, right ascension) -> geographic
// coordinates via Greenwich sidereal time. Each stage is exposed on its
// own so callers doing lighting or day/night terminator work can tap in
// wherever they need.
//
// Everything here is a pure function over float64 degrees. The solar model
// is the standard low-precision ephemeris, accurate to a fraction of a
// degree for a few centuries around J2000.0; no validity range is
// enforced.
package subsolar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/subsolar/internal/angle"
	"github.com/thurmanmarka/subsolar/internal/julian"
	"github.com/thurmanmarka/subsolar/internal/sun"
)

// Equatorial holds the Sun's geocentric equatorial coordinates in degrees.
type Equatorial struct {
	Dec float64 // declination, degrees, in [-90, 90]
	RA  float64 // right ascension, degrees, in [0, 360)
}

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Lat float64 // degrees, north positive, in [-90, 90]
	Lon float64 // degrees, east positive, in (-180, 180]
}

// ErrInvalidArgument is returned when a required argument is missing.
// Match it with errors.Is; the concrete error is an *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which operation rejected an input and why.
// Reason is a short machine-friendly string like "missing date"; it is
// meant for developer diagnostics, not end users.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("subsolar: %s: %s", e.Op, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// JulianDate converts t to a Julian date: a continuous day count with the
// fractional part carrying the time of day. The instant is interpreted on
// the UTC timeline regardless of t's location; fractional seconds are
// preserved.
//
// The zero time.Time is rejected with ErrInvalidArgument.
func JulianDate(t time.Time) (float64, error) {
	if t.IsZero() {
		return 0, &ArgumentError{Op: "JulianDate", Reason: "missing date"}
	}
	return julian.FromTime(t), nil
}

// NormalizeAngle wraps an angle in degrees into [0, 360) using floor-based
// wrapping, so negative inputs come out in range (e.g. -30 -> 330).
// NaN propagates unchanged.
func NormalizeAngle(deg float64) float64 {
	return angle.Normalize(deg)
}

// SunEquatorial returns the Sun's declination and right ascension (both
// in degrees) at the given Julian date, using a low-precision solar
// ephemeris. A NaN Julian date is rejected with ErrInvalidArgument.
func SunEquatorial(jd float64) (Equatorial, error) {
	if math.IsNaN(jd) {
		return Equatorial{}, &ArgumentError{Op: "SunEquatorial", Reason: "missing Julian date"}
	}
	eq := sun.EquatorialAt(jd)
	return Equatorial{Dec: eq.Dec, RA: eq.RA}, nil
}

// EquatorialToGeographic maps equatorial coordinates at a Julian date to
// the geographic point directly beneath the body. Latitude is the
// declination unchanged; longitude comes from the Greenwich Hour Angle
// (GMST minus right ascension), wrapped into (-180, 180].
func EquatorialToGeographic(eq Equatorial, jd float64) (Coordinates, error) {
	if math.IsNaN(eq.Dec) || math.IsNaN(eq.RA) {
		return Coordinates{}, &ArgumentError{Op: "EquatorialToGeographic", Reason: "missing celestial location"}
	}
	if math.IsNaN(jd) {
		return Coordinates{}, &ArgumentError{Op: "EquatorialToGeographic", Reason: "missing Julian date"}
	}
	lat, lon := sun.Geographic(sun.Equatorial{RA: eq.RA, Dec: eq.Dec}, jd)
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// GMST returns Greenwich Mean Sidereal Time in degrees [0, 360) for the
// given Julian date. Exposed because terminator and lighting callers
// usually need it alongside the sub-solar point. NaN propagates.
func GMST(jd float64) float64 {
	return sun.GMST(jd)
}

// SubsolarPoint returns the geographic point directly beneath the Sun at
// time t: the composition of JulianDate, SunEquatorial and
// EquatorialToGeographic with no extra logic.
//
// The zero time.Time is rejected with ErrInvalidArgument.
func SubsolarPoint(t time.Time) (Coordinates, error) {
	if t.IsZero() {
		return Coordinates{}, &ArgumentError{Op: "SubsolarPoint", Reason: "missing date"}
	}
	jd := julian.FromTime(t)
	lat, lon := sun.Geographic(sun.EquatorialAt(jd), jd)
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// SunAltitude returns the Sun's geometric altitude in degrees for an
// observer at obs at time t: 90° minus the great-circle distance from the
// observer to the sub-solar point. Positive means the Sun is up. No
// atmospheric refraction is applied.
func SunAltitude(obs Coordinates, t time.Time) (float64, error) {
	if t.IsZero() {
		return 0, &ArgumentError{Op: "SunAltitude", Reason: "missing date"}
	}
	ss, err := SubsolarPoint(t)
	if err != nil {
		return 0, err
	}

	// Angular separation between observer and sub-solar point:
	// cos c = sin φ1 sin φ2 + cos φ1 cos φ2 cos Δλ
	cosC := angle.SinD(obs.Lat)*angle.SinD(ss.Lat) +
		angle.CosD(obs.Lat)*angle.CosD(ss.Lat)*angle.CosD(obs.Lon-ss.Lon)

	// Clamp to handle numerical noise
	if cosC > 1 {
		cosC = 1
	} else if cosC < -1 {
		cosC = -1
	}

	return 90.0 - angle.Rad2Deg(math.Acos(cosC)), nil
}
