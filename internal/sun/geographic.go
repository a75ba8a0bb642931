package sun

import (
	"github.com/thurmanmarka/subsolar/internal/angle"
	"github.com/thurmanmarka/subsolar/internal/julian"
)

// GMST returns Greenwich Mean Sidereal Time in degrees [0, 360) for the
// given Julian date. 360.98564736629 deg/day is the sidereal rotation rate
// of the Earth.
func GMST(jd float64) float64 {
	d := julian.DaysSinceJ2000(jd)
	return angle.Normalize(280.46061837 + 360.98564736629*d)
}

// Geographic maps equatorial coordinates at a Julian date to the
// geographic point directly beneath the body.
//
// Latitude is the declination unchanged. Longitude comes from the
// Greenwich Hour Angle: GHA = GMST - RA measures how far west of
// Greenwich the body's meridian lies, so the sub-body longitude is -GHA
// wrapped into (-180, 180].
func Geographic(eq Equatorial, jd float64) (lat, lon float64) {
	gha := angle.Normalize(GMST(jd) - eq.RA)
	return eq.Dec, angle.NormalizeLon(-gha)
}
