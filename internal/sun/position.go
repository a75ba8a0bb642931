package sun

import (
	"math"

	"github.com/thurmanmarka/subsolar/internal/angle"
	"github.com/thurmanmarka/subsolar/internal/julian"
)

// Equatorial represents the Sun's geocentric equatorial coordinates.
// RA is right ascension in degrees [0, 360); Dec is declination in degrees.
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

// EquatorialAt returns the Sun's approximate geocentric RA/Dec for the
// given Julian date.
//
// This is the standard low-precision solar position model (Astronomical
// Almanac style), good to roughly arcminute accuracy for a few centuries
// around J2000.0:
//
//	L   = mean longitude of the Sun
//	g   = mean anomaly of the Sun
//	λ   = ecliptic longitude (L plus equation of center)
//	eps = obliquity of the ecliptic
func EquatorialAt(jd float64) Equatorial {
	d := julian.DaysSinceJ2000(jd)

	// Mean longitude and mean anomaly of the Sun (deg)
	meanLon := angle.Normalize(280.460 + 0.9856474*d)
	g := angle.Deg2Rad(angle.Normalize(357.528 + 0.9856003*d))

	// Ecliptic longitude with equation of center (deg).
	// Deliberately NOT normalized here: the quadrant test below must see
	// the raw value, or the RA correction misfires when the equation of
	// center pushes λ past the 0/360 seam.
	eclLon := meanLon + 1.915*math.Sin(g) + 0.02*math.Sin(2*g)
	eclRad := angle.Deg2Rad(eclLon)

	// Obliquity of the ecliptic (rad)
	eps := angle.Deg2Rad(23.439 - 0.0000004*d)

	dec := angle.Rad2Deg(math.Asin(math.Sin(eps) * math.Sin(eclRad)))

	// atan lands in (-90, 90); RA must track the same quadrant as the
	// ecliptic longitude, so shift by half a turn for λ in [90, 270).
	ra := angle.Rad2Deg(math.Atan(math.Cos(eps) * math.Tan(eclRad)))
	if eclLon >= 90.0 && eclLon < 270.0 {
		ra += 180.0
	}

	return Equatorial{
		RA:  angle.Normalize(ra),
		Dec: dec,
	}
}
