// Package julian converts calendar instants to Julian dates, the
// continuous day count the solar formulas run on.
package julian

import (
	"math"
	"time"
)

// J2000 is the Julian date of the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
const J2000 = 2451545.0

// FromTime converts t to a Julian date. The instant is interpreted on the
// UTC timeline regardless of t's location; fractional seconds are kept.
//
// This is the standard Gregorian-aware algorithm (Meeus ch. 7): January and
// February count as months 13 and 14 of the previous year, and B is the
// Gregorian leap-century correction.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()

	dayFraction := (float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600.0) / 24.0

	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y -= 1
		m += 12
	}

	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)

	jd0h := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + b - 1524.5

	return jd0h + dayFraction
}

// DaysSinceJ2000 returns the (fractional) number of days between jd and
// the J2000.0 epoch.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}
