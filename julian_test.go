package subsolar_test

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/thurmanmarka/subsolar"
)

func TestJulianDateKnownValues(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
		want float64
	}{
		{
			name: "J2000 epoch",
			when: time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "1999-01-01 midnight",
			when: time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 2451179.5,
		},
		{
			// Meeus, Astronomical Algorithms, example 7.a (as UTC).
			name: "1987-06-19 noon",
			when: time.Date(1987, time.June, 19, 12, 0, 0, 0, time.UTC),
			want: 2446966.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := subsolar.JulianDate(tt.when)
			if err != nil {
				t.Fatalf("JulianDate() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianDate(%v) = %v, want %v", tt.when, got, tt.want)
			}
		})
	}
}

func TestJulianDateHalfDay(t *testing.T) {
	midnight := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	noon := midnight.Add(12 * time.Hour)

	jdMidnight, err := subsolar.JulianDate(midnight)
	if err != nil {
		t.Fatalf("JulianDate(midnight) error = %v", err)
	}
	jdNoon, err := subsolar.JulianDate(noon)
	if err != nil {
		t.Fatalf("JulianDate(noon) error = %v", err)
	}

	if diff := jdNoon - jdMidnight; math.Abs(diff-0.5) > 1e-9 {
		t.Errorf("noon - midnight = %v days, want exactly 0.5", diff)
	}
}

func TestJulianDateMonotonic(t *testing.T) {
	// Strictly increasing instants, down to fractional-second spacing.
	instants := []time.Time{
		time.Date(1980, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(1981, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.February, 28, 12, 0, 0, 0, time.UTC),
		time.Date(1999, time.March, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 250_000_000, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 1, 0, time.UTC),
		time.Date(2024, time.June, 21, 1, 48, 30, 0, time.UTC),
		time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	prev, err := subsolar.JulianDate(instants[0])
	if err != nil {
		t.Fatalf("JulianDate(%v) error = %v", instants[0], err)
	}
	for _, when := range instants[1:] {
		jd, err := subsolar.JulianDate(when)
		if err != nil {
			t.Fatalf("JulianDate(%v) error = %v", when, err)
		}
		if jd <= prev {
			t.Errorf("JulianDate(%v) = %v, not greater than previous %v", when, jd, prev)
		}
		prev = jd
	}
}

func TestJulianDateAgainstMeeus(t *testing.T) {
	// Cross-check our conversion against the independent Meeus
	// implementation across a spread of dates and times of day.
	instants := []time.Time{
		time.Date(1900, time.May, 5, 5, 5, 5, 0, time.UTC),
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1987, time.June, 19, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2012, time.February, 29, 23, 59, 59, 999_000_000, time.UTC),
		time.Date(2026, time.August, 26, 18, 30, 15, 0, time.UTC),
		time.Date(2099, time.December, 31, 6, 0, 0, 0, time.UTC),
	}

	for _, when := range instants {
		got, err := subsolar.JulianDate(when)
		if err != nil {
			t.Fatalf("JulianDate(%v) error = %v", when, err)
		}
		want := julian.TimeToJD(when)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("JulianDate(%v) = %v, meeus says %v", when, got, want)
		}
	}
}
