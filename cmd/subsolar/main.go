package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"go.uber.org/zap"

	"github.com/thurmanmarka/subsolar"
)

func main() {
	fs := flag.NewFlagSet("subsolar", flag.ExitOnError)

	timeStr := fs.String("time", "", "UTC instant, RFC3339 or 'YYYY-MM-DDTHH:MM' (defaults to now)")
	lat := fs.Float64("lat", 91, "observer latitude in degrees; with -lon, also report solar altitude")
	lon := fs.Float64("lon", 0, "observer longitude in degrees (east positive)")
	jsonOut := fs.Bool("json", false, "output result as JSON")
	debug := fs.Bool("debug", false, "verbose diagnostics")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `subsolar – where is the Sun directly overhead?

Usage:
  subsolar [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := newLogger(*debug)
	defer logger.Sync()
	sugar := logger.Sugar()

	t, err := parseTime(*timeStr)
	if err != nil {
		sugar.Fatalf("invalid -time %q: %v", *timeStr, err)
	}

	jd, err := subsolar.JulianDate(t)
	if err != nil {
		sugar.Fatalf("julian date: %v", err)
	}

	// Independent Julian date from the Meeus library, as a sanity check on
	// our own conversion.
	sugar.Debugw("julian date cross-check",
		"jd", jd,
		"meeus", julian.TimeToJD(t),
	)

	eq, err := subsolar.SunEquatorial(jd)
	if err != nil {
		sugar.Fatalf("solar position: %v", err)
	}

	point, err := subsolar.EquatorialToGeographic(eq, jd)
	if err != nil {
		sugar.Fatalf("sub-solar point: %v", err)
	}

	out := output{
		Time:        t.UTC().Format(time.RFC3339Nano),
		JulianDate:  jd,
		GMST:        subsolar.GMST(jd),
		Declination: eq.Dec,
		RA:          eq.RA,
		Latitude:    point.Lat,
		Longitude:   point.Lon,
	}

	// -lat defaults out of range so "observer given" is detectable.
	if *lat >= -90 && *lat <= 90 {
		obs := subsolar.Coordinates{Lat: *lat, Lon: *lon}
		alt, err := subsolar.SunAltitude(obs, t)
		if err != nil {
			sugar.Fatalf("solar altitude: %v", err)
		}
		out.Altitude = &alt
	}

	if *jsonOut {
		printJSON(sugar, out)
	} else {
		printHuman(out)
	}
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}

	// Try a couple of common formats, all interpreted as UTC.
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var parseErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}
	return time.Time{}, parseErr
}

type output struct {
	Time        string   `json:"time"`
	JulianDate  float64  `json:"julian_date"`
	GMST        float64  `json:"gmst_deg"`
	Declination float64  `json:"declination_deg"`
	RA          float64  `json:"right_ascension_deg"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Altitude    *float64 `json:"altitude_deg,omitempty"`
}

func printHuman(out output) {
	fmt.Printf("Sub-solar point at %s\n", out.Time)
	fmt.Printf("  Julian date : %.6f\n", out.JulianDate)
	fmt.Printf("  GMST        : %.4f°\n", out.GMST)
	fmt.Printf("  Sun RA/Dec  : %.4f° / %.4f°\n", out.RA, out.Declination)
	fmt.Printf("  Latitude    : %.4f°\n", out.Latitude)
	fmt.Printf("  Longitude   : %.4f°\n", out.Longitude)
	if out.Altitude != nil {
		fmt.Printf("  Altitude    : %.4f° (observer)\n", *out.Altitude)
	}
}

func printJSON(sugar *zap.SugaredLogger, out output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		sugar.Fatalf("failed to encode JSON: %v", err)
	}
}
