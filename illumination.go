package skyseq

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyseq/internal/moon"
	"github.com/thurmanmarka/skyseq/internal/sun"
	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// Illumination describes the Moon's illuminated fraction and qualitative
// phase at a given instant. Phase is a global property (independent of
// observer location).
type Illumination struct {
	Time       time.Time // the instant this is evaluated at
	Fraction   float64   // illuminated fraction [0..1], 0=new, 1=full
	Elongation float64   // Sun-Moon ecliptic longitude difference, degrees [0..360)
	Waxing     bool      // true while illumination is increasing
	Name       string    // e.g. "New Moon", "Waxing Crescent", "First Quarter", ...
}

// MoonIllumination computes the Moon's illumination at time t, from the
// same ecliptic longitude difference the phase search roots on.
func MoonIllumination(t time.Time) Illumination {
	utc := t.UTC()

	sunLon := sun.EclipticLongitudeRad(utc.Add(-sun.LightTime))
	moonLon := moon.EclipticLongitudeRad(utc)

	elong := math.Mod(moonLon-sunLon, 2*math.Pi)
	if elong < 0 {
		elong += 2 * math.Pi
	}

	// k = (1 - cos ψ) / 2
	fraction := 0.5 * (1 - math.Cos(elong))
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	waxing := elong < math.Pi

	return Illumination{
		Time:       t,
		Fraction:   fraction,
		Elongation: timeutil.Rad2Deg(elong),
		Waxing:     waxing,
		Name:       classifyMoonPhaseName(fraction, waxing),
	}
}

func classifyMoonPhaseName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default: // f > 0.5 but not near 1
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
