// Package sun is the solar side of the ephemeris provider: geocentric
// position series and the altitude function the event searches sample.
package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// TrueAltitudeDeg computes the Sun's geometric (unrefracted) altitude in
// degrees at geographic location (lat, lon) at time t, using the solar
// RA/Dec model and a simple sidereal time approximation.
//
// Refraction, limb and horizon-dip corrections are applied by the caller,
// since they depend on which event is being searched for.
func TrueAltitudeDeg(lat, lon float64, t time.Time) float64 {
	// Geocentric equatorial coordinates of the Sun
	eq := GeocentricEquatorialApprox(t)

	raRad := timeutil.Deg2Rad(eq.RA)
	decRad := timeutil.Deg2Rad(eq.Dec)
	latRad := timeutil.Deg2Rad(lat)

	// Local sidereal time
	lstRad := timeutil.Deg2Rad(timeutil.LocalSiderealDeg(t, lon))

	// Hour angle H = LST - RA, normalized
	H := lstRad - raRad
	for H > math.Pi {
		H -= 2 * math.Pi
	}
	for H < -math.Pi {
		H += 2 * math.Pi
	}

	// Geometric altitude
	sinAlt := math.Sin(latRad)*math.Sin(decRad) + math.Cos(latRad)*math.Cos(decRad)*math.Cos(H)
	return timeutil.Rad2Deg(math.Asin(sinAlt))
}
