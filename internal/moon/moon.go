// Package moon is the lunar side of the ephemeris provider: geocentric
// position and distance series, and the topocentric altitude function the
// horizon-event search samples.
package moon

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// meanRadiusKm is the Moon's mean radius in km.
const meanRadiusKm = 1737.4

// AngularRadiusDeg returns the Moon's apparent angular radius (degrees) at
// the given distance in km.
func AngularRadiusDeg(distanceKm float64) float64 {
	return timeutil.Rad2Deg(math.Asin(meanRadiusKm / distanceKm))
}

// HorizontalParallaxRad returns the Moon's equatorial horizontal parallax in
// radians for the given distance.
func HorizontalParallaxRad(distanceKm float64) float64 {
	const earthRadiusKm = 6378.14
	if distanceKm <= earthRadiusKm {
		// ridiculously close / invalid, just clamp
		return timeutil.Deg2Rad(1.0)
	}
	return math.Asin(earthRadiusKm / distanceKm)
}

// TopocentricAltitudeDeg computes the Moon's topocentric geometric altitude
// (degrees) for an observer at (lat, lon) at time t. Unlike the Sun, the
// Moon is close enough that the parallax shift between the Earth's centre
// and the observer matters (up to about a degree), so the geocentric RA/Dec
// is corrected before the altitude is formed.
//
// Refraction, limb and horizon-dip corrections are left to the caller.
func TopocentricAltitudeDeg(lat, lon float64, t time.Time) float64 {
	eq := GeocentricEquatorialApprox(t)

	raRad := timeutil.Deg2Rad(eq.RA)
	decRad := timeutil.Deg2Rad(eq.Dec)
	latRad := timeutil.Deg2Rad(lat)

	lstRad := timeutil.Deg2Rad(timeutil.LocalSiderealDeg(t, lon))

	// Geocentric hour angle H
	H := lstRad - raRad
	for H > math.Pi {
		H -= 2 * math.Pi
	}
	for H < -math.Pi {
		H += 2 * math.Pi
	}

	// --- Topocentric correction via horizontal parallax ---
	pi := HorizontalParallaxRad(eq.Distance)

	sinPhi := math.Sin(latRad)
	cosPhi := math.Cos(latRad)

	// Meeus approximate factors for an observer at sea level.
	rhoSinPhi := 0.99883 * sinPhi
	rhoCosPhi := 0.99883 * cosPhi

	sinDec := math.Sin(decRad)
	cosDec := math.Cos(decRad)
	sinH := math.Sin(H)
	cosH := math.Cos(H)
	sinPar := math.Sin(pi)

	// Δα (correction to RA)
	deltaAlpha := math.Atan2(
		-rhoCosPhi*sinPar*sinH,
		cosDec-rhoCosPhi*sinPar*cosH,
	)

	// Topocentric RA and Dec
	raTopo := raRad + deltaAlpha
	decTopo := math.Atan2(
		sinDec-rhoSinPhi*sinPar,
		cosDec-rhoCosPhi*sinPar*cosH,
	)

	// New hour angle with topocentric RA
	Ht := lstRad - raTopo
	for Ht > math.Pi {
		Ht -= 2 * math.Pi
	}
	for Ht < -math.Pi {
		Ht += 2 * math.Pi
	}

	sinAlt := sinPhi*math.Sin(decTopo) + cosPhi*math.Cos(decTopo)*math.Cos(Ht)
	return timeutil.Rad2Deg(math.Asin(sinAlt))
}
