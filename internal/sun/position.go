package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// Equatorial represents equatorial coordinates (right ascension and declination)
// in degrees. RA is in degrees (0–360).
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees
}

const (
	// meanDistanceKm is the mean Earth-Sun distance (1 au) in km.
	meanDistanceKm = 149597870.7

	// meanRadiusKm is the Sun's photospheric radius in km.
	meanRadiusKm = 695700.0

	// LightTime is the light travel time over the mean Earth-Sun distance
	// (8.32 minutes). Phase geometry wants the Sun where it appears, not
	// where it is.
	LightTime = 8*time.Minute + 19*time.Second + 200*time.Millisecond
)

// GeocentricEquatorialApprox returns an approximate geocentric RA/Dec for the Sun
// at the given time t.
//
// This is a standard low/medium-precision solar position model, good to
// arcminute-level accuracy in RA/Dec for many applications.
//
// Based on a simplified NOAA / Meeus-style algorithm:
//
//	g  = mean anomaly of the Sun
//	q  = mean longitude of the Sun
//	L  = ecliptic longitude of the Sun
//	eps = obliquity of the ecliptic
func GeocentricEquatorialApprox(t time.Time) Equatorial {
	d := timeutil.DaysSinceJ2000(t)

	// Mean anomaly of the Sun (deg)
	g := timeutil.Deg2Rad(357.529 + 0.98560028*d)

	// Mean longitude of the Sun (deg)
	q := timeutil.Deg2Rad(280.459 + 0.98564736*d)

	// Ecliptic longitude with equation of center
	L := q +
		timeutil.Deg2Rad(1.915)*math.Sin(g) +
		timeutil.Deg2Rad(0.020)*math.Sin(2*g)

	// Obliquity of the ecliptic (deg)
	eps := timeutil.Deg2Rad(23.439 - 0.00000036*d)

	// Convert to equatorial
	x := math.Cos(L)
	y := math.Cos(eps) * math.Sin(L)
	z := math.Sin(eps) * math.Sin(L)

	ra := math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(z)

	return Equatorial{
		RA:  timeutil.Rad2Deg(ra),
		Dec: timeutil.Rad2Deg(dec),
	}
}

// EclipticLongitudeRad returns the Sun's geocentric ecliptic longitude in
// radians at time t, from the same mean-anomaly series as the equatorial
// model. The lunar phase search only needs the Sun-Moon longitude
// difference, so the shared series keeps the two bodies consistent.
func EclipticLongitudeRad(t time.Time) float64 {
	d := timeutil.DaysSinceJ2000(t)

	g := timeutil.Deg2Rad(357.529 + 0.98560028*d)
	q := timeutil.Deg2Rad(280.459 + 0.98564736*d)

	L := q +
		timeutil.Deg2Rad(1.915)*math.Sin(g) +
		timeutil.Deg2Rad(0.020)*math.Sin(2*g)

	return math.Mod(L, 2*math.Pi)
}

// DistanceKm returns the approximate Earth-Sun distance in km at time t,
// from the eccentricity correction to the mean distance.
func DistanceKm(t time.Time) float64 {
	d := timeutil.DaysSinceJ2000(t)
	g := timeutil.Deg2Rad(357.529 + 0.98560028*d)

	// Distance in au, then km.
	au := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)
	return au * meanDistanceKm
}

// AngularRadiusDeg returns the Sun's apparent angular radius (degrees) at the
// given distance in km.
func AngularRadiusDeg(distanceKm float64) float64 {
	return timeutil.Rad2Deg(math.Asin(meanRadiusKm / distanceKm))
}
