package moon

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// EquatorialDistance bundles the Moon's geocentric equatorial position with
// its distance from the Earth's centre.
type EquatorialDistance struct {
	RA       float64 // degrees
	Dec      float64 // degrees
	Distance float64 // km
}

// arcsPerRad converts radians to arcseconds.
const arcsPerRad = 3600.0 * 180.0 / math.Pi

// fundamentalArgs returns the Moon's fundamental arguments at Julian
// century T, all in radians:
//
//	L0 = mean longitude
//	l  = mean anomaly of the Moon
//	ls = mean anomaly of the Sun
//	D  = mean elongation from the Sun
//	F  = argument of latitude
func fundamentalArgs(T float64) (L0, l, ls, D, F float64) {
	pi2 := 2 * math.Pi
	L0 = pi2 * timeutil.Frac(0.606433+1336.855225*T)
	l = pi2 * timeutil.Frac(0.374897+1325.552410*T)
	ls = pi2 * timeutil.Frac(0.993133+99.997361*T)
	D = pi2 * timeutil.Frac(0.827361+1236.853086*T)
	F = pi2 * timeutil.Frac(0.259086+1342.227825*T)
	return
}

// longitudePerturbation returns the periodic correction dL to the Moon's
// mean longitude, in arcseconds. Truncated Brown-theory series with the
// dominant terms; good to a few arcminutes, which keeps derived event times
// within about a minute.
func longitudePerturbation(l, ls, D, F float64) float64 {
	D2 := 2 * D
	l2 := 2 * l
	F2 := 2 * F

	return 22640.0*math.Sin(l) -
		4586.0*math.Sin(l-D2) +
		2370.0*math.Sin(D2) +
		769.0*math.Sin(l2) -
		668.0*math.Sin(ls) -
		412.0*math.Sin(F2) -
		212.0*math.Sin(l2-D2) -
		206.0*math.Sin(l+ls-D2) +
		192.0*math.Sin(l+D2) -
		165.0*math.Sin(ls-D2) -
		125.0*math.Sin(D) -
		110.0*math.Sin(l+ls) +
		148.0*math.Sin(l-ls) -
		55.0*math.Sin(F2-D2)
}

// EclipticRad returns the Moon's geocentric ecliptic longitude and latitude
// in radians at time t.
func EclipticRad(t time.Time) (lon, lat float64) {
	T := timeutil.JulianCenturies(t)
	L0, l, ls, D, F := fundamentalArgs(T)

	dL := longitudePerturbation(l, ls, D, F)

	D2 := 2 * D
	F2 := 2 * F
	l2 := 2 * l

	// Latitude series: perturbed argument of latitude S plus the
	// remaining flat terms N.
	S := F + (dL+412.0*math.Sin(F2)+541.0*math.Sin(ls))/arcsPerRad
	h := F - D2
	N := -526.0*math.Sin(h) +
		44.0*math.Sin(l+h) -
		31.0*math.Sin(-l+h) -
		23.0*math.Sin(ls+h) +
		11.0*math.Sin(-ls+h) -
		25.0*math.Sin(-l2+F) +
		21.0*math.Sin(-l+F)

	lon = 2 * math.Pi * timeutil.Frac(L0/(2*math.Pi)+dL/1296.0e3)
	lat = (18520.0*math.Sin(S) + N) / arcsPerRad
	return lon, lat
}

// EclipticLongitudeRad returns just the Moon's ecliptic longitude in
// radians; this is what the phase search differentiates against the Sun.
func EclipticLongitudeRad(t time.Time) float64 {
	lon, _ := EclipticRad(t)
	return lon
}

// DistanceKm returns the Earth-Moon distance in km at time t, from a
// truncated cosine series over the same fundamental arguments.
func DistanceKm(t time.Time) float64 {
	T := timeutil.JulianCenturies(t)
	_, l, _, D, _ := fundamentalArgs(T)
	D2 := 2 * D

	return 385000.5584 -
		20905.3550*math.Cos(l) -
		3699.1109*math.Cos(D2-l) -
		2955.9676*math.Cos(D2) -
		569.9251*math.Cos(2*l)
}

// GeocentricEquatorialApprox returns the Moon's geocentric RA/Dec (degrees)
// and distance (km) at time t, converting the ecliptic series through the
// mean obliquity.
func GeocentricEquatorialApprox(t time.Time) EquatorialDistance {
	lon, lat := EclipticRad(t)

	d := timeutil.DaysSinceJ2000(t)
	eps := timeutil.Deg2Rad(23.439291 - 0.0000137*d)

	x := math.Cos(lat) * math.Cos(lon)
	y := math.Cos(lat) * math.Sin(lon)
	z := math.Sin(lat)

	yEq := y*math.Cos(eps) - z*math.Sin(eps)
	zEq := y*math.Sin(eps) + z*math.Cos(eps)

	ra := math.Atan2(yEq, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(zEq)

	return EquatorialDistance{
		RA:       timeutil.Rad2Deg(ra),
		Dec:      timeutil.Rad2Deg(dec),
		Distance: DistanceKm(t),
	}
}
