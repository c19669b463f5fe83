// Package timeutil holds the time representations and small math helpers
// shared by the ephemeris models and the event-search engine: Julian dates,
// Julian centuries, sidereal time, angle normalization, and atmospheric
// corrections.
package timeutil

import (
	"math"
	"time"
)

// -----------------------------
// Julian dates
// -----------------------------

// JulianDate is an instant on the continuous Julian day count. It wraps the
// wall-clock instant so conversions back to time.Time are exact; the float
// day count is derived on demand.
type JulianDate struct {
	t time.Time
}

// JulianFromTime converts a wall-clock instant to a JulianDate.
func JulianFromTime(t time.Time) JulianDate {
	return JulianDate{t: t.UTC()}
}

// Time returns the wall-clock instant of this JulianDate (UTC).
func (j JulianDate) Time() time.Time {
	return j.t
}

// AtHour returns the instant h hours after this one. h may be negative or
// fractional; sub-second precision is kept.
func (j JulianDate) AtHour(h float64) JulianDate {
	ns := math.Round(h * float64(time.Hour))
	return JulianDate{t: j.t.Add(time.Duration(ns))}
}

// Value returns the Julian day number as a float64 day count.
func (j JulianDate) Value() float64 {
	return JulianDay(j.t)
}

// JulianCentury returns centuries since J2000.0 for this instant.
func (j JulianDate) JulianCentury() float64 {
	return JulianCenturies(j.t)
}

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of (UTC) days since the J2000.0 epoch.
//
// This is an approximation suitable for low/medium-precision astronomy.
// For high-precision work you might want a true TT-based Julian day, but
// this is fine for our current purposes.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianDay returns the Julian day number of t (UTC).
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	jd := JulianDay(t)
	return (jd - 2451545.0) / 36525.0
}

// LocalSiderealDeg returns the local mean sidereal time at longitude lonDeg
// (east positive) as an angle in degrees [0,360).
func LocalSiderealDeg(t time.Time, lonDeg float64) float64 {
	d := DaysSinceJ2000(t)
	gmst := 280.46061837 + 360.98564736629*d
	return Normalize360(gmst + lonDeg)
}

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Frac returns the fractional part of x, always in [0,1).
func Frac(x float64) float64 {
	return x - math.Floor(x)
}

// WrapPi wraps an angle in radians into (-pi, pi].
func WrapPi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// -----------------------------
// Atmospheric and horizon corrections.
// -----------------------------

// ApproxRefraction returns an approximation of atmospheric refraction (in
// degrees) at a given apparent altitude altDeg (degrees) under standard
// conditions.
//
// Positive return means "add this to the geometric altitude to get apparent
// altitude". This uses a Saemundsson-style formula and is reasonably accurate
// for altitudes near the horizon and above.
//
// Ref: often quoted as:
//
//	R (arcmin) ≈ 1.02 / tan( (alt + 10.3 / (alt + 5.11)) in degrees )
func ApproxRefraction(altDeg float64) float64 {
	// Below -1° we just bail; the formula goes weird and refraction isn't
	// meaningfully defined for "deep below the horizon" in this context.
	if altDeg < -1.0 {
		return 0
	}

	// To avoid division by zero or absurd numbers near -5 to -2 degrees,
	// clamp altDeg a bit when very low.
	alt := altDeg
	if alt < -0.5 {
		alt = -0.5
	}

	// Compute the argument in radians for tan().
	// Note: (alt + 10.3/(alt+5.11)) is in degrees.
	argDeg := alt + 10.3/(alt+5.11)
	argRad := Deg2Rad(argDeg)

	t := math.Tan(argRad)
	if t == 0 {
		return 0
	}

	// Result is in arcminutes; convert to degrees.
	R_arcmin := 1.02 / t
	return R_arcmin / 60.0
}

// HorizonDipDeg returns the geometric dip of the visible horizon (degrees)
// for an observer elevationM meters above sea level. Zero for sea level or
// invalid input.
func HorizonDipDeg(elevationM float64) float64 {
	if elevationM <= 0 {
		return 0
	}
	const earthRadiusM = 6371000.0
	return Rad2Deg(math.Sqrt(2 * elevationM / earthRadiusM))
}
