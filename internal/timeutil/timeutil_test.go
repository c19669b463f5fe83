package timeutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDay_J2000(t *testing.T) {
	// J2000.0 epoch is JD 2451545.0 by definition.
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2451545.0, JulianDay(epoch), 1e-9)
	assert.InDelta(t, 0.0, JulianCenturies(epoch), 1e-12)
}

func TestJulianDay_KnownValue(t *testing.T) {
	// 1987-04-10 00:00 UT is JD 2446895.5 (Meeus, example 7.a).
	d := time.Date(1987, time.April, 10, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2446895.5, JulianDay(d), 1e-9)
}

func TestJulianDate_AtHourRoundTrip(t *testing.T) {
	start := time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC)
	jd := JulianFromTime(start)

	assert.Equal(t, start, jd.Time())
	assert.Equal(t, start.Add(5*time.Hour+30*time.Minute), jd.AtHour(5.5).Time())
	assert.Equal(t, start.Add(-90*time.Minute), jd.AtHour(-1.5).Time())

	// Stepping is measured on the day count too.
	assert.InDelta(t, jd.Value()+1.0, jd.AtHour(24).Value(), 1e-9)
}

func TestNormalize360(t *testing.T) {
	assert.InDelta(t, 10.0, Normalize360(370), 1e-12)
	assert.InDelta(t, 350.0, Normalize360(-10), 1e-12)
	assert.InDelta(t, 0.0, Normalize360(720), 1e-12)
}

func TestWrapPi(t *testing.T) {
	assert.InDelta(t, 0.0, WrapPi(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapPi(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi, WrapPi(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapPi(-math.Pi), 1e-12)
}

func TestApproxRefraction(t *testing.T) {
	// Around 0.48° at the horizon under the Bennett-style formula,
	// shrinking with altitude, negligible high up.
	atHorizon := ApproxRefraction(0)
	assert.Greater(t, atHorizon, 0.4)
	assert.Less(t, atHorizon, 0.6)

	at45 := ApproxRefraction(45)
	assert.Less(t, at45, 0.02)
	assert.Greater(t, at45, 0.0)

	// Deep below the horizon the formula is not meaningful: zero.
	assert.Zero(t, ApproxRefraction(-5))
}

func TestHorizonDipDeg(t *testing.T) {
	assert.Zero(t, HorizonDipDeg(0))
	assert.Zero(t, HorizonDipDeg(-10))

	// ~100 m of elevation dips the horizon by roughly a third of a degree.
	dip := HorizonDipDeg(100)
	assert.InDelta(t, 0.32, dip, 0.05)
}
