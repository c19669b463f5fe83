package skyseq

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/skyseq/internal/moon"
	"github.com/thurmanmarka/skyseq/internal/seq"
	"github.com/thurmanmarka/skyseq/internal/solver"
	"github.com/thurmanmarka/skyseq/internal/sun"
	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// newLunarHorizonSeq searches for moonrise and moonset: zero crossings of
// the Moon's corrected topocentric altitude. The sample window strides two
// hours, so each three-sample window tiles the timeline exactly.
//
// The Julian date base is captured once at construction and only the hour
// offset advances, across emitted events too. Re-deriving a fresh base per
// step was observed to shift results slightly; hour offsets against one
// fixed reference are stable, so the cursor stays an hour count.
func newLunarHorizonSeq(start time.Time, loc Location, cfg config, kinds []LunarKind) seq.Seq[LunarEvent] {
	if len(kinds) == 0 {
		return seq.Empty[LunarEvent]()
	}
	wantRise, wantSet := false, false
	for _, k := range kinds {
		if lunarKindTable[k].rising {
			wantRise = true
		} else {
			wantSet = true
		}
	}

	base := timeutil.JulianFromTime(start)
	limitH := cfg.limitHours()
	dir := cfg.direction()
	dip := timeutil.HorizonDipDeg(cfg.elevation)

	// Corrected altitude at logical hour h: the event is where the upper
	// limb's apparent altitude meets the visible horizon. Refraction is
	// taken at the target apparent altitude of the centre (as the solar
	// thresholds do), not at the sampled altitude: the low-altitude clamp
	// in the refraction formula bends the parabola fit by minutes when it
	// is sampled across a window straddling the horizon.
	f := func(h float64) float64 {
		t := base.AtHour(dir * h).Time()
		radius := moon.AngularRadiusDeg(moon.DistanceKm(t))
		refr := timeutil.ApproxRefraction(-(radius + dip))
		return moon.TopocentricAltitudeDeg(loc.Lat, loc.Lon, t) + refr + radius + dip
	}

	c := 1.0 // logical window centre
	var pending []LunarEvent
	idx := 0

	return seq.Func[LunarEvent](func() (LunarEvent, bool) {
		for {
			if idx < len(pending) {
				ev := pending[idx]
				idx++
				return ev, true
			}
			var zero LunarEvent
			if c-1 > limitH {
				return zero, false
			}

			pending = pending[:0]
			idx = 0

			qi := solver.Interpolate(f(c-1), f(c), f(c+1))
			for _, x := range windowRoots(qi) {
				h := c + x
				if h < 0 || h > limitH {
					continue
				}
				rising := qi.Increasing(x)
				if dir < 0 {
					rising = !rising
				}
				if (rising && !wantRise) || (!rising && !wantSet) {
					continue
				}
				kind := Moonset
				if rising {
					kind = Moonrise
				}
				t := base.AtHour(dir * h).Time()
				pending = append(pending, LunarEvent{
					Kind:     kind,
					Time:     t,
					Distance: moon.DistanceKm(t),
				})
			}

			c += 2
		}
	})
}

const (
	// phaseStepHours is the coarse bracketing step. A week is well under
	// half a synodic month, so each target phase angle is crossed at most
	// once per step.
	phaseStepHours = 7 * 24.0

	// phaseAccuracyHours is the Pegasus convergence tolerance (30 s).
	phaseAccuracyHours = 30.0 / 3600.0

	// phaseRestartHours is how far past a found event the scan resumes
	// (500 s), enough to leave the root's neighborhood.
	phaseRestartHours = 500.0 / 3600.0
)

// newLunarPhaseSeq merges one scanning sequence per requested phase kind.
func newLunarPhaseSeq(start time.Time, cfg config, kinds []LunarKind, errp *error) seq.Seq[LunarEvent] {
	if len(kinds) == 0 {
		return seq.Empty[LunarEvent]()
	}
	s := newPhaseKindSeq(start, cfg, kinds[0], errp)
	for _, k := range kinds[1:] {
		s = seq.Merge(s, newPhaseKindSeq(start, cfg, k, errp), compareLunarEvents, cfg.reverse)
	}
	return s
}

// newPhaseKindSeq locates the instants where the Sun-Moon ecliptic
// longitude difference reaches the kind's phase angle: weekly steps find a
// bracketing sign change, Pegasus converges inside it.
func newPhaseKindSeq(start time.Time, cfg config, kind LunarKind, errp *error) seq.Seq[LunarEvent] {
	base := timeutil.JulianFromTime(start)
	limitH := cfg.limitHours()
	dir := cfg.direction()
	target := timeutil.Deg2Rad(lunarKindTable[kind].phaseAngle)

	// delta decreases through zero at a true crossing (elongation grows
	// with time) and jumps upward at the ±π wrap, so a bracket is accepted
	// only on a downward sign change; the wrap never qualifies. The Sun's
	// longitude is taken one light-time earlier.
	delta := func(sh float64) float64 {
		t := base.AtHour(sh).Time()
		sunLon := sun.EclipticLongitudeRad(t.Add(-sun.LightTime))
		return timeutil.WrapPi(target - (moon.EclipticLongitudeRad(t) - sunLon))
	}

	u := 0.0 // logical hours
	d0 := delta(0)
	done := false

	return seq.Func[LunarEvent](func() (LunarEvent, bool) {
		var zero LunarEvent
		if done {
			return zero, false
		}
		for {
			if u >= limitH {
				done = true
				return zero, false
			}

			u2 := u + phaseStepHours
			d1 := delta(dir * u2)

			accepted := d0*d1 <= 0
			if dir > 0 {
				accepted = accepted && d1 < d0
			} else {
				accepted = accepted && d1 > d0
			}
			if !accepted {
				u, d0 = u2, d1
				continue
			}

			root, err := solver.Pegasus(dir*u, dir*u2, phaseAccuracyHours, delta)
			if err != nil {
				// Only possible if the coarse bracket was not a real
				// crossing; surface it and end the sequence.
				*errp = fmt.Errorf("skyseq: refining %s: %w", kind, err)
				done = true
				return zero, false
			}

			h := dir * root
			u = h + phaseRestartHours
			d0 = delta(dir * u)

			if h > limitH {
				done = true
				return zero, false
			}

			t := base.AtHour(root).Time()
			return LunarEvent{Kind: kind, Time: t, Distance: moon.DistanceKm(t)}, true
		}
	})
}
