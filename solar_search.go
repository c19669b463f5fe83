package skyseq

import (
	"math"
	"sort"
	"time"

	"github.com/thurmanmarka/skyseq/internal/seq"
	"github.com/thurmanmarka/skyseq/internal/solver"
	"github.com/thurmanmarka/skyseq/internal/sun"
	"github.com/thurmanmarka/skyseq/internal/timeutil"
)

// angleChunkHours is how much of the timeline the angle search examines per
// inner pass. Within a chunk all requested kinds are scanned and the chunk's
// events are emitted in order before the next chunk is touched, which keeps
// per-pull work bounded while the sequence as a whole stays lazy.
const angleChunkHours = 24.0

// solarThresholdDeg returns the true altitude the Sun's centre must have for
// kind k at time t. Geocentric kinds are the bare angle; horizon-referenced
// kinds shift it by the apparent angular radius of the chosen limb, by
// refraction at the target altitude, and by the horizon dip of an elevated
// observer.
func solarThresholdDeg(k SolarKind, elevation float64, t time.Time) float64 {
	info := solarKindTable[k]
	if !info.topocentric {
		return info.angle
	}
	radius := sun.AngularRadiusDeg(sun.DistanceKm(t))
	refr := timeutil.ApproxRefraction(info.angle)
	dip := timeutil.HorizonDipDeg(elevation)
	return info.angle - info.limb*radius - refr - dip
}

// newSolarAngleSeq searches for altitude-crossing events of the requested
// kinds. Hours are tracked on a "logical" axis h >= 0 measured from the
// start instant; the actual signed hour offset is dir*h, so the same scan
// drives both directions.
func newSolarAngleSeq(start time.Time, loc Location, cfg config, kinds []SolarKind) seq.Seq[SolarEvent] {
	if len(kinds) == 0 {
		return seq.Empty[SolarEvent]()
	}

	base := timeutil.JulianFromTime(start)
	limitH := cfg.limitHours()
	dir := cfg.direction()

	// Altitude minus threshold for kind k at logical hour h.
	f := func(k SolarKind, h float64) float64 {
		t := base.AtHour(dir * h).Time()
		return sun.TrueAltitudeDeg(loc.Lat, loc.Lon, t) - solarThresholdDeg(k, cfg.elevation, t)
	}

	chunk := 0.0
	var pending []SolarEvent
	idx := 0

	return seq.Func[SolarEvent](func() (SolarEvent, bool) {
		for {
			if idx < len(pending) {
				ev := pending[idx]
				idx++
				return ev, true
			}
			if chunk >= limitH {
				var zero SolarEvent
				return zero, false
			}

			pending = pending[:0]
			idx = 0

			for _, k := range kinds {
				rising := solarKindTable[k].rising
				// Three-sample windows centred at odd offsets tile the
				// chunk exactly: [c-1, c+1] for c = chunk+1, +3, ... +23.
				for c := chunk + 1; c < chunk+angleChunkHours; c += 2 {
					qi := solver.Interpolate(f(k, c-1), f(k, c), f(k, c+1))
					for _, x := range windowRoots(qi) {
						h := c + x
						if h < 0 || h > limitH {
							continue
						}
						up := qi.Increasing(x)
						if dir < 0 {
							up = !up
						}
						if up != rising {
							continue
						}
						pending = append(pending, SolarEvent{
							Kind: k,
							Time: base.AtHour(dir * h).Time(),
						})
					}
				}
			}

			sort.Slice(pending, func(i, j int) bool {
				if cfg.reverse {
					return pending[i].Time.After(pending[j].Time)
				}
				return pending[i].Time.Before(pending[j].Time)
			})
			chunk += angleChunkHours
		}
	})
}

// windowRoots lists the interpolation roots inside the sample window,
// excluding the exact left boundary (it belongs to the previous window).
func windowRoots(qi solver.Interpolation) []float64 {
	switch qi.NumRoots {
	case 1:
		if qi.Root1 <= -1.0 {
			return nil
		}
		return []float64{qi.Root1}
	case 2:
		if qi.Root1 <= -1.0 {
			return []float64{qi.Root2}
		}
		return []float64{qi.Root1, qi.Root2}
	default:
		return nil
	}
}

// culminationFrameHours and culminationDepth drive the extremum refinement:
// the quadratic vertex estimate is sharpened within ±1 h by 14 bisections,
// well under a second of residual error.
const (
	culminationFrameHours = 1.0
	culminationDepth      = 14
)

// newCulminationSeq searches for noon (altitude maximum) and nadir
// (minimum) events by hour-stepping the raw altitude function and watching
// for an in-window parabola vertex.
func newCulminationSeq(start time.Time, loc Location, cfg config, kinds []SolarKind) seq.Seq[SolarEvent] {
	wantNoon, wantNadir := false, false
	for _, k := range kinds {
		if solarKindTable[k].maximum {
			wantNoon = true
		} else {
			wantNadir = true
		}
	}
	if !wantNoon && !wantNadir {
		return seq.Empty[SolarEvent]()
	}

	base := timeutil.JulianFromTime(start)
	limitH := cfg.limitHours()
	dir := cfg.direction()

	// Altitude at a signed hour offset; the refiners work on this axis
	// directly since an extremum is an extremum in either direction.
	altAt := func(sh float64) float64 {
		return sun.TrueAltitudeDeg(loc.Lat, loc.Lon, base.AtHour(sh).Time())
	}

	// The first window is centred on the start instant itself, covering
	// logical hours [-1, +1]: a culmination minutes into the window would
	// otherwise sit just outside the first fit's vertex gate and be walked
	// past. Pre-start vertices are discarded by the h >= 0 check below.
	c := 0.0

	return seq.Func[SolarEvent](func() (SolarEvent, bool) {
		var zero SolarEvent
		for {
			if c-1 > limitH {
				return zero, false
			}

			qi := solver.Interpolate(altAt(dir*(c-1)), altAt(dir*c), altAt(dir*(c+1)))

			if math.Abs(qi.Xe) <= 1 && ((qi.Maximum && wantNoon) || (!qi.Maximum && wantNadir)) {
				vertex := dir * (c + qi.Xe)
				var refined float64
				if qi.Maximum {
					refined = solver.ReadjustMax(vertex, culminationFrameHours, culminationDepth, altAt)
				} else {
					refined = solver.ReadjustMin(vertex, culminationFrameHours, culminationDepth, altAt)
				}

				h := dir * refined // back to logical hours
				if h > limitH {
					// The nearest remaining culmination is outside the
					// window; later ones only get farther.
					return zero, false
				}
				if h >= 0 {
					kind := Nadir
					if qi.Maximum {
						kind = Noon
					}
					// Resume past the found event; the next culmination is
					// roughly half a day away.
					c = h + 2
					return SolarEvent{Kind: kind, Time: base.AtHour(refined).Time()}, true
				}
				// Extremum slightly before the start instant: step over it.
			}

			c++
		}
	})
}
