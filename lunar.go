package skyseq

import (
	"fmt"
	"iter"
	"time"

	"github.com/thurmanmarka/skyseq/internal/seq"
)

// LunarKind identifies a lunar event: a horizon crossing or a primary phase.
type LunarKind int

const (
	// Moonrise and Moonset are crossings of the visible horizon by the
	// Moon's upper limb, corrected for parallax and refraction.
	Moonrise LunarKind = iota
	Moonset

	// The four primary phases, at Sun-Moon ecliptic longitude differences
	// of 0°, 90°, 180° and 270°.
	NewMoon
	FirstQuarter
	FullMoon
	LastQuarter

	numLunarKinds
)

type lunarKindInfo struct {
	name       string
	horizon    bool
	rising     bool    // horizon kinds: upward crossing
	phaseAngle float64 // phase kinds: target longitude difference, degrees
}

var lunarKindTable = [numLunarKinds]lunarKindInfo{
	Moonrise: {name: "moonrise", horizon: true, rising: true},
	Moonset:  {name: "moonset", horizon: true},

	NewMoon:      {name: "new moon", phaseAngle: 0},
	FirstQuarter: {name: "first quarter", phaseAngle: 90},
	FullMoon:     {name: "full moon", phaseAngle: 180},
	LastQuarter:  {name: "last quarter", phaseAngle: 270},
}

func (k LunarKind) valid() bool {
	return k >= 0 && k < numLunarKinds
}

func (k LunarKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("LunarKind(%d)", int(k))
	}
	return lunarKindTable[k].name
}

// DefaultLunarKinds is the kind set used when none is given: all horizon
// and all phase events.
var DefaultLunarKinds = []LunarKind{
	Moonrise, Moonset, NewMoon, FirstQuarter, FullMoon, LastQuarter,
}

// LunarEvent is one timestamped lunar event. Distance is the Earth-Moon
// distance in km at the event instant.
type LunarEvent struct {
	Kind     LunarKind
	Time     time.Time
	Distance float64
}

func compareLunarEvents(a, b LunarEvent) int {
	return a.Time.Compare(b.Time)
}

// LunarSequence is a lazy, time-ordered stream of lunar events: the merge
// of a horizon-crossing search and a phase search.
type LunarSequence struct {
	s    seq.Seq[LunarEvent]
	errp *error
}

// NewLunarSequence builds a sequence of the requested lunar events starting
// at start (searching backward instead when Reversed is given).
//
// A nil kinds slice means DefaultLunarKinds; an empty non-nil slice yields
// an immediately empty sequence.
func NewLunarSequence(start time.Time, loc Location, kinds []LunarKind, opts ...Option) (*LunarSequence, error) {
	if err := loc.validate(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if kinds == nil {
		kinds = DefaultLunarKinds
	}

	var horizonKinds, phaseKinds []LunarKind
	for _, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("skyseq: unknown lunar kind %d", int(k))
		}
		if lunarKindTable[k].horizon {
			horizonKinds = append(horizonKinds, k)
		} else {
			phaseKinds = append(phaseKinds, k)
		}
	}

	errp := new(error)
	merged := seq.Merge(
		newLunarPhaseSeq(start, cfg, phaseKinds, errp),
		newLunarHorizonSeq(start, loc, cfg, horizonKinds),
		compareLunarEvents,
		cfg.reverse,
	)
	return &LunarSequence{s: merged, errp: errp}, nil
}

// Next returns the next event, or ok=false when the window is exhausted
// (or, exceptionally, when a refinement step failed — see Err).
func (q *LunarSequence) Next() (LunarEvent, bool) {
	return q.s.Next()
}

// Err reports a phase-refinement failure, if one ended the sequence early.
// A non-nil value indicates a violated bracketing invariant — a defect, not
// an expected outcome.
func (q *LunarSequence) Err() error {
	return *q.errp
}

// Collect pulls up to n events (all remaining ones if n < 0, which requires
// a bounded sequence).
func (q *LunarSequence) Collect(n int) []LunarEvent {
	return seq.Collect(q.s, n)
}

// All exposes the remaining events as a single-use range-over-func iterator.
func (q *LunarSequence) All() iter.Seq[LunarEvent] {
	return seq.All(q.s)
}
