package skyseq

import (
	"fmt"
	"iter"
	"time"

	"github.com/thurmanmarka/skyseq/internal/seq"
)

// SolarKind identifies a solar event: a crossing of a particular altitude
// threshold in a particular direction, or a culmination.
type SolarKind int

const (
	// Sunrise is the upper limb of the Sun appearing above the horizon.
	Sunrise SolarKind = iota

	// SunriseEnd is the lower limb clearing the horizon (full disc visible).
	SunriseEnd

	// SunsetBegin is the lower limb touching the horizon.
	SunsetBegin

	// Sunset is the upper limb disappearing below the horizon.
	Sunset

	// CivilDawn and CivilDusk are the -6° crossings of the Sun's centre.
	CivilDawn
	CivilDusk

	// NauticalDawn and NauticalDusk are the -12° crossings.
	NauticalDawn
	NauticalDusk

	// AstronomicalDawn and AstronomicalDusk are the -18° crossings.
	AstronomicalDawn
	AstronomicalDusk

	// Golden hour spans centre altitudes -4° to +6°; each boundary crossing
	// is its own event, morning (rising) and evening (setting).
	GoldenHourDawn    // rising through -4°
	GoldenHourDawnEnd // rising through +6°
	GoldenHourDusk    // setting through +6°
	GoldenHourDuskEnd // setting through -4°

	// Blue hour spans centre altitudes -6° to -4°.
	BlueHourDawn    // rising through -6°
	BlueHourDawnEnd // rising through -4°
	BlueHourDusk    // setting through -4°
	BlueHourDuskEnd // setting through -6°

	// Noon is the local maximum of the Sun's altitude, Nadir the minimum.
	Noon
	Nadir

	numSolarKinds
)

// solarKindInfo is the static metadata of a kind. It lives in a lookup
// table rather than on the variants themselves; the kind set is closed.
type solarKindInfo struct {
	name        string
	angle       float64 // target altitude of the Sun's centre, degrees
	rising      bool    // upward crossing wanted (dawn-like)
	limb        float64 // +1 upper limb, -1 lower limb, 0 centre
	topocentric bool    // horizon-referenced: refraction, limb and dip apply
	culmination bool
	maximum     bool // for culminations: maximum (noon) vs minimum (nadir)
}

var solarKindTable = [numSolarKinds]solarKindInfo{
	Sunrise:     {name: "sunrise", rising: true, limb: +1, topocentric: true},
	SunriseEnd:  {name: "sunrise end", rising: true, limb: -1, topocentric: true},
	SunsetBegin: {name: "sunset begin", limb: -1, topocentric: true},
	Sunset:      {name: "sunset", limb: +1, topocentric: true},

	CivilDawn:        {name: "civil dawn", angle: -6, rising: true},
	CivilDusk:        {name: "civil dusk", angle: -6},
	NauticalDawn:     {name: "nautical dawn", angle: -12, rising: true},
	NauticalDusk:     {name: "nautical dusk", angle: -12},
	AstronomicalDawn: {name: "astronomical dawn", angle: -18, rising: true},
	AstronomicalDusk: {name: "astronomical dusk", angle: -18},

	GoldenHourDawn:    {name: "golden hour dawn", angle: -4, rising: true},
	GoldenHourDawnEnd: {name: "golden hour dawn end", angle: 6, rising: true},
	GoldenHourDusk:    {name: "golden hour dusk", angle: 6},
	GoldenHourDuskEnd: {name: "golden hour dusk end", angle: -4},

	BlueHourDawn:    {name: "blue hour dawn", angle: -6, rising: true},
	BlueHourDawnEnd: {name: "blue hour dawn end", angle: -4, rising: true},
	BlueHourDusk:    {name: "blue hour dusk", angle: -4},
	BlueHourDuskEnd: {name: "blue hour dusk end", angle: -6},

	Noon:  {name: "noon", culmination: true, maximum: true},
	Nadir: {name: "nadir", culmination: true},
}

func (k SolarKind) valid() bool {
	return k >= 0 && k < numSolarKinds
}

func (k SolarKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("SolarKind(%d)", int(k))
	}
	return solarKindTable[k].name
}

// DefaultSolarKinds is the kind set used when none is given: the "simple"
// events of a day.
var DefaultSolarKinds = []SolarKind{Sunrise, Sunset, Noon, Nadir}

// AllSolarKinds lists every solar kind.
func AllSolarKinds() []SolarKind {
	kinds := make([]SolarKind, numSolarKinds)
	for i := range kinds {
		kinds[i] = SolarKind(i)
	}
	return kinds
}

// SolarEvent is one timestamped solar event. Events are ordered by Time
// only; kinds at equal instants are not tie-broken.
type SolarEvent struct {
	Kind SolarKind
	Time time.Time
}

func compareSolarEvents(a, b SolarEvent) int {
	return a.Time.Compare(b.Time)
}

// SolarSequence is a lazy, time-ordered stream of solar events. It is the
// merge of an altitude-crossing search and a culmination search, each
// advancing only as elements are pulled.
type SolarSequence struct {
	s seq.Seq[SolarEvent]
}

// NewSolarSequence builds a sequence of the requested solar events starting
// at start (searching backward instead when Reversed is given).
//
// A nil kinds slice means DefaultSolarKinds; an empty non-nil slice is a
// valid request for nothing and yields an immediately empty sequence.
func NewSolarSequence(start time.Time, loc Location, kinds []SolarKind, opts ...Option) (*SolarSequence, error) {
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
		kinds = DefaultSolarKinds
	}

	var angleKinds, culmKinds []SolarKind
	for _, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("skyseq: unknown solar kind %d", int(k))
		}
		if solarKindTable[k].culmination {
			culmKinds = append(culmKinds, k)
		} else {
			angleKinds = append(angleKinds, k)
		}
	}

	merged := seq.Merge(
		newSolarAngleSeq(start, loc, cfg, angleKinds),
		newCulminationSeq(start, loc, cfg, culmKinds),
		compareSolarEvents,
		cfg.reverse,
	)
	return &SolarSequence{s: merged}, nil
}

// Next returns the next event, or ok=false when the search window is
// exhausted.
func (q *SolarSequence) Next() (SolarEvent, bool) {
	return q.s.Next()
}

// Collect pulls up to n events (all remaining ones if n < 0, which requires
// a bounded sequence).
func (q *SolarSequence) Collect(n int) []SolarEvent {
	return seq.Collect(q.s, n)
}

// All exposes the remaining events as a single-use range-over-func
// iterator. Breaking out of the range simply stops pulling.
func (q *SolarSequence) All() iter.Seq[SolarEvent] {
	return seq.All(q.s)
}
