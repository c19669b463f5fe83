// Package skyseq computes positions and transition events of the Sun and
// Moon — rises, sets, twilight boundaries, culminations and primary lunar
// phases — for an observer location, using low-cost approximate ephemeris
// formulas (accurate to about a minute; phase events to about five).
//
// Results are exposed as ordered, lazily produced, potentially infinite
// event sequences: callers pull "the next event" as often as they like,
// forward or backward in time, and only the consumed prefix is ever
// computed. Independent sequences never share mutable state, so they can
// be iterated concurrently by independent callers without coordination.
//
// The search engine samples a scalar function of time (solar or lunar
// altitude, or a phase-angle difference) on an hourly grid, isolates roots
// and extrema by three-point quadratic interpolation, and sharpens them
// with Pegasus or bisection refinement.
package skyseq

import (
	"errors"
	"fmt"
)

var (
	// ErrLatitudeRange is returned when a latitude is outside [-90, 90].
	ErrLatitudeRange = errors.New("skyseq: latitude out of range [-90, 90]")

	// ErrLongitudeRange is returned when a longitude is outside [-180, 180].
	ErrLongitudeRange = errors.New("skyseq: longitude out of range [-180, 180]")

	// ErrElevationRange is returned when an observer elevation is negative.
	ErrElevationRange = errors.New("skyseq: elevation must not be negative")

	// ErrNoRiseNoSet is returned by convenience helpers when the body does
	// not rise or set within the examined window. Sequences themselves
	// simply end; polar night is an expected outcome, not an error.
	ErrNoRiseNoSet = errors.New("skyseq: body does not rise or set in this window")
)

// Location is an observer's position on the Earth's surface.
// Lat is degrees north positive; Lon is degrees east positive
// (west negative, e.g. -105 for 105°W).
type Location struct {
	Lat float64
	Lon float64
}

// NewLocation validates lat and lon and returns a Location. Out-of-range
// values are rejected, never clamped.
func NewLocation(lat, lon float64) (Location, error) {
	loc := Location{Lat: lat, Lon: lon}
	if err := loc.validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (l Location) validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: %v", ErrLatitudeRange, l.Lat)
	}
	if l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("%w: %v", ErrLongitudeRange, l.Lon)
	}
	return nil
}
