package skyseq

import "time"

// DaylightHours returns the duration of daylight (first sunrise to the
// following sunset) on the local calendar date of `date` at loc, in hours.
//
// If the sun does not both rise and set on that date (polar day or polar
// night), it returns 0 and ErrNoRiseNoSet; the caller can tell the two
// apart by sampling the sequence with a wider window.
func DaylightHours(loc Location, date time.Time) (float64, error) {
	tz := date.Location()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, tz)

	q, err := NewSolarSequence(dayStart, loc, []SolarKind{Sunrise, Sunset}, WithLimit(24*time.Hour))
	if err != nil {
		return 0, err
	}

	var rise time.Time
	for ev, ok := q.Next(); ok; ev, ok = q.Next() {
		switch {
		case ev.Kind == Sunrise && rise.IsZero():
			rise = ev.Time
		case ev.Kind == Sunset && !rise.IsZero():
			return ev.Time.Sub(rise).Hours(), nil
		}
	}
	return 0, ErrNoRiseNoSet
}
