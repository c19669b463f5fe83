package skyseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaylightHours_CologneSummer(t *testing.T) {
	// Cologne sees roughly 16h of daylight in mid-July.
	hours, err := DaylightHours(cologne, time.Date(2017, time.July, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.InDelta(t, 16.1, hours, 0.3)
}

func TestDaylightHours_CologneWinter(t *testing.T) {
	hours, err := DaylightHours(cologne, time.Date(2017, time.December, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.InDelta(t, 7.9, hours, 0.3)
}

func TestDaylightHours_PolarNight(t *testing.T) {
	// Longyearbyen in January: the sun never rises.
	svalbard := Location{Lat: 78.22, Lon: 15.65}
	_, err := DaylightHours(svalbard, time.Date(2017, time.January, 5, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoRiseNoSet)
}

func TestDaylightHours_BadLocation(t *testing.T) {
	_, err := DaylightHours(Location{Lat: 100}, time.Date(2017, time.July, 12, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrLatitudeRange)
}
