package skyseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLunarSequence_RejectsBadConfig(t *testing.T) {
	start := time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewLunarSequence(start, Location{Lon: 200}, nil)
	assert.ErrorIs(t, err, ErrLongitudeRange)

	_, err = NewLunarSequence(start, cologne, []LunarKind{LunarKind(42)})
	assert.Error(t, err)
}

func TestLunarSequence_EmptyKindsYieldsNothing(t *testing.T) {
	start := time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne, []LunarKind{})
	require.NoError(t, err)
	assert.Empty(t, q.Collect(-1))
	assert.NoError(t, q.Err())
}

// TestLunarSequence_NewMoon_2017_09_20 checks the first new moon after
// 2017-09-01 against the almanac value 2017-09-20 05:30 UTC.
func TestLunarSequence_NewMoon_2017_09_20(t *testing.T) {
	start := time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne, []LunarKind{NewMoon})
	require.NoError(t, err)

	ev, ok := q.Next()
	require.True(t, ok)
	require.NoError(t, q.Err())

	assert.Equal(t, NewMoon, ev.Kind)
	want := time.Date(2017, time.September, 20, 5, 29, 30, 0, time.UTC)
	assert.InDelta(t, 0, ev.Time.Sub(want).Seconds(), 500)
	assert.InDelta(t, 382740.0, ev.Distance, 500)
}

// TestLunarSequence_Cologne_2017_07_12 checks moonset and moonrise for
// Cologne (set 06:53 UTC, rise 21:25 UTC per almanac).
func TestLunarSequence_Cologne_2017_07_12(t *testing.T) {
	start := time.Date(2017, time.July, 12, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne, []LunarKind{Moonrise, Moonset}, WithLimit(24*time.Hour))
	require.NoError(t, err)

	events := q.Collect(2)
	require.NoError(t, q.Err())
	require.Len(t, events, 2)

	assert.Equal(t, Moonset, events[0].Kind)
	wantSet := time.Date(2017, time.July, 12, 6, 53, 30, 0, time.UTC)
	assert.InDelta(t, 0, events[0].Time.Sub(wantSet).Seconds(), 90)

	assert.Equal(t, Moonrise, events[1].Kind)
	wantRise := time.Date(2017, time.July, 12, 21, 25, 55, 0, time.UTC)
	assert.InDelta(t, 0, events[1].Time.Sub(wantRise).Seconds(), 90)
}

func TestLunarSequence_PhaseCycleOrder(t *testing.T) {
	start := time.Date(2017, time.September, 1, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne,
		[]LunarKind{NewMoon, FirstQuarter, FullMoon, LastQuarter}, WithLimit(60*24*time.Hour))
	require.NoError(t, err)

	events := q.Collect(8)
	require.NoError(t, q.Err())
	require.Len(t, events, 8)

	// September 2017 opens just before full moon (Sep 6), so the cycle
	// picks up at FullMoon and repeats in quarter order.
	wantKinds := []LunarKind{
		FullMoon, LastQuarter, NewMoon, FirstQuarter,
		FullMoon, LastQuarter, NewMoon, FirstQuarter,
	}
	for i, ev := range events {
		assert.Equal(t, wantKinds[i], ev.Kind, "event %d", i)
	}
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].Time.After(events[i-1].Time),
			"phases out of order: %v then %v", events[i-1], events[i])
	}

	// Consecutive new moons are a synodic month apart.
	gap := events[6].Time.Sub(events[2].Time)
	assert.InDelta(t, 29.53, gap.Hours()/24, 0.6)
}

func TestLunarSequence_ReverseFindsPrecedingEvents(t *testing.T) {
	start := time.Date(2017, time.September, 25, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne, []LunarKind{NewMoon}, Reversed())
	require.NoError(t, err)

	ev, ok := q.Next()
	require.True(t, ok)
	require.NoError(t, q.Err())

	// The most recent new moon before Sep 25 is the Sep 20 one.
	want := time.Date(2017, time.September, 20, 5, 29, 30, 0, time.UTC)
	assert.InDelta(t, 0, ev.Time.Sub(want).Seconds(), 500)
}

func TestLunarSequence_MixedKindsOrdered(t *testing.T) {
	start := time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)

	q, err := NewLunarSequence(start, cologne, DefaultLunarKinds, WithLimit(30*24*time.Hour))
	require.NoError(t, err)

	events := q.Collect(-1)
	require.NoError(t, q.Err())
	require.NotEmpty(t, events)

	var horizon, phase int
	for i, ev := range events {
		if i > 0 {
			assert.False(t, ev.Time.Before(events[i-1].Time),
				"events out of order: %v then %v", events[i-1], ev)
		}
		switch ev.Kind {
		case Moonrise, Moonset:
			horizon++
		default:
			phase++
		}
	}
	// Roughly one rise and one set per day, four phases per month.
	assert.Greater(t, horizon, 50)
	assert.InDelta(t, 4, phase, 1)
}
