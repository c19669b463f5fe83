// Package seq implements the lazy, pull-based sequence primitive the event
// searches are built on. Sequences may be infinite; elements are produced
// one at a time on demand and nothing is ever materialized up front.
//
// Every sequence owns its own cursor state, so independent sequences over
// the same configuration never share mutable state.
package seq

import "iter"

// Seq is a pull-based sequence of T. Next returns the next element, or
// ok=false once the sequence is exhausted. A sequence that has reported
// ok=false stays exhausted.
type Seq[T any] interface {
	Next() (T, bool)
}

// Func adapts a closure into a Seq. The closure owns whatever cursor state
// it needs.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) { return f() }

// Empty returns a sequence with no elements.
func Empty[T any]() Seq[T] {
	return Func[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// FromSlice returns a sequence over the elements of items, in order.
func FromSlice[T any](items []T) Seq[T] {
	i := 0
	return Func[T](func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	})
}

// Collect pulls up to n elements from s. With n < 0 it drains the sequence,
// which must therefore be finite.
func Collect[T any](s Seq[T], n int) []T {
	var out []T
	for n < 0 || len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// All exposes s as a single-use range-over-func iterator. Iteration resumes
// from the sequence's current cursor and advances it.
func All[T any](s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Merge lazily merges two ordered sequences into one ordered sequence.
// Both inputs must already be sorted by cmp: ascending when descending is
// false, descending otherwise. Either input may be infinite; only one
// element per input is buffered. When one input ends, the other is drained.
func Merge[T any](a, b Seq[T], cmp func(T, T) int, descending bool) Seq[T] {
	type head struct {
		v      T
		ok     bool
		primed bool
	}
	var ha, hb head

	return Func[T](func() (T, bool) {
		if !ha.primed {
			ha.v, ha.ok = a.Next()
			ha.primed = true
		}
		if !hb.primed {
			hb.v, hb.ok = b.Next()
			hb.primed = true
		}

		switch {
		case !ha.ok && !hb.ok:
			var zero T
			return zero, false
		case !ha.ok:
			v := hb.v
			hb.v, hb.ok = b.Next()
			return v, true
		case !hb.ok:
			v := ha.v
			ha.v, ha.ok = a.Next()
			return v, true
		}

		takeA := cmp(ha.v, hb.v) <= 0
		if descending {
			takeA = cmp(ha.v, hb.v) >= 0
		}
		if takeA {
			v := ha.v
			ha.v, ha.ok = a.Next()
			return v, true
		}
		v := hb.v
		hb.v, hb.ok = b.Next()
		return v, true
	})
}
