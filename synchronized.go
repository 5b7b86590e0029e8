package rangekit

import "iter"

// Synchronized2 returns a view that walks two containers in lockstep.
// Every step advances both members and yields their current elements as a
// Tuple2 in the order the containers were passed in.
//
// Iteration stops as soon as either member runs out of elements,
// so containers of unequal length are fine:
// the shortest one decides the number of steps,
// and an empty member makes the whole view empty.
//
// The view is non-mutating; elements are taken by value.
func Synchronized2[V1, V2 any](c1 Iterable[V1], c2 Iterable[V2]) SynchronizedView2[V1, V2] {
	return SynchronizedView2[V1, V2]{c1: c1, c2: c2}
}

type SynchronizedView2[V1, V2 any] struct {
	c1 Iterable[V1]
	c2 Iterable[V2]
}

func (v SynchronizedView2[V1, V2]) All() iter.Seq[Tuple2[V1, V2]] {
	return func(yield func(Tuple2[V1, V2]) bool) {
		next1, stop1 := iter.Pull(v.c1.Values())
		defer stop1()
		next2, stop2 := iter.Pull(v.c2.Values())
		defer stop2()
		for {
			// every member advances on every step, in positional order
			v1, ok1 := next1()
			v2, ok2 := next2()
			if !ok1 || !ok2 {
				return
			}
			if !yield(Tuple2[V1, V2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// Synchronized3 is the three-container variant of Synchronized2.
func Synchronized3[V1, V2, V3 any](c1 Iterable[V1], c2 Iterable[V2], c3 Iterable[V3]) SynchronizedView3[V1, V2, V3] {
	return SynchronizedView3[V1, V2, V3]{c1: c1, c2: c2, c3: c3}
}

type SynchronizedView3[V1, V2, V3 any] struct {
	c1 Iterable[V1]
	c2 Iterable[V2]
	c3 Iterable[V3]
}

func (v SynchronizedView3[V1, V2, V3]) All() iter.Seq[Tuple3[V1, V2, V3]] {
	return func(yield func(Tuple3[V1, V2, V3]) bool) {
		next1, stop1 := iter.Pull(v.c1.Values())
		defer stop1()
		next2, stop2 := iter.Pull(v.c2.Values())
		defer stop2()
		next3, stop3 := iter.Pull(v.c3.Values())
		defer stop3()
		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			v3, ok3 := next3()
			if !ok1 || !ok2 || !ok3 {
				return
			}
			if !yield(Tuple3[V1, V2, V3]{V1: v1, V2: v2, V3: v3}) {
				return
			}
		}
	}
}

// Synchronized4 is the four-container variant of Synchronized2.
func Synchronized4[V1, V2, V3, V4 any](c1 Iterable[V1], c2 Iterable[V2], c3 Iterable[V3], c4 Iterable[V4]) SynchronizedView4[V1, V2, V3, V4] {
	return SynchronizedView4[V1, V2, V3, V4]{c1: c1, c2: c2, c3: c3, c4: c4}
}

type SynchronizedView4[V1, V2, V3, V4 any] struct {
	c1 Iterable[V1]
	c2 Iterable[V2]
	c3 Iterable[V3]
	c4 Iterable[V4]
}

func (v SynchronizedView4[V1, V2, V3, V4]) All() iter.Seq[Tuple4[V1, V2, V3, V4]] {
	return func(yield func(Tuple4[V1, V2, V3, V4]) bool) {
		next1, stop1 := iter.Pull(v.c1.Values())
		defer stop1()
		next2, stop2 := iter.Pull(v.c2.Values())
		defer stop2()
		next3, stop3 := iter.Pull(v.c3.Values())
		defer stop3()
		next4, stop4 := iter.Pull(v.c4.Values())
		defer stop4()
		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			v3, ok3 := next3()
			v4, ok4 := next4()
			if !ok1 || !ok2 || !ok3 || !ok4 {
				return
			}
			if !yield(Tuple4[V1, V2, V3, V4]{V1: v1, V2: v2, V3: v3, V4: v4}) {
				return
			}
		}
	}
}

// Synchronized is the dynamic-arity lockstep view for containers that share
// an element type. Each step yields the members' current elements as a
// slice, ordered the way the containers were passed in.
// A single member degenerates to plain iteration; zero members yield an
// empty view.
func Synchronized[V any](cs ...Iterable[V]) SynchronizedView[V] {
	return SynchronizedView[V]{containers: cs}
}

type SynchronizedView[V any] struct {
	containers []Iterable[V]
}

func (v SynchronizedView[V]) All() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		if len(v.containers) == 0 {
			return
		}
		nexts := make([]func() (V, bool), 0, len(v.containers))
		for _, c := range v.containers {
			next, stop := iter.Pull(c.Values())
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			vs, ok := pullStep(nexts)
			if !ok {
				return
			}
			if !yield(vs) {
				return
			}
		}
	}
}

// pullStep advances every member and reports whether all of them still had
// an element. Members are advanced left to right even when an earlier one
// is already exhausted.
func pullStep[V any](nexts []func() (V, bool)) ([]V, bool) {
	var (
		vs  = make([]V, 0, len(nexts))
		eof bool
	)
	for _, next := range nexts {
		v, ok := next()
		if !ok {
			eof = true
			continue
		}
		vs = append(vs, v)
	}
	if eof {
		return nil, false
	}
	return vs, true
}
