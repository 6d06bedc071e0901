package ranking

import "iter"

// Pair is a materialized (value, rank) pair, as returned by TakeN and
// MostNormal.
type Pair[T any] struct {
	Value T
	Rank  Rank
}

// EqualFunc reports whether a and b should be treated as the same value
// for the purposes of deduplicating iteration. Go has no implicit
// equality typeclass, so dedup-enabled rankings carry this explicitly
// rather than constraining Ranking[T] to comparable types (map and
// MergeApply routinely produce rankings over types, such as closures or
// struct slices, that are not comparable).
type EqualFunc[T any] func(a, b T) bool

// Natural returns the EqualFunc for any comparable type, using Go's
// built-in == operator.
func Natural[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}

// Ranking is a rank-ordered lazy sequence of (value, rank) pairs. It is a
// thin value: a promise for its own head position, plus a deduplication
// flag and the equality function dedup needs. Copying a Ranking is O(1)
// and shares all underlying structure; no operation here ever mutates an
// existing Ranking.
//
// Representing even the head as a promise (rather than a concrete
// pointer) rather than only the successors keeps every primitive in this
// package uniform: constructing a Ranking, by itself, forces nothing at
// all, which is a strictly stronger laziness guarantee than invariant I3
// requires.
type Ranking[T any] struct {
	head   *Promise[successor[T]]
	dedupe bool
	eq     EqualFunc[T]
}

// IsEmpty reports whether the ranking has no elements. This forces the
// head position (which may involve lazy work, e.g. for a Filter result).
func (r Ranking[T]) IsEmpty() (bool, error) {
	s, err := r.head.Force()
	if err != nil {
		return false, err
	}
	return !s.ok, nil
}

// Dedup reports whether this ranking's Iterator suppresses consecutive
// duplicate values, and the equality function used to detect them.
func (r Ranking[T]) Dedup() (bool, EqualFunc[T]) {
	return r.dedupe, r.eq
}

// WithDedup returns a copy of r with its deduplication behavior replaced.
// It shares all underlying lazy structure with r.
func (r Ranking[T]) WithDedup(dedupe bool, eq EqualFunc[T]) Ranking[T] {
	return Ranking[T]{head: r.head, dedupe: dedupe, eq: eq}
}

// Iterator returns a fresh single-pass cursor over r. Per SPEC_FULL.md §5,
// an Iterator is not safe for concurrent use by multiple goroutines; each
// goroutine that wants to walk r independently must call Iterator again
// (which is safe — Ranking itself is a plain, freely shareable value).
func (r Ranking[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cur: r.head, dedupe: r.dedupe, eq: r.eq}
}

// All exposes r as a Go 1.23 range-over-func sequence of (value, rank)
// pairs, the idiomatic realization of "exposes the range interface"
// (SPEC_FULL.md §2). It silently stops iterating at the first error; use
// Iterator directly when the error itself matters.
func (r Ranking[T]) All() iter.Seq2[T, Rank] {
	return func(yield func(T, Rank) bool) {
		it := r.Iterator()
		for {
			v, rk, ok, err := it.Next()
			if err != nil || !ok {
				return
			}
			if !yield(v, rk) {
				return
			}
		}
	}
}
