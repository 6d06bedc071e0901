package ranking

import (
	"fmt"
	"iter"
)

// Options controls the deduplication behavior a constructor gives the
// Ranking it builds. The zero value disables dedup; use DedupNatural or
// DedupWith to enable it.
type Options[T any] struct {
	Dedupe bool
	Eq     EqualFunc[T]
}

// DedupWith returns Options enabling deduplication using the given
// equality function.
func DedupWith[T any](eq EqualFunc[T]) Options[T] {
	return Options[T]{Dedupe: true, Eq: eq}
}

// DedupNatural returns Options enabling deduplication using a comparable
// type's built-in equality.
func DedupNatural[T comparable]() Options[T] {
	return Options[T]{Dedupe: true, Eq: Natural[T]()}
}

// Empty returns the ranking with no elements.
func Empty[T any]() Ranking[T] {
	return Ranking[T]{head: endSuccessor[T]()}
}

// Singleton returns the ranking containing exactly (v, r).
func Singleton[T any](v T, r Rank) Ranking[T] {
	return Ranking[T]{head: resolvedSuccessor(terminalElement(v, r))}
}

// Autocast treats a plain value as the singleton ranking {(v, 0)}. Go has
// no operator overloading, so this is the explicit adapter a caller uses
// wherever the spec's "ranking + scalar lifts the scalar automatically"
// sugar would otherwise apply — e.g. before passing a bare value to Merge
// alongside an existing Ranking.
func Autocast[T any](v T) Ranking[T] {
	return Singleton(v, Zero())
}

// FromList builds a ranking from a materialized, already rank-ordered
// list of pairs, preserving input order. Because pairs is already fully
// materialized, I1 (rank monotonicity) is validated eagerly here — this
// loses no laziness, since the whole input already exists — and a
// violation fails with ErrInvalidArgument.
func FromList[T any](pairs []Pair[T], opts Options[T]) (Ranking[T], error) {
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Rank.Less(pairs[i-1].Rank) {
			return Ranking[T]{}, fmt.Errorf("%w: from_list: rank at index %d (%s) is less than rank at index %d (%s), violating monotonicity",
				ErrInvalidArgument, i, pairs[i].Rank, i-1, pairs[i-1].Rank)
		}
	}
	head := endSuccessor[T]()
	for i := len(pairs) - 1; i >= 0; i-- {
		head = resolvedSuccessor(elementWithNext(pairs[i].Value, pairs[i].Rank, head))
	}
	return Ranking[T]{head: head, dedupe: opts.Dedupe, eq: opts.Eq}, nil
}

// FromValuesUniform assigns the same rank r to every value in vs.
func FromValuesUniform[T any](vs []T, r Rank, opts Options[T]) Ranking[T] {
	pairs := make([]Pair[T], len(vs))
	for i, v := range vs {
		pairs[i] = Pair[T]{Value: v, Rank: r}
	}
	rk, err := FromList(pairs, opts)
	if err != nil {
		// Uniform ranks can never violate monotonicity; a failure here
		// would indicate a bug in FromList, not a caller fault.
		panic(fmt.Errorf("%w: from_values_uniform: %v", ErrInternal, err))
	}
	return rk
}

// FromValuesSequential assigns value i the rank start+i.
func FromValuesSequential[T any](vs []T, start Rank, opts Options[T]) (Ranking[T], error) {
	pairs := make([]Pair[T], len(vs))
	r := start
	for i, v := range vs {
		if i > 0 {
			var err error
			r, err = r.Add(MustFromValue(1))
			if err != nil {
				return Ranking[T]{}, fmt.Errorf("%w: from_values_sequential: %v", ErrRankArithmetic, err)
			}
		}
		pairs[i] = Pair[T]{Value: v, Rank: r}
	}
	return FromList(pairs, opts)
}

// FromValuesWithRanker assigns value at index i the rank returned by
// ranker(v, i). The caller is responsible for ensuring ranks come out
// non-decreasing in index; FromList validates this eagerly and returns
// ErrInvalidArgument if it does not.
func FromValuesWithRanker[T any](vs []T, ranker func(v T, idx int) (Rank, error), opts Options[T]) (Ranking[T], error) {
	pairs := make([]Pair[T], len(vs))
	for i, v := range vs {
		r, err := ranker(v, i)
		if err != nil {
			return Ranking[T]{}, wrapCallback(err)
		}
		pairs[i] = Pair[T]{Value: v, Rank: r}
	}
	return FromList(pairs, opts)
}

// FromGenerator builds an infinite lazy sequence: gen(idx) must return
// values whose ranks are non-decreasing in idx, starting at start
// (caller's responsibility; not validated, since validating it would
// require forcing the generator to completion). Constructing the
// returned Ranking invokes gen zero times; the first call happens only
// when a consumer forces the head.
func FromGenerator[T any](gen func(idx int) (T, Rank), start int, opts Options[T]) Ranking[T] {
	return Ranking[T]{
		head: lazySuccessor(func() (successor[T], error) {
			return successor[T]{elem: infiniteSequenceElement(gen, start), ok: true}, nil
		}),
		dedupe: opts.Dedupe,
		eq:     opts.Eq,
	}
}

// FromRange builds a ranking from any finite Go 1.23 range-over-func
// sequence, assigning value i the rank start+i — the range-consuming
// counterpart to FromValuesSequential.
func FromRange[T any](seq iter.Seq[T], start Rank, opts Options[T]) (Ranking[T], error) {
	var vs []T
	seq(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return FromValuesSequential(vs, start, opts)
}

// FromPairRange builds a ranking from any finite Go 1.23 range-over-func
// sequence of (value, rank) pairs — the range-consuming counterpart to
// FromList.
func FromPairRange[T any](seq iter.Seq2[T, Rank], opts Options[T]) (Ranking[T], error) {
	var pairs []Pair[T]
	seq(func(v T, r Rank) bool {
		pairs = append(pairs, Pair[T]{Value: v, Rank: r})
		return true
	})
	return FromList(pairs, opts)
}
