package ranking

// successor represents the next position in a lazy rank-ordered sequence:
// either another element, or the end of the sequence. A Ranking[T] is
// itself represented as a *Promise[successor[T]] (see ranking.go) so that
// every primitive below is built the same way an element builds its own
// tail: as a promise for "the next element, if any".
type successor[T any] struct {
	elem *element[T]
	ok   bool
}

// element is an immutable node of a rank-sorted lazy list: a lazily
// computed value, a rank known without forcing the value, and a lazily
// computed successor. Elements are never mutated after construction;
// sharing is handled by Go's garbage collector rather than manual
// reference counting (see SPEC_FULL.md §9).
type element[T any] struct {
	value *Promise[T]
	rank  Rank
	next  *Promise[successor[T]]
}

func endSuccessor[T any]() *Promise[successor[T]] {
	return Resolved(successor[T]{})
}

func resolvedSuccessor[T any](e *element[T]) *Promise[successor[T]] {
	return Resolved(successor[T]{elem: e, ok: true})
}

func lazySuccessor[T any](thunk func() (successor[T], error)) *Promise[successor[T]] {
	return NewPromise(thunk)
}

func failedSuccessor[T any](err error) *Promise[successor[T]] {
	return Failed[successor[T]](err)
}

// terminalElement builds an element with no successor.
func terminalElement[T any](v T, r Rank) *element[T] {
	return &element[T]{value: Resolved(v), rank: r, next: endSuccessor[T]()}
}

// elementWithNext builds an element whose successor is already known.
func elementWithNext[T any](v T, r Rank, next *Promise[successor[T]]) *element[T] {
	return &element[T]{value: Resolved(v), rank: r, next: next}
}

// lazyElement builds an element whose successor is produced by forcing a
// thunk.
func lazyElement[T any](v T, r Rank, thunk func() (successor[T], error)) *element[T] {
	return &element[T]{value: Resolved(v), rank: r, next: lazySuccessor(thunk)}
}

// infiniteSequenceElement lazily materializes an index-parameterized
// sequence: gen must return values whose ranks are non-decreasing in idx
// (caller responsibility, not validated here — validating it would
// require forcing the generator to completion, which this algebra never
// does).
func infiniteSequenceElement[T any](gen func(idx int) (T, Rank), idx int) *element[T] {
	v, r := gen(idx)
	return &element[T]{
		value: Resolved(v),
		rank:  r,
		next: lazySuccessor(func() (successor[T], error) {
			return successor[T]{elem: infiniteSequenceElement(gen, idx+1), ok: true}, nil
		}),
	}
}
