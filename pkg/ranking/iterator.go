package ranking

// Iterator is a single-pass, read-only cursor over a Ranking, yielding
// (value, rank) pairs in rank order. It is not safe for concurrent use by
// multiple goroutines; obtain one Iterator per goroutine via
// Ranking.Iterator.
type Iterator[T any] struct {
	cur     *Promise[successor[T]]
	dedupe  bool
	eq      EqualFunc[T]
	hasLast bool
	last    T
}

// Next advances the iterator and returns the next (value, rank) pair. ok
// is false once the sequence is exhausted, in which case value and rank
// are zero values and err is nil. A non-nil err means a promise along the
// way failed; the iterator has not advanced past the failing position, so
// a subsequent call to Next re-raises the identical failure.
func (it *Iterator[T]) Next() (value T, rank Rank, ok bool, err error) {
	var zero T
	for {
		succ, ferr := it.cur.Force()
		if ferr != nil {
			return zero, Rank{}, false, ferr
		}
		if !succ.ok {
			return zero, Rank{}, false, nil
		}
		e := succ.elem
		v, verr := e.value.Force()
		if verr != nil {
			return zero, Rank{}, false, verr
		}
		if it.dedupe && it.hasLast && it.eq(it.last, v) {
			it.cur = e.next
			continue
		}
		it.last = v
		it.hasLast = true
		r := e.rank
		it.cur = e.next
		return v, r, true, nil
	}
}
