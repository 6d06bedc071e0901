package ranking

// Map applies f to every value in rf, preserving ranks. The result is
// fully lazy: constructing it forces nothing, and forcing one of its
// elements forces only the corresponding element of rf and invokes f
// exactly once for it, caching the outcome (including any error from f,
// wrapped as a *CallbackError) the same way every promise does.
func Map[T, U any](rf Ranking[T], f func(T) (U, error)) Ranking[U] {
	return Ranking[U]{head: mapSuccessorPreserveRank(rf.head, f)}
}

// MapWithIndex is like Map but also passes each element's 0-based index.
func MapWithIndex[T, U any](rf Ranking[T], f func(v T, idx int) (U, error)) Ranking[U] {
	return Ranking[U]{head: mapSuccessorIndexed(rf.head, 0, f)}
}

func mapSuccessorPreserveRank[T, U any](p *Promise[successor[T]], f func(T) (U, error)) *Promise[successor[U]] {
	return NewPromise(func() (successor[U], error) {
		s, err := p.Force()
		if err != nil {
			return successor[U]{}, err
		}
		if !s.ok {
			return successor[U]{}, nil
		}
		e := s.elem
		valueP := NewPromise(func() (U, error) {
			v, verr := e.value.Force()
			if verr != nil {
				var zero U
				return zero, verr
			}
			u, ferr := f(v)
			return u, wrapCallback(ferr)
		})
		return successor[U]{
			ok: true,
			elem: &element[U]{
				value: valueP,
				rank:  e.rank,
				next:  mapSuccessorPreserveRank(e.next, f),
			},
		}, nil
	})
}

func mapSuccessorIndexed[T, U any](p *Promise[successor[T]], idx int, f func(T, int) (U, error)) *Promise[successor[U]] {
	return NewPromise(func() (successor[U], error) {
		s, err := p.Force()
		if err != nil {
			return successor[U]{}, err
		}
		if !s.ok {
			return successor[U]{}, nil
		}
		e := s.elem
		valueP := NewPromise(func() (U, error) {
			v, verr := e.value.Force()
			if verr != nil {
				var zero U
				return zero, verr
			}
			u, ferr := f(v, idx)
			return u, wrapCallback(ferr)
		})
		return successor[U]{
			ok: true,
			elem: &element[U]{
				value: valueP,
				rank:  e.rank,
				next:  mapSuccessorIndexed(e.next, idx+1, f),
			},
		}, nil
	})
}

// MapWithRank applies f to every (value, rank) pair, producing a new
// value and a new rank for each element. Unlike Map, the resulting
// ranking's ranks need not satisfy I1 on their own: ensuring monotonicity
// is the caller's responsibility (SPEC_FULL.md §4.5).
//
// Because an element's rank must be known without forcing its value, and
// here the rank itself depends on calling f, f is invoked eagerly at the
// point each element is constructed (whether that is immediately, for the
// head, or later, when traversal demands the next element) rather than
// deferred inside the value promise the way Map defers it. A failure from
// f is not returned from MapWithRank itself; it is captured into a
// poisoned element whose value and successor both re-raise it, so
// MapWithRank's own signature stays a plain Ranking[U], consistent with
// every other primitive in this package.
func MapWithRank[T, U any](rf Ranking[T], f func(v T, r Rank) (U, Rank, error)) Ranking[U] {
	return Ranking[U]{head: mapSuccessorWithRank(rf.head, f)}
}

func mapSuccessorWithRank[T, U any](p *Promise[successor[T]], f func(T, Rank) (U, Rank, error)) *Promise[successor[U]] {
	return NewPromise(func() (successor[U], error) {
		s, err := p.Force()
		if err != nil {
			return successor[U]{}, err
		}
		if !s.ok {
			return successor[U]{}, nil
		}
		e := s.elem
		v, verr := e.value.Force()
		if verr != nil {
			return successor[U]{}, verr
		}
		u, r, ferr := f(v, e.rank)
		if ferr != nil {
			cerr := wrapCallback(ferr)
			return successor[U]{
				ok: true,
				elem: &element[U]{
					value: Failed[U](cerr),
					rank:  Rank{},
					next:  failedSuccessor[U](cerr),
				},
			}, nil
		}
		return successor[U]{
			ok: true,
			elem: &element[U]{
				value: Resolved(u),
				rank:  r,
				next:  mapSuccessorWithRank(e.next, f),
			},
		}, nil
	})
}
