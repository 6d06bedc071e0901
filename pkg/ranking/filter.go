package ranking

// Filter lazily walks rf, emitting only the elements for which
// pred(value) is true. Ranks are preserved unchanged — the filtered
// sequence typically starts at a non-zero rank. That is what
// distinguishes Filter from Observe, which additionally renormalizes
// ranks so the surviving minimum becomes zero.
func Filter[T any](rf Ranking[T], pred func(T) (bool, error)) Ranking[T] {
	return Ranking[T]{head: filterSuccessor(rf.head, pred), dedupe: rf.dedupe, eq: rf.eq}
}

// filterSuccessor builds the lazy "next matching position" promise for a
// filtered sequence. Forcing it walks forward through as many source
// elements as needed to find the first match (or the end); it never
// forces past that point.
func filterSuccessor[T any](p *Promise[successor[T]], pred func(T) (bool, error)) *Promise[successor[T]] {
	return NewPromise(func() (successor[T], error) {
		cur := p
		for {
			s, err := cur.Force()
			if err != nil {
				return successor[T]{}, err
			}
			if !s.ok {
				return successor[T]{}, nil
			}
			v, verr := s.elem.value.Force()
			if verr != nil {
				return successor[T]{}, verr
			}
			ok, perr := pred(v)
			if perr != nil {
				return successor[T]{}, wrapCallback(perr)
			}
			if ok {
				return successor[T]{
					ok: true,
					elem: &element[T]{
						value: s.elem.value,
						rank:  s.elem.rank,
						next:  filterSuccessor(s.elem.next, pred),
					},
				}, nil
			}
			cur = s.elem.next
		}
	})
}
