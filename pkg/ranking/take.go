package ranking

// Take returns the lazy prefix of rf consisting of at most n elements.
func Take[T any](rf Ranking[T], n int) Ranking[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return Ranking[T]{head: takeSuccessor(rf.head, n), dedupe: rf.dedupe, eq: rf.eq}
}

func takeSuccessor[T any](p *Promise[successor[T]], remaining int) *Promise[successor[T]] {
	if remaining <= 0 {
		return endSuccessor[T]()
	}
	return NewPromise(func() (successor[T], error) {
		s, err := p.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !s.ok {
			return successor[T]{}, nil
		}
		return successor[T]{
			ok: true,
			elem: &element[T]{
				value: s.elem.value,
				rank:  s.elem.rank,
				next:  takeSuccessor(s.elem.next, remaining-1),
			},
		}, nil
	})
}

// TakeWhileRank returns the lazy prefix of rf consisting of every element
// whose rank is at most maxRank.
func TakeWhileRank[T any](rf Ranking[T], maxRank Rank) Ranking[T] {
	return Ranking[T]{head: takeWhileSuccessor(rf.head, maxRank), dedupe: rf.dedupe, eq: rf.eq}
}

func takeWhileSuccessor[T any](p *Promise[successor[T]], maxRank Rank) *Promise[successor[T]] {
	return NewPromise(func() (successor[T], error) {
		s, err := p.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !s.ok || maxRank.Less(s.elem.rank) {
			return successor[T]{}, nil
		}
		return successor[T]{
			ok: true,
			elem: &element[T]{
				value: s.elem.value,
				rank:  s.elem.rank,
				next:  takeWhileSuccessor(s.elem.next, maxRank),
			},
		}, nil
	})
}

// TakeN is the eager counterpart of Take: it materializes up to n
// (value, rank) pairs from rf.
func TakeN[T any](rf Ranking[T], n int) ([]Pair[T], error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]Pair[T], 0, n)
	it := rf.Iterator()
	for i := 0; i < n; i++ {
		v, r, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, Pair[T]{Value: v, Rank: r})
	}
	return out, nil
}

// MostNormal materializes the first (value, rank) pair of rf, if any.
func MostNormal[T any](rf Ranking[T]) (Pair[T], bool, error) {
	it := rf.Iterator()
	v, r, ok, err := it.Next()
	if err != nil || !ok {
		return Pair[T]{}, false, err
	}
	return Pair[T]{Value: v, Rank: r}, true, nil
}
