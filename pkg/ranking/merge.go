package ranking

// Merge produces the lazy rank-ordered interleaving of a and b. If either
// input is empty, the result is the other input. Otherwise the head with
// the smaller rank is emitted first and its tail is recursively merged
// with the other side; on ties, a's head is emitted first (left-biased,
// deterministic tie-break). Constructing Merge forces nothing; forcing
// its head forces only a's and b's heads.
func Merge[T any](a, b Ranking[T]) Ranking[T] {
	dedupe := a.dedupe || b.dedupe
	eq := a.eq
	if eq == nil {
		eq = b.eq
	}
	return Ranking[T]{head: mergeSuccessor(a.head, b.head), dedupe: dedupe, eq: eq}
}

// MergeAll n-way merges rfs via a left pairwise reduction over Merge,
// which preserves "earlier in the slice wins ties" transitively: folding
// Merge(Merge(r0, r1), r2) keeps r0 ahead of r1 on a tie, and the merged
// (r0, r1) ahead of r2 on a further tie, so the overall left-to-right
// precedence among the original inputs is preserved.
func MergeAll[T any](rfs []Ranking[T]) Ranking[T] {
	if len(rfs) == 0 {
		return Empty[T]()
	}
	result := rfs[0]
	for _, r := range rfs[1:] {
		result = Merge(result, r)
	}
	return result
}

func mergeSuccessor[T any](aP, bP *Promise[successor[T]]) *Promise[successor[T]] {
	return NewPromise(func() (successor[T], error) {
		as, err := aP.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !as.ok {
			return bP.Force()
		}
		bs, err := bP.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !bs.ok {
			return as, nil
		}
		if bs.elem.rank.Less(as.elem.rank) {
			return successor[T]{
				ok: true,
				elem: &element[T]{
					value: bs.elem.value,
					rank:  bs.elem.rank,
					next:  mergeSuccessor(aP, bs.elem.next),
				},
			}, nil
		}
		return successor[T]{
			ok: true,
			elem: &element[T]{
				value: as.elem.value,
				rank:  as.elem.rank,
				next:  mergeSuccessor(as.elem.next, bP),
			},
		}, nil
	})
}
