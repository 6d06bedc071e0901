package ranking

// Observe conditions rf on pred: it filters by pred, then subtracts the
// minimum rank of the filtered sequence from every remaining rank, so the
// surviving minimum becomes zero. If pred matches nothing, or the first
// match has rank Infinity, the result is empty. The shift amount is
// determined by forcing only the first matching element; subsequent
// elements are shifted lazily as the consumer advances.
func Observe[T any](rf Ranking[T], pred func(T) (bool, error)) Ranking[T] {
	filtered := filterSuccessor(rf.head, pred)
	return Ranking[T]{
		head: NewPromise(func() (successor[T], error) {
			s, err := filtered.Force()
			if err != nil {
				return successor[T]{}, err
			}
			if !s.ok || s.elem.rank.IsInfinity() {
				return successor[T]{}, nil
			}
			return subtractMinSuccessor(filtered, s.elem.rank).Force()
		}),
		dedupe: rf.dedupe,
		eq:     rf.eq,
	}
}

// ObserveValue conditions rf on equality with v, using eq to compare
// values. It is defined in terms of Observe.
func ObserveValue[T any](rf Ranking[T], v T, eq EqualFunc[T]) Ranking[T] {
	return Observe(rf, func(x T) (bool, error) { return eq(x, v), nil })
}
