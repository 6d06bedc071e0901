package ranking

import "fmt"

// ShiftRanks adds delta to every rank in rf, using saturating addition
// (SPEC_FULL.md §3): a shift that would overflow clamps to Infinity
// rather than failing, since a rank shift over a lazy, potentially
// unbounded sequence overflowing is semantically equivalent to "now
// impossible".
func ShiftRanks[T any](rf Ranking[T], delta Rank) Ranking[T] {
	return Ranking[T]{head: shiftSuccessor(rf.head, delta, true), dedupe: rf.dedupe, eq: rf.eq}
}

func shiftSuccessor[T any](p *Promise[successor[T]], delta Rank, saturating bool) *Promise[successor[T]] {
	return NewPromise(func() (successor[T], error) {
		s, err := p.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !s.ok {
			return successor[T]{}, nil
		}
		var r Rank
		if saturating {
			r = s.elem.rank.SaturatingAdd(delta)
		} else {
			r, err = s.elem.rank.Add(delta)
			if err != nil {
				return successor[T]{}, err
			}
		}
		return successor[T]{
			ok: true,
			elem: &element[T]{
				value: s.elem.value,
				rank:  r,
				next:  shiftSuccessor(s.elem.next, delta, saturating),
			},
		}, nil
	})
}

// subtractMinSuccessor subtracts minRank from every finite rank in the
// chain reachable through p, using exact subtraction, and passes Infinity
// through unchanged. By I1 a filtered sequence may legally still contain
// Infinity-ranked elements after its first (finite, by construction —
// Observe never begins its shift at an infinite minimum) match — e.g.
// FromList([(a,0),(b,infinity)]) observed with an always-true predicate —
// and those come out as Infinity, not as a spurious internal error
// (see TestObservePassesThroughInfiniteTailRanks): Rank.Sub rejects any infinite operand (it is
// undefined, not merely large), so an infinite minuend must be special-
// cased here rather than handed to Sub. A finite rank below minRank, by
// contrast, is impossible under I1 and remains an ErrInternal.
func subtractMinSuccessor[T any](p *Promise[successor[T]], minRank Rank) *Promise[successor[T]] {
	return NewPromise(func() (successor[T], error) {
		s, err := p.Force()
		if err != nil {
			return successor[T]{}, err
		}
		if !s.ok {
			return successor[T]{}, nil
		}
		r := s.elem.rank
		if r.IsInfinity() {
			// Infinity - minRank = Infinity; nothing to compute.
		} else {
			var serr error
			r, serr = r.Sub(minRank)
			if serr != nil {
				return successor[T]{}, fmt.Errorf("%w: observe: element rank %s below filtered minimum %s: %v", ErrInternal, s.elem.rank, minRank, serr)
			}
		}
		return successor[T]{
			ok: true,
			elem: &element[T]{
				value: s.elem.value,
				rank:  r,
				next:  subtractMinSuccessor(s.elem.next, minRank),
			},
		}, nil
	})
}
