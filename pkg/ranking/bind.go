package ranking

// MergeApply is the lazy monadic bind: for each element (v, r) of rf,
// f(v) produces a child ranking whose every rank is shifted by +r, and
// the result is the rank-ordered merge of all shifted child rankings.
//
// Laziness (SPEC_FULL.md §4.8): the first element of the result must be
// producible by forcing only the first child ranking, and only as far
// into it as its head — f itself is never called for a parent element
// until its rank alone could still beat the best candidate already
// opened. This is implemented as a rolling frontier: the merge-in-progress
// of already-opened children, plus the parent's unconsumed tail. At each
// step, the frontier's current candidate is compared against the next
// unopened parent element's rank; another child is opened (f invoked)
// only when that next parent rank could possibly beat the current
// candidate.
//
// That comparison needs the next parent element's rank before the
// current candidate can be confirmed as the true minimum (I1 requires
// emitting elements in non-decreasing rank order, and a not-yet-opened
// parent position could still beat the candidate), so producing the
// result's k-th element forces the parent spine one position further
// than the number of children it opens — up to k+1 parent positions for
// k opened children, not k. For a FromList-backed parent this is free
// (its elements are already materialized); for a FromGenerator-backed
// parent, forcing a position computes that position's value together
// with its rank (the generator produces both from one call), so reading
// ahead one parent position also computes a value that may go unused if
// no further child ends up being opened there. This is a property of
// rank-ordered merging in general — merge itself always needs both
// sides' heads to pick the smaller one — not an inefficiency specific to
// this implementation; see TestMergeApplyIsLazyForcesOnlyFirstChildHead.
func MergeApply[T, U any](rf Ranking[T], f func(T) (Ranking[U], error)) Ranking[U] {
	return Ranking[U]{head: bindFrontier(endSuccessor[U](), rf.head, f)}
}

// bindFrontier is the recursive core of MergeApply. acc is the lazy merge
// of children already opened from earlier parent elements (possibly
// empty); rest is the parent's unconsumed tail.
func bindFrontier[T, U any](acc *Promise[successor[U]], rest *Promise[successor[T]], f func(T) (Ranking[U], error)) *Promise[successor[U]] {
	return NewPromise(func() (successor[U], error) {
		for {
			accS, err := acc.Force()
			if err != nil {
				return successor[U]{}, err
			}
			restS, err := rest.Force()
			if err != nil {
				return successor[U]{}, err
			}

			needOpen := false
			switch {
			case !accS.ok:
				needOpen = restS.ok
			case restS.ok && restS.elem.rank.Compare(accS.elem.rank) <= 0:
				needOpen = true
			}

			if !needOpen {
				if !accS.ok {
					return successor[U]{}, nil
				}
				return successor[U]{
					ok: true,
					elem: &element[U]{
						value: accS.elem.value,
						rank:  accS.elem.rank,
						next:  bindFrontier(accS.elem.next, rest, f),
					},
				}, nil
			}

			v, verr := restS.elem.value.Force()
			if verr != nil {
				return successor[U]{}, verr
			}
			childRanking, ferr := f(v)
			if ferr != nil {
				return successor[U]{}, wrapCallback(ferr)
			}
			shiftedChild := shiftSuccessor(childRanking.head, restS.elem.rank, true)
			acc = mergeSuccessor(acc, shiftedChild)
			rest = restS.elem.next
		}
	})
}
