package ranking

import (
	"context"

	"github.com/gitrdm/rankedbelief/internal/prefetch"
)

// ParallelTakeN materializes the same result as TakeN, but uses a small
// bounded worker pool to force independent elements' value promises
// concurrently once the spine has been walked far enough to know they
// exist. Walking the spine itself is inherently sequential — each
// successor promise must be forced before the next is known — but once a
// contiguous batch of up to n successor pointers has been discovered,
// their value promises (which may be arbitrarily expensive, e.g. built
// via Map over a slow function) are independent of each other and can be
// forced in parallel.
//
// This changes nothing about the sequence produced, only how fast it is
// produced: it is a pure performance affordance layered on top of the
// core laziness guarantees, and correctness tests never depend on it.
// concurrency is the worker pool size; a non-positive value defaults to
// the number of CPU cores (see internal/prefetch.New).
func ParallelTakeN[T any](ctx context.Context, rf Ranking[T], n int, concurrency int) ([]Pair[T], error) {
	if n <= 0 {
		return nil, nil
	}

	type pending struct {
		valueP *Promise[T]
		rank   Rank
	}
	pendings := make([]pending, 0, n)

	// Walk the spine exactly as Iterator.Next does, including consecutive
	// duplicate suppression, but defer forcing each element's value so the
	// forcing can happen concurrently below.
	dedupe, eq := rf.Dedup()
	cur := rf.head
	var hasLast bool
	var last T
	for len(pendings) < n {
		s, err := cur.Force()
		if err != nil {
			return nil, err
		}
		if !s.ok {
			break
		}
		if dedupe && hasLast {
			v, verr := s.elem.value.Force()
			if verr != nil {
				return nil, verr
			}
			if eq(last, v) {
				cur = s.elem.next
				continue
			}
			last = v
		} else if dedupe {
			v, verr := s.elem.value.Force()
			if verr != nil {
				return nil, verr
			}
			last = v
			hasLast = true
		}
		pendings = append(pendings, pending{valueP: s.elem.value, rank: s.elem.rank})
		cur = s.elem.next
	}

	if len(pendings) == 0 {
		return nil, nil
	}

	pool := prefetch.New(concurrency)
	defer pool.Shutdown()

	for _, pd := range pendings {
		pd := pd
		_ = pool.Submit(ctx, func() {
			pd.valueP.Force() //nolint:errcheck // the error, if any, is observed again below
		})
	}
	pool.Shutdown()

	out := make([]Pair[T], 0, len(pendings))
	for _, pd := range pendings {
		v, err := pd.valueP.Force()
		if err != nil {
			return out, err
		}
		out = append(out, Pair[T]{Value: v, Rank: pd.rank})
	}
	return out, nil
}
