package ranking

import (
	"errors"
	"testing"
)

func TestMapPreservesRankAppliesFunc(t *testing.T) {
	r := FromValuesUniform([]int{1, 2, 3}, MustFromValue(2), Options[int]{})
	mapped := Map(r, func(v int) (int, error) { return v * 10, nil })

	got, err := TakeN(mapped, 10)
	if err != nil {
		t.Fatalf("TakeN: %v", err)
	}
	want := []int{10, 20, 30}
	for i, p := range got {
		if p.Value != want[i] {
			t.Errorf("got[%d].Value = %d, want %d", i, p.Value, want[i])
		}
		if !p.Rank.Equal(MustFromValue(2)) {
			t.Errorf("got[%d].Rank = %s, want 2", i, p.Rank)
		}
	}
}

func TestMapIsLazyAndCallsOnce(t *testing.T) {
	var calls int
	r := FromValuesUniform([]int{1, 2}, Zero(), Options[int]{})
	mapped := Map(r, func(v int) (int, error) {
		calls++
		return v, nil
	})
	if calls != 0 {
		t.Fatalf("Map constructed eagerly, calls = %d", calls)
	}

	it := mapped.Iterator()
	if _, _, _, err := it.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls after first Next = %d, want 1", calls)
	}

	// The second element is a distinct promise, so f runs again for it.
	if _, _, _, err := it.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls after second Next = %d, want 2", calls)
	}
}

func TestMapPropagatesCallbackError(t *testing.T) {
	wantErr := errors.New("bad map")
	r := Singleton(1, Zero())
	mapped := Map(r, func(v int) (int, error) { return 0, wantErr })

	_, err := TakeN(mapped, 1)
	var cerr *CallbackError
	if !errors.As(err, &cerr) || !errors.Is(cerr.Unwrap(), wantErr) {
		t.Errorf("error = %v, want *CallbackError wrapping %v", err, wantErr)
	}
}

func TestMapWithIndex(t *testing.T) {
	r := FromValuesUniform([]string{"a", "b", "c"}, Zero(), Options[string]{})
	mapped := MapWithIndex(r, func(v string, idx int) (string, error) {
		if idx == 1 {
			return v + "!", nil
		}
		return v, nil
	})
	got, err := TakeN(mapped, 10)
	if err != nil {
		t.Fatalf("TakeN: %v", err)
	}
	if got[1].Value != "b!" {
		t.Errorf("got[1].Value = %q, want %q", got[1].Value, "b!")
	}
}

func TestMapWithRankComputesNewRank(t *testing.T) {
	r := FromValuesUniform([]int{1, 2, 3}, Zero(), Options[int]{})
	mapped := MapWithRank(r, func(v int, rk Rank) (int, Rank, error) {
		return v, MustFromValue(uint64(v)), nil
	})
	got, err := TakeN(mapped, 10)
	if err != nil {
		t.Fatalf("TakeN: %v", err)
	}
	for i, p := range got {
		want := uint64(p.Value)
		v, _ := p.Rank.Value()
		if v != want {
			t.Errorf("got[%d].Rank = %d, want %d", i, v, want)
		}
	}
}

func TestMapWithRankPoisonsElementOnError(t *testing.T) {
	wantErr := errors.New("bad ranker")
	r := Singleton(1, Zero())
	mapped := MapWithRank(r, func(v int, rk Rank) (int, Rank, error) {
		return 0, Rank{}, wantErr
	})

	_, err := TakeN(mapped, 1)
	var cerr *CallbackError
	if !errors.As(err, &cerr) || !errors.Is(cerr.Unwrap(), wantErr) {
		t.Errorf("error = %v, want *CallbackError wrapping %v", err, wantErr)
	}
}
