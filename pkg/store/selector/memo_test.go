package selector_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/store/selector"
)

type input struct {
	N int
}

func TestMemo1RecomputesOnlyOnNewPointer(t *testing.T) {
	calls := 0
	sel := selector.Memo1(func(in *input) int {
		calls++
		return in.N * 2
	})

	a := &input{N: 21}
	gt.Value(t, sel(a)).Equal(42)
	gt.Value(t, sel(a)).Equal(42)
	gt.Value(t, calls).Equal(1)

	// A new pointer with identical contents still recomputes: identity, not
	// equality, is the cache key.
	b := &input{N: 21}
	gt.Value(t, sel(b)).Equal(42)
	gt.Value(t, calls).Equal(2)
}

func TestMemo2PartialChange(t *testing.T) {
	calls := 0
	sel := selector.Memo2(func(a, b *input) int {
		calls++
		return a.N + b.N
	})

	x, y := &input{N: 1}, &input{N: 2}
	gt.Value(t, sel(x, y)).Equal(3)
	gt.Value(t, sel(x, y)).Equal(3)
	gt.Value(t, calls).Equal(1)

	z := &input{N: 10}
	gt.Value(t, sel(x, z)).Equal(11)
	gt.Value(t, calls).Equal(2)
}

func TestMemo5AllInputsStable(t *testing.T) {
	calls := 0
	sel := selector.Memo5(func(a, b, c, d, e *input) int {
		calls++
		return a.N + b.N + c.N + d.N + e.N
	})

	in := []*input{{N: 1}, {N: 2}, {N: 3}, {N: 4}, {N: 5}}
	for range 3 {
		gt.Value(t, sel(in[0], in[1], in[2], in[3], in[4])).Equal(15)
	}
	gt.Value(t, calls).Equal(1)
}
