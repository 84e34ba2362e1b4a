// Package selector provides pointer-identity memoization for store
// derivations. A selector recomputes only when at least one of its input
// references changed since the previous call; reducers cooperate by
// returning the identical slice pointer for intents they ignore. This is a
// design requirement, not an optimization detail: the aggregate loading
// check runs on every state change, and naive recomputation would defeat it.
package selector

import "sync"

// Memo1 memoizes a single-input selector keyed by the input pointer
func Memo1[A any, R any](compute func(*A) R) func(*A) R {
	var (
		mu    sync.Mutex
		last  *A
		value R
		valid bool
	)
	return func(a *A) R {
		mu.Lock()
		defer mu.Unlock()
		if valid && last == a {
			return value
		}
		value = compute(a)
		last = a
		valid = true
		return value
	}
}

// Memo2 memoizes a two-input selector
func Memo2[A, B any, R any](compute func(*A, *B) R) func(*A, *B) R {
	var (
		mu    sync.Mutex
		lastA *A
		lastB *B
		value R
		valid bool
	)
	return func(a *A, b *B) R {
		mu.Lock()
		defer mu.Unlock()
		if valid && lastA == a && lastB == b {
			return value
		}
		value = compute(a, b)
		lastA, lastB = a, b
		valid = true
		return value
	}
}

// Memo5 memoizes a five-input selector
func Memo5[A, B, C, D, E any, R any](compute func(*A, *B, *C, *D, *E) R) func(*A, *B, *C, *D, *E) R {
	var (
		mu    sync.Mutex
		lastA *A
		lastB *B
		lastC *C
		lastD *D
		lastE *E
		value R
		valid bool
	)
	return func(a *A, b *B, c *C, d *D, e *E) R {
		mu.Lock()
		defer mu.Unlock()
		if valid && lastA == a && lastB == b && lastC == c && lastD == d && lastE == e {
			return value
		}
		value = compute(a, b, c, d, e)
		lastA, lastB, lastC, lastD, lastE = a, b, c, d, e
		valid = true
		return value
	}
}
