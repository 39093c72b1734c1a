package cellgraph

import (
	"reflect"
	"time"

	"golang.org/x/time/rate"
)

// defaultEquals provides type-appropriate equality on erased values.
// Uses == for common comparable types and reflect.DeepEqual for the
// rest.
func defaultEquals(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int8:
		bv, ok := b.(int8)
		return ok && av == bv
	case int16:
		bv, ok := b.(int16)
		return ok && av == bv
	case int32:
		bv, ok := b.(int32)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint:
		bv, ok := b.(uint)
		return ok && av == bv
	case uint8:
		bv, ok := b.(uint8)
		return ok && av == bv
	case uint16:
		bv, ok := b.(uint16)
		return ok && av == bv
	case uint32:
		bv, ok := b.(uint32)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float32:
		bv, ok := b.(float32)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}

// ThrottledEquals wraps an equality predicate with a rate limit: within
// window of the last admitted comparison, the wrapped predicate reports
// "equal" regardless of the real comparison, suppressing propagation.
// A nil base means the default equality.
//
// Use it to damp noisy upstream values:
//
//	m := NewMemo(cx, poll, WithEqualsFunc(ThrottledEquals(500*time.Millisecond, nil)))
func ThrottledEquals(window time.Duration, base func(prev, next any) bool) func(prev, next any) bool {
	if base == nil {
		base = defaultEquals
	}
	lim := rate.NewLimiter(rate.Every(window), 1)
	return func(prev, next any) bool {
		if !lim.Allow() {
			return true
		}
		return base(prev, next)
	}
}
