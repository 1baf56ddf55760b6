// Package search implements binary search over name-sorted components.
package search

import (
	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/order"
)

// NotFound is the index reported when the key is absent.
const NotFound = -1

// Result is the outcome of one search. A miss is not an error.
type Result struct {
	Index       int
	Found       bool
	Comparisons int64
}

// ByName looks for key in items, which must already be sorted ascending
// by order.ByName. On unsorted input the answer is meaningless: callers
// own that precondition. Each probe counts as one comparison.
func ByName(items []model.Component, key string) Result {
	var n int64
	compare := order.Counting(order.ByName, &n)
	probe := model.Component{Name: key}

	low, high := 0, len(items)-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := compare(probe, items[mid]); {
		case c == 0:
			return Result{Index: mid, Found: true, Comparisons: n}
		case c < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return Result{Index: NotFound, Comparisons: n}
}
