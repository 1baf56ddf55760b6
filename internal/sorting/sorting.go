// Package sorting holds the three instrumented in-place sorts.
//
// Each algorithm takes the comparator it orders by and returns how many
// comparisons it made. Short inputs (0 or 1 elements) cost nothing.
package sorting

import (
	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/order"
)

// Bubble is the early-exit bubble sort: a pass without swaps ends it.
func Bubble(items []model.Component, cmp order.Compare) int64 {
	var n int64
	less := order.Counting(cmp, &n)
	for i := 0; i < len(items)-1; i++ {
		swapped := false
		for j := 0; j < len(items)-1-i; j++ {
			if less(items[j], items[j+1]) > 0 {
				items[j], items[j+1] = items[j+1], items[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return n
}

// Insertion shifts each element left past every greater one. The check
// that stops the shift is counted too. Stable.
func Insertion(items []model.Component, cmp order.Compare) int64 {
	var n int64
	less := order.Counting(cmp, &n)
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && less(items[j], key) > 0 {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
	return n
}

// Selection scans left to right for the leftmost minimum of the unsorted
// suffix and swaps it into place. Not stable.
func Selection(items []model.Component, cmp order.Compare) int64 {
	var n int64
	less := order.Counting(cmp, &n)
	for i := 0; i < len(items)-1; i++ {
		least := i
		for j := i + 1; j < len(items); j++ {
			if less(items[j], items[least]) < 0 {
				least = j
			}
		}
		if least != i {
			items[i], items[least] = items[least], items[i]
		}
	}
	return n
}
