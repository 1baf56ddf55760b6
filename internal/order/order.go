// Package order defines the total orders used to arrange components.
package order

import (
	"cmp"
	"strings"

	"github.com/idilsaglam/freefire/internal/model"
)

// Compare returns a negative number when a sorts before b, zero when they
// tie and a positive number otherwise.
type Compare func(a, b model.Component) int

// ByName orders by name, byte-wise.
func ByName(a, b model.Component) int { return strings.Compare(a.Name, b.Name) }

// ByCategory orders by category, byte-wise.
func ByCategory(a, b model.Component) int { return strings.Compare(a.Category, b.Category) }

// ByPriority orders by priority, lowest first.
func ByPriority(a, b model.Component) int { return cmp.Compare(a.Priority, b.Priority) }

// Counting wraps c so that every call adds exactly one to *n.
func Counting(c Compare, n *int64) Compare {
	return func(a, b model.Component) int {
		*n++
		return c(a, b)
	}
}
