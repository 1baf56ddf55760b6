package sorting

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/order"
)

// Key names the field a strategy orders by.
type Key int

const (
	KeyName Key = iota
	KeyCategory
	KeyPriority
)

func (k Key) String() string {
	switch k {
	case KeyName:
		return "name"
	case KeyCategory:
		return "category"
	case KeyPriority:
		return "priority"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey accepts the lowercase field names printed by Key.String.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KeyName, nil
	case "category", "type":
		return KeyCategory, nil
	case "priority":
		return KeyPriority, nil
	}
	return 0, fmt.Errorf("unknown sort key %q (want name, category or priority)", s)
}

// Strategy binds one algorithm to the field it sorts.
type Strategy struct {
	Key       Key
	Algorithm string
	Compare   order.Compare
	run       func([]model.Component, order.Compare) int64
}

// Label is the human name used in reports, e.g. "Bubble Sort (name)".
func (s Strategy) Label() string { return fmt.Sprintf("%s (%s)", s.Algorithm, s.Key) }

// Run sorts items in place and returns the comparison count.
func (s Strategy) Run(items []model.Component) int64 { return s.run(items, s.Compare) }

var strategies = [...]Strategy{
	KeyName:     {Key: KeyName, Algorithm: "Bubble Sort", Compare: order.ByName, run: Bubble},
	KeyCategory: {Key: KeyCategory, Algorithm: "Insertion Sort", Compare: order.ByCategory, run: Insertion},
	KeyPriority: {Key: KeyPriority, Algorithm: "Selection Sort", Compare: order.ByPriority, run: Selection},
}

// For returns the strategy that sorts by k.
func For(k Key) (Strategy, error) {
	if k < 0 || int(k) >= len(strategies) {
		return Strategy{}, fmt.Errorf("no strategy for %s", k)
	}
	return strategies[k], nil
}

// All lists the strategies in menu order.
func All() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies[:])
	return out
}
