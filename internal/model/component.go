package model

import (
	"errors"
	"fmt"
)

// Component is one part registered for the rescue tower.
// Plain value type: copying a Component copies everything it has.
type Component struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Priority int    `json:"priority" yaml:"priority"`
}

const (
	// MaxComponents is the hard upper bound on a dataset.
	MaxComponents = 20

	MinPriority = 1
	MaxPriority = 10

	DefaultNameMaxLen     = 29
	DefaultCategoryMaxLen = 19
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrEmptyCategory   = errors.New("empty category")
	ErrNameTooLong     = errors.New("name too long")
	ErrCategoryTooLong = errors.New("category too long")
	ErrPriorityRange   = fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
)

// Limits bounds the text fields of a Component, in bytes.
type Limits struct {
	NameMaxLen     int
	CategoryMaxLen int
}

func DefaultLimits() Limits {
	return Limits{NameMaxLen: DefaultNameMaxLen, CategoryMaxLen: DefaultCategoryMaxLen}
}

// Validate reports the first field of c that violates l.
func (c Component) Validate(l Limits) error {
	switch {
	case c.Name == "":
		return ErrEmptyName
	case l.NameMaxLen > 0 && len(c.Name) > l.NameMaxLen:
		return fmt.Errorf("%w: %d > %d bytes", ErrNameTooLong, len(c.Name), l.NameMaxLen)
	case c.Category == "":
		return ErrEmptyCategory
	case l.CategoryMaxLen > 0 && len(c.Category) > l.CategoryMaxLen:
		return fmt.Errorf("%w: %d > %d bytes", ErrCategoryTooLong, len(c.Category), l.CategoryMaxLen)
	case c.Priority < MinPriority || c.Priority > MaxPriority:
		return fmt.Errorf("%w, got %d", ErrPriorityRange, c.Priority)
	}
	return nil
}

// Clone returns an independent copy of src.
func Clone(src []Component) []Component {
	if src == nil {
		return nil
	}
	out := make([]Component, len(src))
	copy(out, src)
	return out
}
