// Package session owns the dataset and tracks whether the working copy may
// be binary searched.
//
// A Session keeps two sequences: the original components, in the order they
// were entered, and a working copy that every sort rebuilds from the
// original before reordering it. Only a completed name sort leaves the
// session in StateSortedByName; entering data or sorting by any other field
// drops it back to StateUnsorted.
package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/freefire/internal/model"
	"github.com/idilsaglam/freefire/internal/search"
	"github.com/idilsaglam/freefire/internal/sorting"
)

var (
	ErrEmptyDataset    = errors.New("no components registered")
	ErrNotSortedByName = errors.New("binary search requires a name sort first")
	ErrCapacity        = errors.New("capacity reached")
)

// State is the search precondition tracked by a Session.
type State int

const (
	StateUnsorted State = iota
	StateSortedByName
)

func (s State) String() string {
	if s == StateSortedByName {
		return "sorted-by-name"
	}
	return "unsorted"
}

// Report describes one sort run.
type Report struct {
	Algorithm   string
	Key         sorting.Key
	Comparisons int64
	Elapsed     time.Duration
	Items       []model.Component
}

// SearchResult is a search.Result plus the matched component, if any.
type SearchResult struct {
	search.Result
	Key       string
	Component model.Component
}

type Options struct {
	Capacity int
	Limits   model.Limits
	Logger   *zap.Logger
}

type Session struct {
	capacity int
	limits   model.Limits
	log      *zap.Logger

	original []model.Component
	working  []model.Component
	state    State

	now func() time.Time
}

// New returns an empty, unsorted session. A capacity outside
// 1..model.MaxComponents is clamped to model.MaxComponents.
func New(opt Options) *Session {
	c := opt.Capacity
	if c <= 0 || c > model.MaxComponents {
		c = model.MaxComponents
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		capacity: c,
		limits:   opt.Limits,
		log:      log,
		original: make([]model.Component, 0, c),
		working:  make([]model.Component, 0, c),
		now:      time.Now,
	}
}

func (s *Session) Capacity() int        { return s.capacity }
func (s *Session) Len() int             { return len(s.original) }
func (s *Session) Room() int            { return s.capacity - len(s.original) }
func (s *Session) State() State         { return s.state }
func (s *Session) Limits() model.Limits { return s.limits }

// Original returns a copy of the components as entered.
func (s *Session) Original() []model.Component { return model.Clone(s.original) }

// Working returns a copy of the last sorted sequence. Before any sort it
// mirrors the original.
func (s *Session) Working() []model.Component { return model.Clone(s.working) }

// Enter appends records in order until one fails validation or the session
// is full, and returns the new count. The error says why entry stopped
// early; it is nil when every record was accepted. The session is always
// left unsorted, even when records is empty.
func (s *Session) Enter(records []model.Component) (int, error) {
	s.state = StateUnsorted

	var stop error
	accepted := 0
	for i, r := range records {
		if len(s.original) >= s.capacity {
			stop = fmt.Errorf("%w: %d components, %d not entered", ErrCapacity, s.capacity, len(records)-i)
			break
		}
		if err := r.Validate(s.limits); err != nil {
			stop = fmt.Errorf("component #%d: %w", len(s.original)+1, err)
			break
		}
		s.original = append(s.original, r)
		accepted++
	}
	s.working = append(s.working[:0], s.original...)

	s.log.Debug("enter",
		zap.Int("accepted", accepted),
		zap.Int("count", len(s.original)),
		zap.Stringer("state", s.state),
		zap.Error(stop),
	)
	return len(s.original), stop
}

// Replace discards every component and enters records.
func (s *Session) Replace(records []model.Component) (int, error) {
	s.original = s.original[:0]
	s.working = s.working[:0]
	return s.Enter(records)
}

// Sort copies the original into the working copy and orders it with the
// strategy for key. Only a name sort makes the session searchable.
func (s *Session) Sort(key sorting.Key) (Report, error) {
	strategy, err := sorting.For(key)
	if err != nil {
		return Report{}, err
	}
	if len(s.original) == 0 {
		s.log.Info("sort rejected", zap.Stringer("key", key), zap.Error(ErrEmptyDataset))
		return Report{Algorithm: strategy.Label(), Key: key}, ErrEmptyDataset
	}

	s.working = append(s.working[:0], s.original...)
	comparisons, elapsed := s.measure(strategy.Run)

	if key == sorting.KeyName {
		s.state = StateSortedByName
	} else {
		s.state = StateUnsorted
	}

	s.log.Debug("sort",
		zap.String("algorithm", strategy.Label()),
		zap.Int("count", len(s.working)),
		zap.Int64("comparisons", comparisons),
		zap.Duration("elapsed", elapsed),
		zap.Stringer("state", s.state),
	)
	return Report{
		Algorithm:   strategy.Label(),
		Key:         key,
		Comparisons: comparisons,
		Elapsed:     elapsed,
		Items:       model.Clone(s.working),
	}, nil
}

func (s *Session) SortByName() (Report, error)     { return s.Sort(sorting.KeyName) }
func (s *Session) SortByCategory() (Report, error) { return s.Sort(sorting.KeyCategory) }
func (s *Session) SortByPriority() (Report, error) { return s.Sort(sorting.KeyPriority) }

// Search binary searches the working copy for a component named key. It
// refuses to run, with zero comparisons, unless the last operation left the
// session sorted by name. The state is unchanged either way.
func (s *Session) Search(key string) (SearchResult, error) {
	miss := SearchResult{Result: search.Result{Index: search.NotFound}, Key: key}
	if len(s.original) == 0 {
		s.log.Info("search rejected", zap.String("key", key), zap.Error(ErrEmptyDataset))
		return miss, ErrEmptyDataset
	}
	if s.state != StateSortedByName {
		s.log.Info("search rejected", zap.String("key", key), zap.Error(ErrNotSortedByName))
		return miss, ErrNotSortedByName
	}

	res := search.ByName(s.working, key)
	out := SearchResult{Result: res, Key: key}
	if res.Found {
		out.Component = s.working[res.Index]
	}
	s.log.Debug("search",
		zap.String("key", key),
		zap.Bool("found", res.Found),
		zap.Int("index", res.Index),
		zap.Int64("comparisons", res.Comparisons),
	)
	return out, nil
}

func (s *Session) measure(run func([]model.Component) int64) (int64, time.Duration) {
	start := s.now()
	n := run(s.working)
	return n, s.now().Sub(start)
}
