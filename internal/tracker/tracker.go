// Package tracker implements the local health-tracking store: an append-only
// weight history with derived progress metrics, per-day meal selections, and
// a per-day water intake counter. All mutations are synchronous and total;
// derived values are computed on read by pure selector functions over an
// immutable snapshot.
package tracker

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/okoshkina/fittrack/internal/models"
)

// Clock supplies the current time. Injected so tests can move the calendar.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Saver receives a copy of the state tree after every mutation. Saves are
// best effort: errors are logged and never surfaced to the caller.
type Saver interface {
	Save(models.Snapshot) error
}

// Store is the single source of truth for tracker state. It is safe for
// concurrent use, though the expected access pattern is a single writer.
type Store struct {
	mu    sync.Mutex
	state models.Snapshot
	seed  []models.Meal
	clock Clock
	saver Saver
	log   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, used by tests to cross day boundaries.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithSaver attaches a persistence adapter fired after each mutation.
func WithSaver(sv Saver) Option {
	return func(s *Store) { s.saver = sv }
}

// WithLogger attaches a logger for save failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithState rehydrates the store from a previously persisted snapshot.
func WithState(snap models.Snapshot) Option {
	return func(s *Store) { s.state = cloneSnapshot(snap) }
}

// New creates a Store seeded with the given meal template. The template is
// deep-copied into the state and kept aside for daily resets.
func New(seed []models.Meal, opts ...Option) *Store {
	s := &Store{
		seed:  cloneMeals(seed),
		clock: systemClock{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state.Meals.Meals == nil {
		today := dayOf(s.clock.Now())
		s.state.Meals = models.MealState{Meals: cloneMeals(seed), LastResetDate: today}
		if s.state.Water.Goal == 0 {
			s.state.Water.Goal = defaultWaterGoal
		}
		if s.state.Water.LastResetDate == "" {
			s.state.Water.LastResetDate = today
		}
	}
	return s
}

// Snapshot returns a deep copy of the current state for selectors and
// persistence. Callers may hold it across mutations without interference.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.state)
}

// Replace swaps the whole state tree, used when the sync server holds a
// newer snapshot than the local one.
func (s *Store) Replace(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneSnapshot(snap)
}

// persist bumps the version and hands a copy of the state to the saver.
// Must be called with the lock held. The write happens out of band; a crash
// before it completes loses at most the latest change.
func (s *Store) persist() {
	s.state.Version++
	if s.saver == nil {
		return
	}
	snap := cloneSnapshot(s.state)
	go func() {
		if err := s.saver.Save(snap); err != nil {
			s.log.Warn("state save failed", zap.Int64("version", snap.Version), zap.Error(err))
		}
	}()
}

func cloneSnapshot(snap models.Snapshot) models.Snapshot {
	out := snap
	out.Profile.WeightHistory = append([]models.WeightEntry(nil), snap.Profile.WeightHistory...)
	out.Meals.Meals = cloneMeals(snap.Meals.Meals)
	out.Water.Logs = append([]models.WaterLog(nil), snap.Water.Logs...)
	return out
}

func cloneMeals(meals []models.Meal) []models.Meal {
	if meals == nil {
		return nil
	}
	out := make([]models.Meal, len(meals))
	for i, m := range meals {
		out[i] = m
		out[i].Categories = make([]models.MealCategory, len(m.Categories))
		for j, c := range m.Categories {
			out[i].Categories[j] = c
			out[i].Categories[j].Options = append([]models.MealOption(nil), c.Options...)
		}
	}
	return out
}
