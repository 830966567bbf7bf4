// Package habits implements the habit state manager: the canonical
// in-memory collection of one identity's habits, its daily check-in and
// archive lifecycle rules, and the durable copy kept in sync through a
// storage.Provider.
package habits

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"roozberooz/internal/logger"
	"roozberooz/internal/models"
	"roozberooz/internal/storage"
	"roozberooz/internal/utils"
)

// Store owns the habit collection for one identity scope. It is not safe
// for concurrent use; all calls are expected on a single goroutine, and
// every mutation rewrites the full collection through the provider.
type Store struct {
	provider storage.Provider
	scope    string
	now      func() time.Time
	habits   []models.Habit
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the store's clock. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore loads the persisted collection for the given scope and applies
// the migration pass over every record, so older saved versions remain
// valid under the current schema.
func NewStore(provider storage.Provider, scope string, opts ...Option) (*Store, error) {
	s := &Store{
		provider: provider,
		scope:    scope,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := provider.LoadHabits(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	s.habits = migrate(loaded)

	return s, nil
}

// migrate backfills fields that were introduced after a record was created
// and re-asserts the structural invariants.
func migrate(habits []models.Habit) []models.Habit {
	migrated := make([]models.Habit, len(habits))
	for i, h := range habits {
		if !h.Strategy.Valid() {
			h.Strategy = models.StrategyNone
		}
		if h.TotalDays < 1 {
			h.TotalDays = 1
		}
		if h.DaysCompleted < 0 {
			h.DaysCompleted = 0
		}
		if h.DaysCompleted > h.TotalDays {
			h.DaysCompleted = h.TotalDays
		}
		if h.IsArchived {
			h.IsActive = false
		}
		migrated[i] = h
	}
	return migrated
}

// persist writes the full collection back through the provider. A failed
// write is logged and swallowed: the in-memory collection stays
// authoritative for the rest of the session.
func (s *Store) persist() {
	if err := s.provider.SaveHabits(s.scope, s.habits); err != nil {
		logger.Warn("failed to persist habits", "scope", s.scope, "error", err)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

// Today returns the current device-local calendar date (YYYY-MM-DD) under
// the store's clock.
func (s *Store) Today() string {
	return utils.DateOf(s.now())
}

// Add creates a habit from the given data, inserts it newest-first, and
// persists the collection. Input is assumed pre-validated by the form
// layer.
func (s *Store) Add(data models.NewHabitData) models.Habit {
	strategy := data.Strategy
	if !strategy.Valid() {
		strategy = models.StrategyNone
	}

	h := models.Habit{
		ID:              uuid.New().String(),
		Title:           data.Title,
		TotalDays:       ResolveTotalDays(data, 0),
		DaysCompleted:   0,
		IsActive:        true,
		IsArchived:      false,
		CreatedAt:       s.now(),
		GoalDescription: data.GoalDescription,
		Triggers:        data.Triggers,
		Strategy:        strategy,
		StrategyDetails: data.StrategyDetails,
	}

	s.habits = append(s.habits, h)
	sort.SliceStable(s.habits, func(i, j int) bool {
		return s.habits[i].CreatedAt.After(s.habits[j].CreatedAt)
	})
	s.persist()
	return h
}

// Update applies new title, duration and strategy fields to an existing
// habit. Identity, lifecycle flags, progress and the cached message are
// untouched. Returns false if no habit has the given id.
func (s *Store) Update(id string, data models.NewHabitData) (models.Habit, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, false
	}

	strategy := data.Strategy
	if !strategy.Valid() {
		strategy = models.StrategyNone
	}

	h := &s.habits[i]
	h.Title = data.Title
	h.TotalDays = ResolveTotalDays(data, h.TotalDays)
	h.GoalDescription = data.GoalDescription
	h.Triggers = data.Triggers
	h.Strategy = strategy
	h.StrategyDetails = data.StrategyDetails

	s.persist()
	return *h, true
}

// CompleteDay records today's check-in. The increment only applies when the
// habit is not archived, is active, has days remaining, and has no check-in
// recorded for today's calendar date; on any disqualifying condition the
// record is returned unchanged. Callers distinguish "did it change" by
// comparing LastCheckedIn against today after the call.
func (s *Store) CompleteDay(id string) (models.Habit, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, false
	}

	h := &s.habits[i]
	if h.IsArchived || !h.IsActive || h.DaysCompleted >= h.TotalDays {
		return *h, true
	}

	now := s.now()
	if h.LastCheckedIn != nil && utils.SameDay(*h.LastCheckedIn, now) {
		return *h, true
	}

	h.DaysCompleted++
	checkedIn := now
	h.LastCheckedIn = &checkedIn
	s.persist()
	return *h, true
}

// ToggleActive flips the active flag. Archived habits ignore the call.
func (s *Store) ToggleActive(id string) {
	i := s.indexOf(id)
	if i < 0 || s.habits[i].IsArchived {
		return
	}
	s.habits[i].IsActive = !s.habits[i].IsActive
	s.persist()
}

// Archive retires the habit from active tracking and forces it inactive.
// Idempotent.
func (s *Store) Archive(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.habits[i].IsArchived = true
	s.habits[i].IsActive = false
	s.persist()
}

// Unarchive returns the habit to the active list and forces it active.
// Idempotent.
func (s *Store) Unarchive(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.habits[i].IsArchived = false
	s.habits[i].IsActive = true
	s.persist()
}

// Delete removes the habit permanently. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	s.persist()
}

// SetMotivationalMessage caches a generated message under today's calendar
// date for the given habit.
func (s *Store) SetMotivationalMessage(id, message string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.habits[i].LastMotivation = &models.MotivationalMessage{
		Message: message,
		Date:    s.Today(),
	}
	s.persist()
}

// GetByID returns the habit with the given id, if any. Pure lookup.
func (s *Store) GetByID(id string) (models.Habit, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.habits[i], true
}

// List returns a copy of the collection, newest first. Consumers filter and
// sort for presentation.
func (s *Store) List() []models.Habit {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits
}
