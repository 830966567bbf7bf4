package storage

import (
	"path/filepath"
	"testing"
	"time"

	"roozberooz/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "roozberooz.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_HabitsRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	checkedIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{
			ID:            "h2",
			Title:         "Exercise",
			TotalDays:     90,
			DaysCompleted: 10,
			IsActive:      true,
			CreatedAt:     time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
			Strategy:      models.Strategy2190,
			StrategyDetails: models.StrategyDetails{
				ReminderTime: "07:30",
				Rule2190:     &models.Rule2190Details{TargetDays: 90},
			},
			LastCheckedIn: &checkedIn,
			LastMotivation: &models.MotivationalMessage{
				Message: "عالی بود! 🌟",
				Date:    "2025-06-10",
			},
		},
		{
			ID:         "h1",
			Title:      "Old habit",
			TotalDays:  21,
			IsArchived: true,
			CreatedAt:  time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
			Strategy:   models.StrategyNone,
		},
	}

	if err := s.SaveHabits("user-1", habits); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	got, err := s.LoadHabits("user-1")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(got))
	}

	// Collection order is preserved.
	if got[0].ID != "h2" || got[1].ID != "h1" {
		t.Errorf("order changed: %s, %s", got[0].ID, got[1].ID)
	}

	h := got[0]
	if h.Title != "Exercise" || h.TotalDays != 90 || h.DaysCompleted != 10 {
		t.Errorf("habit mismatch: %+v", h)
	}
	if h.LastCheckedIn == nil || !h.LastCheckedIn.Equal(checkedIn) {
		t.Errorf("LastCheckedIn = %v", h.LastCheckedIn)
	}
	if h.StrategyDetails.Rule2190 == nil || h.StrategyDetails.Rule2190.TargetDays != 90 {
		t.Errorf("StrategyDetails = %+v", h.StrategyDetails)
	}
	if h.LastMotivation == nil || h.LastMotivation.Date != "2025-06-10" {
		t.Errorf("LastMotivation = %+v", h.LastMotivation)
	}
}

func TestSQLiteStore_SaveReplacesCollection(t *testing.T) {
	s := newTestSQLiteStore(t)

	base := models.Habit{TotalDays: 21, CreatedAt: time.Now().UTC(), Strategy: models.StrategyNone}
	a, b := base, base
	a.ID, a.Title = "a", "A"
	b.ID, b.Title = "b", "B"

	if err := s.SaveHabits("user-1", []models.Habit{a, b}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	if err := s.SaveHabits("user-1", []models.Habit{b}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	got, err := s.LoadHabits("user-1")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("expected only habit b to remain, got %d habits", len(got))
	}
}

func TestSQLiteStore_ScopesAreIsolated(t *testing.T) {
	s := newTestSQLiteStore(t)

	h := models.Habit{ID: "h1", Title: "Read", TotalDays: 21, CreatedAt: time.Now().UTC(), Strategy: models.StrategyNone}
	if err := s.SaveHabits("user-1", []models.Habit{h}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	other, err := s.LoadHabits("user-2")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(other) != 0 {
		t.Error("habits leaked into another scope")
	}
}

func TestSQLiteStore_ProfileUpsert(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.SaveProfile("user-1", models.Profile{FirstName: "Sara"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := s.SaveProfile("user-1", models.Profile{FirstName: "Sara", LastName: "Ahmadi", SetupComplete: true}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := s.LoadProfile("user-1")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got.LastName != "Ahmadi" || !got.SetupComplete {
		t.Errorf("profile = %+v", got)
	}

	missing, err := s.LoadProfile("user-2")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if missing.FirstName != "" {
		t.Error("expected zero profile for unknown scope")
	}
}
