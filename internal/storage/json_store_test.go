package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"roozberooz/internal/models"
)

func TestJSONStore_InitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roozberooz.json")
	s := NewJSONStore(path)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Init(); err == nil {
		t.Error("expected error when initializing twice")
	}
}

func TestJSONStore_MissingFileStartsEmpty(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "roozberooz.json"))

	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	habits, err := s.LoadHabits("user-1")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected empty collection, got %d", len(habits))
	}
}

func TestJSONStore_UnparsableFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roozberooz.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	habits, err := s.LoadHabits("user-1")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected empty collection, got %d", len(habits))
	}
}

func TestJSONStore_ScopedHabits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roozberooz.json")
	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	checkedIn := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	habit := models.Habit{
		ID:            "h1",
		Title:         "Read daily",
		TotalDays:     21,
		DaysCompleted: 3,
		IsActive:      true,
		CreatedAt:     time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local),
		LastCheckedIn: &checkedIn,
		Strategy:      models.StrategyNone,
		LastMotivation: &models.MotivationalMessage{
			Message: "آفرین!",
			Date:    "2025-06-10",
		},
	}
	if err := s.SaveHabits("user-1", []models.Habit{habit}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	// Reload from disk.
	s2 := NewJSONStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	habits, err := s2.LoadHabits("user-1")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	got := habits[0]
	if got.Title != habit.Title || got.DaysCompleted != 3 || got.TotalDays != 21 {
		t.Errorf("habit mismatch: %+v", got)
	}
	if got.LastCheckedIn == nil || !got.LastCheckedIn.Equal(checkedIn) {
		t.Errorf("LastCheckedIn = %v", got.LastCheckedIn)
	}
	if got.LastMotivation == nil || got.LastMotivation.Message != "آفرین!" {
		t.Errorf("LastMotivation = %+v", got.LastMotivation)
	}

	other, err := s2.LoadHabits("user-2")
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(other) != 0 {
		t.Error("habits leaked into another scope")
	}
}

func TestJSONStore_Profile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roozberooz.json")
	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, err := s.LoadProfile("user-1")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if p.SetupComplete {
		t.Error("expected zero profile for unknown scope")
	}

	if err := s.SaveProfile("user-1", models.Profile{FirstName: "Sara", SetupComplete: true}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	s2 := NewJSONStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := s2.LoadProfile("user-1")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got.FirstName != "Sara" || !got.SetupComplete {
		t.Errorf("profile = %+v", got)
	}
}
