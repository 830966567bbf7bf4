package cli

import (
	"path/filepath"
	"testing"

	"roozberooz/internal/habits"
	"roozberooz/internal/models"
	"roozberooz/internal/storage"
)

func newTestStore(t *testing.T) *habits.Store {
	t.Helper()
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "roozberooz.json"))
	if err := provider.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	store, err := habits.NewStore(provider, "tester")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestResolveHabitByPrefix(t *testing.T) {
	store := newTestStore(t)
	h := store.Add(models.NewHabitData{Title: "Read", Strategy: models.StrategyNone})

	got, err := resolveHabit(store, h.ID[:8])
	if err != nil {
		t.Fatalf("resolveHabit failed: %v", err)
	}
	if got.ID != h.ID {
		t.Errorf("resolved %s, want %s", got.ID, h.ID)
	}

	if _, err := resolveHabit(store, "does-not-exist"); err == nil {
		t.Error("expected error for unknown id")
	}

	if _, err := resolveHabit(store, ""); err == nil {
		t.Error("expected error for empty prefix matching every habit or none")
	}
}

func TestHabitAddBuildData(t *testing.T) {
	cmd := HabitAddCmd{
		Title:    "Meditate",
		Strategy: "21/90",
		Target:   90,
		Goal:     "calm mornings",
		Reminder: "07:00",
	}
	data := cmd.buildData()

	if data.Strategy != models.Strategy2190 {
		t.Errorf("Strategy = %s", data.Strategy)
	}
	if data.StrategyDetails.Rule2190 == nil || data.StrategyDetails.Rule2190.TargetDays != 90 {
		t.Errorf("Rule2190 = %+v", data.StrategyDetails.Rule2190)
	}
	if data.StrategyDetails.TwoMinute != nil || data.StrategyDetails.IfThen != nil {
		t.Error("unrelated strategy details should stay nil")
	}

	cmd = HabitAddCmd{Title: "Tidy desk", Strategy: "2-minute", Steps: "clear one item"}
	data = cmd.buildData()
	if data.StrategyDetails.TwoMinute == nil || data.StrategyDetails.TwoMinute.Steps != "clear one item" {
		t.Errorf("TwoMinute = %+v", data.StrategyDetails.TwoMinute)
	}
}

func TestHabitEditBuildDataDoesNotAliasHabit(t *testing.T) {
	h := models.Habit{
		ID:       "h1",
		Title:    "Tidy desk",
		Strategy: models.StrategyTwoMinute,
		StrategyDetails: models.StrategyDetails{
			TwoMinute: &models.TwoMinuteDetails{Steps: "clear one item"},
		},
	}

	cmd := HabitEditCmd{ID: "h1", Steps: "file one paper", Reminder: "99:99"}
	data := cmd.buildData(h)

	// The habit's own record must be untouched even though the input was
	// built (validation may still reject it).
	if h.StrategyDetails.TwoMinute.Steps != "clear one item" {
		t.Errorf("habit steps mutated to %q", h.StrategyDetails.TwoMinute.Steps)
	}
	if data.StrategyDetails.TwoMinute == h.StrategyDetails.TwoMinute {
		t.Error("built data shares the habit's TwoMinute pointer")
	}
	if data.StrategyDetails.TwoMinute.Steps != "file one paper" {
		t.Errorf("data steps = %q", data.StrategyDetails.TwoMinute.Steps)
	}
}

func TestFormatStatus(t *testing.T) {
	h := models.Habit{IsActive: true}
	if got := formatStatus(h); got != "active" {
		t.Errorf("formatStatus = %s", got)
	}
	h.IsActive = false
	if got := formatStatus(h); got != "paused" {
		t.Errorf("formatStatus = %s", got)
	}
	h.IsArchived = true
	if got := formatStatus(h); got != "archived" {
		t.Errorf("formatStatus = %s", got)
	}
}

func TestFormatStrategy(t *testing.T) {
	h := models.Habit{
		Strategy:        models.Strategy2190,
		StrategyDetails: models.StrategyDetails{Rule2190: &models.Rule2190Details{TargetDays: 21}},
	}
	if got := formatStrategy(h); got != "21/90 rule (21 days)" {
		t.Errorf("formatStrategy = %s", got)
	}
	if got := formatStrategy(models.Habit{Strategy: models.StrategyNone}); got != "no strategy" {
		t.Errorf("formatStrategy = %s", got)
	}
}
