package habits

import (
	"testing"
	"time"

	"roozberooz/internal/models"
)

func TestUnsuccessfulDays_CountsMissedDays(t *testing.T) {
	store, _, clk := newTestStore(t)
	h := store.Add(models.NewHabitData{Title: "Read daily", TotalDaysInput: 30})

	// Five calendar days pass with a single check-in on the first day.
	store.CompleteDay(h.ID)
	clk.Advance(5 * 24 * time.Hour)

	got, _ := store.GetByID(h.ID)
	if missed := store.UnsuccessfulDays(got); missed != 4 {
		t.Errorf("UnsuccessfulDays = %d, want 4 (5 elapsed, 1 completed)", missed)
	}
}

func TestUnsuccessfulDays_ExcludesTodaysCheckIn(t *testing.T) {
	store, _, clk := newTestStore(t)
	h := store.Add(models.NewHabitData{Title: "Read daily", TotalDaysInput: 30})

	clk.Advance(3 * 24 * time.Hour)
	store.CompleteDay(h.ID)

	// Today's completion must not count against the 3 elapsed days.
	got, _ := store.GetByID(h.ID)
	if missed := store.UnsuccessfulDays(got); missed != 3 {
		t.Errorf("UnsuccessfulDays = %d, want 3", missed)
	}
}

func TestUnsuccessfulDays_NeverNegative(t *testing.T) {
	store, _, _ := newTestStore(t)
	h := store.Add(models.NewHabitData{Title: "Brand new"})

	got, _ := store.GetByID(h.ID)
	if missed := store.UnsuccessfulDays(got); missed != 0 {
		t.Errorf("UnsuccessfulDays = %d on creation day, want 0", missed)
	}
}

func TestSummary_SkipsArchivedHabits(t *testing.T) {
	store, _, clk := newTestStore(t)

	a := store.Add(models.NewHabitData{Title: "Read", TotalDaysInput: 30})
	b := store.Add(models.NewHabitData{Title: "Exercise", TotalDaysInput: 30})
	retired := store.Add(models.NewHabitData{Title: "Old", TotalDaysInput: 30})

	store.CompleteDay(a.ID)
	clk.Advance(24 * time.Hour)
	store.CompleteDay(a.ID)
	store.CompleteDay(b.ID)
	store.CompleteDay(retired.ID)
	store.Archive(retired.ID)

	sum := store.Summary()
	if sum.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2", sum.TotalHabits)
	}
	if sum.SuccessfulDays != 3 {
		t.Errorf("SuccessfulDays = %d, want 3", sum.SuccessfulDays)
	}
	// One elapsed day for each non-archived habit; "Read" covered it,
	// "Exercise" only checked in today.
	if sum.UnsuccessfulDays != 1 {
		t.Errorf("UnsuccessfulDays = %d, want 1", sum.UnsuccessfulDays)
	}
}
