package habits

import (
	"roozberooz/internal/models"
	"roozberooz/internal/utils"
)

// Summary aggregates the dashboard statistics over non-archived habits.
type Summary struct {
	TotalHabits      int
	SuccessfulDays   int
	UnsuccessfulDays int
}

// UnsuccessfulDays estimates how many elapsed days the habit was missed:
// whole days from creation until today, minus completions recorded before
// today, clamped at zero. A check-in earned today is excluded from the
// completion count so it is not both "completed" and "elapsed but not yet
// due". This is a heuristic, not a per-day ledger.
func (s *Store) UnsuccessfulDays(h models.Habit) int {
	now := s.now()
	elapsed := utils.DaysBetween(h.CreatedAt, now)
	if elapsed < 0 {
		elapsed = 0
	}

	completionsBeforeToday := h.DaysCompleted
	if h.LastCheckedIn != nil && utils.SameDay(*h.LastCheckedIn, now) && completionsBeforeToday > 0 {
		completionsBeforeToday--
	}

	missed := elapsed - completionsBeforeToday
	if missed < 0 {
		return 0
	}
	return missed
}

// Summary computes the derived statistics over the current collection.
func (s *Store) Summary() Summary {
	var sum Summary
	for _, h := range s.habits {
		if h.IsArchived {
			continue
		}
		sum.TotalHabits++
		sum.SuccessfulDays += h.DaysCompleted
		sum.UnsuccessfulDays += s.UnsuccessfulDays(h)
	}
	return sum
}
