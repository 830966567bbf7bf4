package cli

import (
	"fmt"
	"strings"

	"roozberooz/internal/habits"
	"roozberooz/internal/models"
	"roozberooz/internal/motivation"
	"roozberooz/internal/session"
	"roozberooz/internal/storage"
)

type Context struct {
	Provider  storage.Provider
	Session   *session.Manager
	Generator motivation.Generator
}

// OpenStore loads the backend and opens the habit store for the signed-in
// identity.
func (c *Context) OpenStore() (*habits.Store, error) {
	if err := c.Provider.Load(); err != nil {
		return nil, err
	}
	scope, err := c.Session.Current()
	if err != nil {
		return nil, err
	}
	return habits.NewStore(c.Provider, scope)
}

func formatStrategy(h models.Habit) string {
	switch h.Strategy {
	case models.Strategy2190:
		if d := h.StrategyDetails.Rule2190; d != nil && d.TargetDays > 0 {
			return fmt.Sprintf("21/90 rule (%d days)", d.TargetDays)
		}
		return "21/90 rule"
	case models.Strategy40Day:
		return "40-day rule"
	case models.StrategyTwoMinute:
		return "2-minute rule"
	case models.StrategyIfThen:
		return "if-then planning"
	default:
		return "no strategy"
	}
}

func formatStatus(h models.Habit) string {
	switch {
	case h.IsArchived:
		return "archived"
	case !h.IsActive:
		return "paused"
	default:
		return "active"
	}
}

func formatProgress(h models.Habit) string {
	return fmt.Sprintf("%d/%d days", h.DaysCompleted, h.TotalDays)
}

// resolveHabit accepts a full id or an unambiguous id prefix.
func resolveHabit(store *habits.Store, ref string) (models.Habit, error) {
	if ref == "" {
		return models.Habit{}, fmt.Errorf("habit id is required")
	}
	if h, ok := store.GetByID(ref); ok {
		return h, nil
	}

	var matches []models.Habit
	for _, h := range store.List() {
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("no habit found with id %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}
