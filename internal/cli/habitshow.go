package cli

import (
	"fmt"

	"roozberooz/internal/constants"
)

type HabitShowCmd struct {
	ID string `arg:"" help:"Habit ID (or unambiguous prefix)."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", h.Title)
	fmt.Printf("  ID:       %s\n", h.ID)
	fmt.Printf("  Status:   %s\n", formatStatus(h))
	fmt.Printf("  Progress: %s\n", formatProgress(h))
	fmt.Printf("  Strategy: %s\n", formatStrategy(h))
	fmt.Printf("  Created:  %s\n", h.CreatedAt.Format(constants.DateFormat))

	if h.LastCheckedIn != nil {
		fmt.Printf("  Last check-in: %s\n", h.LastCheckedIn.Format(constants.DateFormat))
	}
	fmt.Printf("  Missed days:   %d\n", store.UnsuccessfulDays(h))

	if h.GoalDescription != "" {
		fmt.Printf("  Goal:     %s\n", h.GoalDescription)
	}
	if h.Triggers != "" {
		fmt.Printf("  Triggers: %s\n", h.Triggers)
	}
	if d := h.StrategyDetails.TwoMinute; d != nil && d.Steps != "" {
		fmt.Printf("  Steps:    %s\n", d.Steps)
	}
	if d := h.StrategyDetails.IfThen; d != nil && d.Rules != "" {
		fmt.Printf("  Plans:    %s\n", d.Rules)
	}
	if rt := h.StrategyDetails.ReminderTime; rt != "" {
		fmt.Printf("  Reminder: %s\n", rt)
	}
	if h.LastMotivation != nil {
		fmt.Printf("  Last message (%s): %s\n", h.LastMotivation.Date, h.LastMotivation.Message)
	}
	return nil
}
