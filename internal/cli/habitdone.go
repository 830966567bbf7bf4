package cli

import (
	"context"
	"fmt"
	"time"

	"roozberooz/internal/motivation"
	"roozberooz/internal/utils"
)

type HabitDoneCmd struct {
	ID    string `arg:"" help:"Habit ID (or unambiguous prefix)."`
	Quiet bool   `short:"q" help:"Skip the motivational message."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	before := h.DaysCompleted
	h, _ = store.CompleteDay(h.ID)

	switch {
	case h.DaysCompleted > before:
		fmt.Printf("Checked in: %s (%s)\n", h.Title, formatProgress(h))
	case h.IsArchived:
		fmt.Printf("%s is archived and cannot be checked in\n", h.Title)
		return nil
	case !h.IsActive:
		fmt.Printf("%s is paused; resume it first\n", h.Title)
		return nil
	case h.DaysCompleted >= h.TotalDays:
		fmt.Printf("%s has already reached its %d-day goal 🎉\n", h.Title, h.TotalDays)
	case h.LastCheckedIn != nil && utils.SameDay(*h.LastCheckedIn, time.Now()):
		fmt.Printf("Already checked in today: %s (%s)\n", h.Title, formatProgress(h))
	}

	if c.Quiet {
		return nil
	}

	message := motivation.Fallback
	if ctx.Generator != nil {
		genCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		message = motivation.ForHabit(genCtx, ctx.Generator, store, h.ID)
	}
	if message != "" {
		fmt.Printf("\n  %s\n", message)
	}
	return nil
}
