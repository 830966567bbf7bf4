package cli

import (
	"fmt"

	"roozberooz/internal/models"
	"roozberooz/internal/validation"
)

type HabitEditCmd struct {
	ID       string `arg:"" help:"Habit ID (or unambiguous prefix)."`
	Title    string `help:"New title."`
	Days     int    `short:"d" help:"New target number of days."`
	Strategy string `short:"s" help:"New strategy (none|21/90|40-day|2-minute|if-then)."`
	Target   int    `short:"t" help:"Target days for the 21/90 rule (21 or 90)."`
	Goal     string `short:"g" help:"New goal description."`
	Triggers string `help:"New triggers."`
	Steps    string `help:"New 2-minute steps."`
	Rules    string `help:"New if-then plans."`
	Reminder string `short:"r" help:"New reminder time (HH:MM)."`
	Start    string `help:"New start date (YYYY-MM-DD)."`
}

// buildData merges the set flags over the habit's current values. The
// variant records are cloned up front; the habit handed in must stay
// untouched until validation has passed.
func (c *HabitEditCmd) buildData(h models.Habit) models.NewHabitData {
	data := models.NewHabitData{
		Title:           h.Title,
		GoalDescription: h.GoalDescription,
		Triggers:        h.Triggers,
		Strategy:        h.Strategy,
		StrategyDetails: cloneDetails(h.StrategyDetails),
		TotalDaysInput:  c.Days,
	}
	if c.Title != "" {
		data.Title = c.Title
	}
	if c.Goal != "" {
		data.GoalDescription = c.Goal
	}
	if c.Triggers != "" {
		data.Triggers = c.Triggers
	}
	if c.Reminder != "" {
		data.StrategyDetails.ReminderTime = c.Reminder
	}
	if c.Start != "" {
		data.StrategyDetails.StartDate = c.Start
	}

	if c.Strategy != "" {
		data.Strategy = models.Strategy(c.Strategy)
		data.StrategyDetails.Rule2190 = nil
		data.StrategyDetails.TwoMinute = nil
		data.StrategyDetails.IfThen = nil
	}
	switch data.Strategy {
	case models.Strategy2190:
		if c.Target != 0 || data.StrategyDetails.Rule2190 == nil {
			data.StrategyDetails.Rule2190 = &models.Rule2190Details{TargetDays: c.Target}
		}
	case models.StrategyTwoMinute:
		if data.StrategyDetails.TwoMinute == nil {
			data.StrategyDetails.TwoMinute = &models.TwoMinuteDetails{}
		}
		if c.Steps != "" {
			data.StrategyDetails.TwoMinute.Steps = c.Steps
		}
	case models.StrategyIfThen:
		if data.StrategyDetails.IfThen == nil {
			data.StrategyDetails.IfThen = &models.IfThenDetails{}
		}
		if c.Rules != "" {
			data.StrategyDetails.IfThen.Rules = c.Rules
		}
	}

	return data
}

// cloneDetails copies the variant records so the result shares no pointers
// with its source.
func cloneDetails(d models.StrategyDetails) models.StrategyDetails {
	if d.Rule2190 != nil {
		v := *d.Rule2190
		d.Rule2190 = &v
	}
	if d.TwoMinute != nil {
		v := *d.TwoMinute
		d.TwoMinute = &v
	}
	if d.IfThen != nil {
		v := *d.IfThen
		d.IfThen = &v
	}
	return d
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	data := c.buildData(h)
	if err := validation.ValidateHabitData(data); err != nil {
		return err
	}

	updated, ok := store.Update(h.ID, data)
	if !ok {
		return fmt.Errorf("no habit found with id %q", h.ID)
	}
	fmt.Printf("Updated habit: %s (%s, %s)\n",
		updated.Title, formatStrategy(updated), formatProgress(updated))
	return nil
}
