package cli

import (
	"fmt"

	"roozberooz/internal/models"
	"roozberooz/internal/validation"
)

type HabitAddCmd struct {
	Title    string `arg:"" help:"Habit title."`
	Days     int    `short:"d" help:"Target number of days (ignored when the strategy fixes a duration)."`
	Strategy string `short:"s" help:"Strategy (none|21/90|40-day|2-minute|if-then)." default:"none"`
	Target   int    `short:"t" help:"Target days for the 21/90 rule (21 or 90)."`
	Goal     string `short:"g" help:"What reaching this habit means to you."`
	Triggers string `help:"Cues or situations that trigger this habit."`
	Steps    string `help:"Tiny first steps for the 2-minute rule."`
	Rules    string `help:"If-then plans, one per line."`
	Reminder string `short:"r" help:"Daily reminder time (HH:MM)."`
	Start    string `help:"Start date (YYYY-MM-DD)."`
}

func (c *HabitAddCmd) buildData() models.NewHabitData {
	data := models.NewHabitData{
		Title:           c.Title,
		GoalDescription: c.Goal,
		Triggers:        c.Triggers,
		Strategy:        models.Strategy(c.Strategy),
		TotalDaysInput:  c.Days,
		StrategyDetails: models.StrategyDetails{
			StartDate:    c.Start,
			ReminderTime: c.Reminder,
		},
	}

	switch data.Strategy {
	case models.Strategy2190:
		data.StrategyDetails.Rule2190 = &models.Rule2190Details{TargetDays: c.Target}
	case models.StrategyTwoMinute:
		data.StrategyDetails.TwoMinute = &models.TwoMinuteDetails{Steps: c.Steps}
	case models.StrategyIfThen:
		data.StrategyDetails.IfThen = &models.IfThenDetails{Rules: c.Rules}
	}

	return data
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	data := c.buildData()
	if err := validation.ValidateHabitData(data); err != nil {
		return err
	}

	h := store.Add(data)
	fmt.Printf("Added habit: %s (ID: %s)\n", h.Title, h.ID)
	fmt.Printf("  %s, %s\n", formatStrategy(h), formatProgress(h))
	return nil
}
