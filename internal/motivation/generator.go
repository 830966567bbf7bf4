// Package motivation produces the one-line AI message shown after a
// check-in. The habit store only ever sees the final text; generator
// selection, timeouts and the fallback policy all live here, on the
// consumer side.
package motivation

import (
	"context"

	"roozberooz/internal/habits"
	"roozberooz/internal/logger"
)

// Input is the fixed contract handed to a generator.
type Input struct {
	HabitName     string
	DaysCompleted int
	TotalDays     int
	Successful    bool
}

// Output is a single short message in the UI's language.
type Output struct {
	Message string
}

// Generator produces a motivational message. Implementations may call out
// to a remote model; callers bound latency through ctx.
type Generator interface {
	Generate(ctx context.Context, in Input) (Output, error)
}

// Fallback is shown whenever the generator fails ("keep going, you can do
// it!"). It is never cached, so the next render tries the generator again.
const Fallback = "ادامه بده، تو می‌تونی!"

// ForHabit returns today's message for the given habit. A message already
// generated for today's calendar date is served from the habit's cache
// without touching the generator; a fresh result is cached before being
// returned.
func ForHabit(ctx context.Context, gen Generator, store *habits.Store, id string) string {
	h, ok := store.GetByID(id)
	if !ok {
		return ""
	}

	today := store.Today()
	if h.LastMotivation != nil && h.LastMotivation.Date == today {
		return h.LastMotivation.Message
	}

	out, err := gen.Generate(ctx, Input{
		HabitName:     h.Title,
		DaysCompleted: h.DaysCompleted,
		TotalDays:     h.TotalDays,
		Successful:    true,
	})
	if err != nil {
		logger.Warn("motivational message generation failed", "habit", h.Title, "error", err)
		return Fallback
	}

	store.SetMotivationalMessage(id, out.Message)
	return out.Message
}
