// Package validation holds the form-layer checks performed before habit
// data reaches the store. The store itself assumes pre-validated input.
package validation

import (
	"fmt"
	"strings"

	"roozberooz/internal/constants"
	"roozberooz/internal/models"
	"roozberooz/internal/utils"
)

// ValidateHabitData checks user-supplied habit data against the form rules:
// non-empty title, duration within 1..365 when supplied, a known strategy,
// a 21/90 target of 21 or 90, and well-formed reminder/start fields.
func ValidateHabitData(data models.NewHabitData) error {
	if strings.TrimSpace(data.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if data.TotalDaysInput < 0 || data.TotalDaysInput > constants.MaxTotalDays {
		return fmt.Errorf("total days must be between 1 and %d", constants.MaxTotalDays)
	}

	if data.Strategy != "" && !data.Strategy.Valid() {
		return fmt.Errorf("unknown strategy: %s", data.Strategy)
	}

	if d := data.StrategyDetails.Rule2190; d != nil {
		if d.TargetDays != 0 && d.TargetDays != 21 && d.TargetDays != 90 {
			return fmt.Errorf("21/90 target must be 21 or 90, got %d", d.TargetDays)
		}
	}

	if rt := data.StrategyDetails.ReminderTime; rt != "" && !utils.ValidateTimeFormat(rt) {
		return fmt.Errorf("reminder time must be HH:MM, got %q", rt)
	}

	if sd := data.StrategyDetails.StartDate; sd != "" {
		if _, err := utils.ParseDate(sd); err != nil {
			return fmt.Errorf("start date must be YYYY-MM-DD, got %q", sd)
		}
	}

	return nil
}
