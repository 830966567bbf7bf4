package habits

import (
	"roozberooz/internal/constants"
	"roozberooz/internal/models"
)

// ResolveTotalDays computes a habit's program length. Strategy-fixed
// durations always win over an explicit input: the 21/90 rule takes its
// target (default 21), the 40-day rule is fixed at 40, and only then does a
// caller-supplied duration apply. With nothing supplied, the previous value
// is kept on update (previous > 0) and new habits default to 30 days.
func ResolveTotalDays(data models.NewHabitData, previous int) int {
	switch data.Strategy {
	case models.Strategy2190:
		if d := data.StrategyDetails.Rule2190; d != nil && d.TargetDays > 0 {
			return d.TargetDays
		}
		return 21
	case models.Strategy40Day:
		return 40
	}

	if data.TotalDaysInput > 0 {
		return data.TotalDaysInput
	}
	if previous > 0 {
		return previous
	}
	return constants.DefaultTotalDays
}
