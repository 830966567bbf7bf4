package models

import "time"

// Strategy names the behavioral framework a habit follows. The strategy may
// fix the habit's program length (see habits.ResolveTotalDays).
type Strategy string

const (
	StrategyNone      Strategy = "none"
	Strategy2190      Strategy = "21/90"
	Strategy40Day     Strategy = "40-day"
	StrategyTwoMinute Strategy = "2-minute"
	StrategyIfThen    Strategy = "if-then"
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyNone, Strategy2190, Strategy40Day, StrategyTwoMinute, StrategyIfThen:
		return true
	}
	return false
}

// Rule2190Details configures the 21/90 rule: the target is either 21 or 90
// days.
type Rule2190Details struct {
	TargetDays int `json:"target_days"`
}

// TwoMinuteDetails configures the 2-minute rule.
type TwoMinuteDetails struct {
	Steps             string `json:"steps,omitempty"`
	ReminderFrequency string `json:"reminder_frequency,omitempty"`
}

// IfThenDetails configures the if-then rule.
type IfThenDetails struct {
	Rules string `json:"rules,omitempty"`
}

// StrategyDetails carries strategy-specific configuration. At most one of
// the variant pointers is expected to be set, matching the habit's Strategy;
// StartDate and ReminderTime apply to any strategy. The store treats the
// free-form fields as opaque.
type StrategyDetails struct {
	StartDate    string `json:"start_date,omitempty"`    // YYYY-MM-DD
	ReminderTime string `json:"reminder_time,omitempty"` // HH:MM

	Rule2190  *Rule2190Details  `json:"rule_2190,omitempty"`
	TwoMinute *TwoMinuteDetails `json:"two_minute,omitempty"`
	IfThen    *IfThenDetails    `json:"if_then,omitempty"`
}

// MotivationalMessage caches the last AI-generated message together with the
// calendar day it was generated for, so re-rendering the same day does not
// trigger another generator call.
type MotivationalMessage struct {
	Message string `json:"message"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// Habit is a user-defined recurring goal tracked over a fixed number of
// target days.
type Habit struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	TotalDays       int                  `json:"total_days"`
	DaysCompleted   int                  `json:"days_completed"`
	IsActive        bool                 `json:"is_active"`
	IsArchived      bool                 `json:"is_archived"`
	CreatedAt       time.Time            `json:"created_at"`
	LastCheckedIn   *time.Time           `json:"last_checked_in,omitempty"`
	LastMotivation  *MotivationalMessage `json:"last_motivational_message,omitempty"`
	GoalDescription string               `json:"goal_description,omitempty"`
	Triggers        string               `json:"triggers,omitempty"`
	Strategy        Strategy             `json:"strategy"`
	StrategyDetails StrategyDetails      `json:"strategy_details"`
}

// NewHabitData is the input for creating or editing a habit. TotalDaysInput
// is only honored when the strategy does not dictate a duration; zero means
// "not supplied".
type NewHabitData struct {
	Title           string
	GoalDescription string
	Triggers        string
	Strategy        Strategy
	StrategyDetails StrategyDetails
	TotalDaysInput  int
}

// Profile holds the simulated-session user profile stored beside the habits
// blob.
type Profile struct {
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Age           string `json:"age,omitempty"`
	SetupComplete bool   `json:"setup_complete"`
}
