package validation

import (
	"testing"

	"roozberooz/internal/models"
)

func TestValidateHabitData(t *testing.T) {
	tests := []struct {
		name    string
		data    models.NewHabitData
		wantErr bool
	}{
		{
			name: "valid plain habit",
			data: models.NewHabitData{Title: "Read daily", TotalDaysInput: 21},
		},
		{
			name:    "empty title",
			data:    models.NewHabitData{Title: "   "},
			wantErr: true,
		},
		{
			name:    "duration too long",
			data:    models.NewHabitData{Title: "x", TotalDaysInput: 400},
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			data:    models.NewHabitData{Title: "x", Strategy: "30/60"},
			wantErr: true,
		},
		{
			name: "valid 21/90 target",
			data: models.NewHabitData{
				Title:    "x",
				Strategy: models.Strategy2190,
				StrategyDetails: models.StrategyDetails{
					Rule2190: &models.Rule2190Details{TargetDays: 90},
				},
			},
		},
		{
			name: "invalid 21/90 target",
			data: models.NewHabitData{
				Title:    "x",
				Strategy: models.Strategy2190,
				StrategyDetails: models.StrategyDetails{
					Rule2190: &models.Rule2190Details{TargetDays: 45},
				},
			},
			wantErr: true,
		},
		{
			name: "malformed reminder time",
			data: models.NewHabitData{
				Title:           "x",
				StrategyDetails: models.StrategyDetails{ReminderTime: "9 o'clock"},
			},
			wantErr: true,
		},
		{
			name: "well-formed details",
			data: models.NewHabitData{
				Title: "x",
				StrategyDetails: models.StrategyDetails{
					StartDate:    "2025-06-10",
					ReminderTime: "08:30",
				},
			},
		},
		{
			name: "malformed start date",
			data: models.NewHabitData{
				Title:           "x",
				StrategyDetails: models.StrategyDetails{StartDate: "10/06/2025"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabitData(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabitData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
