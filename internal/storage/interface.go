package storage

import "roozberooz/internal/models"

// Provider is the durable key-value side of the habit store. Collections are
// scoped by identity: habits and profile fields saved under one scope are
// invisible to every other scope. Both backends persist the habit collection
// as one unit (full overwrite), so there is no partial-write hazard as long
// as calls stay on a single goroutine.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits collection, one blob per scope
	LoadHabits(scope string) ([]models.Habit, error)
	SaveHabits(scope string, habits []models.Habit) error

	// Profile fields beside the habits blob
	LoadProfile(scope string) (models.Profile, error)
	SaveProfile(scope string, profile models.Profile) error

	// Utils
	GetConfigPath() string
}
