package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roozberooz/internal/logger"
	"roozberooz/internal/models"
)

type userData struct {
	Profile models.Profile `json:"profile"`
	Habits  []models.Habit `json:"habits"`
}

type fileStore struct {
	Version int                  `json:"version"`
	Users   map[string]*userData `json:"users"`
}

// JSONStore persists everything to a single JSON file, rewritten in full on
// every save.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyFileStore()
	return s.save()
}

// Load reads the store file. A missing or unparsable file yields an empty
// store rather than an error: the session continues and the next save
// rewrites the file.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = emptyFileStore()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("storage file is unparsable, starting empty", "path", s.path, "error", err)
		s.store = emptyFileStore()
		return nil
	}

	if s.store.Users == nil {
		s.store.Users = make(map[string]*userData)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyFileStore() *fileStore {
	return &fileStore{
		Version: 1,
		Users:   make(map[string]*userData),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) user(scope string) *userData {
	u, ok := s.store.Users[scope]
	if !ok {
		u = &userData{}
		s.store.Users[scope] = u
	}
	return u
}

func (s *JSONStore) LoadHabits(scope string) ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	u, ok := s.store.Users[scope]
	if !ok || u.Habits == nil {
		return []models.Habit{}, nil
	}

	habits := make([]models.Habit, len(u.Habits))
	copy(habits, u.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(scope string, habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	u := s.user(scope)
	u.Habits = make([]models.Habit, len(habits))
	copy(u.Habits, habits)
	return s.save()
}

func (s *JSONStore) LoadProfile(scope string) (models.Profile, error) {
	if s.store == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}

	u, ok := s.store.Users[scope]
	if !ok {
		return models.Profile{}, nil
	}
	return u.Profile, nil
}

func (s *JSONStore) SaveProfile(scope string, profile models.Profile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.user(scope).Profile = profile
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
