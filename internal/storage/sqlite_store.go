package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"roozberooz/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	scope TEXT NOT NULL,
	id TEXT NOT NULL,
	title TEXT NOT NULL,
	total_days INTEGER NOT NULL,
	days_completed INTEGER NOT NULL,
	is_active INTEGER NOT NULL,
	is_archived INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	last_checked_in TEXT,
	last_motivation TEXT,
	goal_description TEXT NOT NULL DEFAULT '',
	triggers TEXT NOT NULL DEFAULT '',
	strategy TEXT NOT NULL DEFAULT 'none',
	strategy_details TEXT NOT NULL DEFAULT '{}',
	position INTEGER NOT NULL,
	PRIMARY KEY (scope, id)
);

CREATE TABLE IF NOT EXISTS profiles (
	scope TEXT PRIMARY KEY,
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	age TEXT NOT NULL DEFAULT '',
	setup_complete INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore is the alternative backend, selected by a .db config path.
// The habit collection is still written as one unit per scope: SaveHabits
// replaces every row for the scope inside a transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadHabits(scope string) ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, title, total_days, days_completed, is_active, is_archived,
		       created_at, last_checked_in, last_motivation,
		       goal_description, triggers, strategy, strategy_details
		FROM habits WHERE scope = ? ORDER BY position`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var createdAt, detailsJSON string
		var lastCheckedIn, lastMotivation sql.NullString

		err := rows.Scan(&h.ID, &h.Title, &h.TotalDays, &h.DaysCompleted,
			&h.IsActive, &h.IsArchived, &createdAt, &lastCheckedIn,
			&lastMotivation, &h.GoalDescription, &h.Triggers, &h.Strategy,
			&detailsJSON)
		if err != nil {
			return nil, err
		}

		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if lastCheckedIn.Valid {
			t, err := time.Parse(time.RFC3339, lastCheckedIn.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse last_checked_in: %w", err)
			}
			h.LastCheckedIn = &t
		}
		if lastMotivation.Valid && lastMotivation.String != "" {
			var m models.MotivationalMessage
			if err := json.Unmarshal([]byte(lastMotivation.String), &m); err != nil {
				return nil, fmt.Errorf("failed to parse last_motivation: %w", err)
			}
			h.LastMotivation = &m
		}
		if err := json.Unmarshal([]byte(detailsJSON), &h.StrategyDetails); err != nil {
			return nil, fmt.Errorf("failed to parse strategy_details: %w", err)
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) SaveHabits(scope string, habits []models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits WHERE scope = ?", scope); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO habits (scope, id, title, total_days, days_completed,
			is_active, is_archived, created_at, last_checked_in,
			last_motivation, goal_description, triggers, strategy,
			strategy_details, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, h := range habits {
		var lastCheckedIn sql.NullString
		if h.LastCheckedIn != nil {
			lastCheckedIn = sql.NullString{String: h.LastCheckedIn.Format(time.RFC3339), Valid: true}
		}
		var lastMotivation sql.NullString
		if h.LastMotivation != nil {
			data, err := json.Marshal(h.LastMotivation)
			if err != nil {
				return fmt.Errorf("failed to serialize last_motivation: %w", err)
			}
			lastMotivation = sql.NullString{String: string(data), Valid: true}
		}
		details, err := json.Marshal(h.StrategyDetails)
		if err != nil {
			return fmt.Errorf("failed to serialize strategy_details: %w", err)
		}

		_, err = stmt.Exec(scope, h.ID, h.Title, h.TotalDays, h.DaysCompleted,
			h.IsActive, h.IsArchived, h.CreatedAt.Format(time.RFC3339),
			lastCheckedIn, lastMotivation, h.GoalDescription, h.Triggers,
			string(h.Strategy), string(details), i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadProfile(scope string) (models.Profile, error) {
	if s.db == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT first_name, last_name, age, setup_complete
		FROM profiles WHERE scope = ?`, scope)

	var p models.Profile
	err := row.Scan(&p.FirstName, &p.LastName, &p.Age, &p.SetupComplete)
	if err == sql.ErrNoRows {
		return models.Profile{}, nil
	}
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *SQLiteStore) SaveProfile(scope string, profile models.Profile) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO profiles (scope, first_name, last_name, age, setup_complete)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			age = excluded.age,
			setup_complete = excluded.setup_complete`,
		scope, profile.FirstName, profile.LastName, profile.Age, profile.SetupComplete)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
