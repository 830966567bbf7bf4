package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"roozberooz/internal/constants"
	"roozberooz/internal/session"
	"roozberooz/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: session present (warning only)
	if err := checkSession(ctx); err != nil {
		fmt.Printf("⚠ Session: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Session: OK\n")
	}

	// Check 3: data validation (only if storage is reachable)
	if storageReachable {
		if err := checkHabitData(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: concurrent instances (warning only)
	if err := checkOtherInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	// Check 6: Gemini API key (warning only)
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Printf("⚠ Gemini API key: WARNING\n")
		fmt.Printf("   GEMINI_API_KEY is not set; motivational messages fall back to a static line\n")
	} else {
		fmt.Printf("✓ Gemini API key: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Provider.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSession(ctx *Context) error {
	_, err := ctx.Session.Current()
	if errors.Is(err, session.ErrNotLoggedIn) {
		return fmt.Errorf("not logged in - run 'roozberooz login <identity>' first")
	}
	return err
}

func checkHabitData(ctx *Context) error {
	scope, err := ctx.Session.Current()
	if err != nil {
		// Nothing to validate without a session; the session check already
		// reported it.
		return nil
	}

	habits, err := ctx.Provider.LoadHabits(scope)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	seen := make(map[string]bool)
	for _, h := range habits {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true

		if h.DaysCompleted > h.TotalDays {
			return fmt.Errorf("habit %q has more completed days (%d) than target days (%d)",
				h.Title, h.DaysCompleted, h.TotalDays)
		}
		if h.IsArchived && h.IsActive {
			return fmt.Errorf("habit %q is both archived and active", h.Title)
		}
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}

func checkOtherInstances() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range processes {
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%d instances appear to be running; concurrent writes can lose data", count)
	}
	return nil
}
