package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"roozberooz/internal/cli"
	"roozberooz/internal/constants"
	"roozberooz/internal/errors"
	"roozberooz/internal/logger"
	"roozberooz/internal/motivation"
	"roozberooz/internal/session"
	"roozberooz/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize roozberooz storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login  cli.LoginCmd  `cmd:"" help:"Sign in as an identity on this device."`
	Logout cli.LogoutCmd `cmd:"" help:"Sign out."`
	Whoami cli.WhoamiCmd `cmd:"" help:"Show the signed-in identity."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show habit statistics."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Habit  struct {
		Add       cli.HabitAddCmd       `cmd:"" help:"Add a new habit."`
		List      cli.HabitListCmd      `cmd:"" help:"List habits."`
		Show      cli.HabitShowCmd      `cmd:"" help:"Show one habit in detail."`
		Edit      cli.HabitEditCmd      `cmd:"" help:"Edit an existing habit."`
		Done      cli.HabitDoneCmd      `cmd:"" help:"Check in today's completion."`
		Toggle    cli.HabitToggleCmd    `cmd:"" help:"Pause or resume a habit."`
		Archive   cli.HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
		Unarchive cli.HabitUnarchiveCmd `cmd:"" help:"Restore an archived habit."`
		Delete    cli.HabitDeleteCmd    `cmd:"" help:"Delete a habit permanently."`
	} `cmd:"" help:"Manage habits."`
	Profile struct {
		Show cli.ProfileShowCmd `cmd:"" help:"Show the stored profile."`
		Set  cli.ProfileSetCmd  `cmd:"" help:"Update the stored profile."`
	} `cmd:"" help:"Manage your profile."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with daily check-ins and AI encouragement"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Provider:  store,
		Session:   session.NewManager(store, configDir),
		Generator: newGenerator(),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// newGenerator builds the Gemini client when an API key is configured.
// Without a key the application runs with the static fallback message.
func newGenerator() motivation.Generator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}

	gen, err := motivation.NewGeminiGenerator(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		logger.Warn("failed to initialize Gemini client", "error", err)
		return nil
	}
	return gen
}
