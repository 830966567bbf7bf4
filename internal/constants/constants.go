package constants

const (
	AppName           = "roozberooz"
	DefaultConfigPath = "~/.config/roozberooz/roozberooz.json"
	Version           = "v0.1.0"

	// DateFormat is the standard calendar-date format used throughout the
	// application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock-time format used for reminder
	// settings (HH:MM)
	TimeFormat = "15:04"

	// KeyringSessionUser is the keyring account name under which the
	// current session identity is stored
	KeyringSessionUser = "current-session"

	// SessionFileName is the plain-file fallback when the OS keyring is
	// unavailable
	SessionFileName = "session"

	// DefaultTotalDays is the habit program length when neither the
	// strategy nor the user dictates one
	DefaultTotalDays = 30

	// MaxTotalDays is the upper bound the forms accept for a program
	MaxTotalDays = 365
)
