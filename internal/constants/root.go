package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "daybook"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/daybook/daybook.db"
	DefaultKeyringUser = "database-connection"
	EnvConnectionVar   = "DAYBOOK_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DayKeyPrefix is the backend key prefix for day records; the full key is
	// DayKeyPrefix + the record's date (day-YYYY-MM-DD)
	DayKeyPrefix = "day-"

	// Day record defaults
	DefaultWaterGoal = 8.0
	WaterStep        = 0.25
	HoursPerDay      = 24
	MaxDayRating     = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daybook-"
)

// Session states. The three tab states come first and double as tab indices.
const (
	StateToday SessionState = iota
	StateHistory
	StateStats
	StateAddTodo
	StateAddMoney
	StateEditHighlight
)
