package constants

const (
	// AppName is used for config paths, the keyring service name, and the log prefix
	AppName = "goalpost"

	// DefaultKeyringUser is the keyring account under which the database
	// connection string is stored
	DefaultKeyringUser = "db-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"
)

const (
	// Default Settings Values
	DefaultTimezone        = "Local" // Use system local timezone by default
	DefaultWaterGoal       = 8       // glasses per day
	DefaultRoutineDuration = 30      // minutes

	// ConfirmDelaySeconds is the minimum delay before a destructive
	// confirmation can be accepted
	ConfirmDelaySeconds = 3

	// MaxExports is the maximum number of export files kept before rotation
	MaxExports = 14
)
