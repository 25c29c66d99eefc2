package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for persisted blobs (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// MaxHistory is the number of outcomes the history log retains
	MaxHistory = 50
	// PredictionWindow is how many recent outcomes the heuristic inspects
	PredictionWindow = 10
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHotColdCount is how many hot/cold numbers the stats report lists
	DefaultHotColdCount = 5
)

// Prediction heuristic constants. Must not be tuned.
const (
	// EmptyConfidenceBase and EmptyConfidenceSpan give 50-79 with no history
	EmptyConfidenceBase = 50
	EmptyConfidenceSpan = 30
	// StreakConfidenceBase and StreakConfidenceSpan give 75-89 when the last two colors match
	StreakConfidenceBase = 75
	StreakConfidenceSpan = 15
	// MixedConfidenceBase and MixedConfidenceSpan give 60-84 otherwise
	MixedConfidenceBase = 60
	MixedConfidenceSpan = 25
	// TrendUpAbove marks confidences strictly above it as trending up
	TrendUpAbove = 80
	// TrendDownBelow marks confidences strictly below it as trending down
	TrendDownBelow = 65
	// GreenStreakThreshold is the green count that must be exceeded to predict green
	GreenStreakThreshold = 1
)

// Time formats
const (
	// TimestampFormat is the human readable local time used on records
	TimestampFormat = "15:04:05"
)
