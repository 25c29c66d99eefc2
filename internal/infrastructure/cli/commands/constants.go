package commands

import "github.com/spf13/cobra"

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfirmationRequired     = "refusing to continue without --yes"
	ErrInvalidCount             = "--count must be >= 1"
	ErrInvalidLimit             = "--limit must be >= 1"
)

// Success messages
const (
	MsgNoHistoryRecorded   = "No spins recorded yet."
	MsgHistoryCleared      = "History cleared."
	MsgNoPrediction        = "No prediction stored yet."
	MsgTrackingDisabled    = "Tracking is disabled; no prediction generated."
	MsgNoSavedStrategies   = "No saved strategies."
	MsgAllDataCleared      = "All stored data cleared."
	MsgNotificationTrigger = "Alert: confidence above threshold"
)

// StdoutPath makes export commands write to stdout.
const StdoutPath = "-"

// AnnotationDiagnostic marks commands that must run even when the storage
// backend cannot be opened.
const AnnotationDiagnostic = "roulette/diagnostic"

// IsDiagnostic reports whether cmd or one of its parents is a diagnostic
// command.
func IsDiagnostic(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[AnnotationDiagnostic]; ok {
			return true
		}
	}
	return false
}
