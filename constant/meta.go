// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Filesan is the canonical application identifier used for filesystem paths and CLI branding.
	Filesan = "filesan"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// JournalFile is the name of the per-root undo journal committed after a run.
	JournalFile = ".filesan_history.json"

	// LockFile is the name of the per-root lock file guarding against concurrent runs.
	LockFile = ".filesan.lock"
)

// Build-time metadata injected via ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
