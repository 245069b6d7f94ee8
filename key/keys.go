// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Category Classification - these keys govern how file extensions map to category buckets.
const (
	OrganizeCategories      = "organize.categories"
	OrganizeDefaultCategory = "organize.default_category"
)

// Scan Filtering - these keys control which files and folders are excluded from a run.
const (
	OrganizeIgnoreFiles   = "organize.ignore_files"
	OrganizeIgnoreFolders = "organize.ignore_folders"
	OrganizeIgnoreHidden  = "organize.ignore_hidden"
)

// Move Semantics - these keys define collision resolution and symlink handling during moves.
const (
	OrganizeDuplicateStrategy = "organize.duplicate_strategy"
	OrganizeMoveSymlinks      = "organize.move_symlinks"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite       = "logs.write"
	LogsLevel       = "logs.level"
	LogsJson        = "logs.json"
	LogsFile        = "logs.file"
	LogsMaxSize     = "logs.max_size"
	LogsBackupCount = "logs.backup_count"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these settings govern the non-engine application behavior.
const (
	CliColored = "cli.colored"
)
