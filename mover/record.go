package mover

import "time"

// Outcome classifies the terminal state of a single move attempt.
type Outcome string

const (
	Moved   Outcome = "moved"
	Skipped Outcome = "skipped"
	Errored Outcome = "errored"
)

// Detail codes attached to records whose outcome was not a plain move.
const (
	DetailIgnored            = "Ignored"
	DetailSymlinkSkipped     = "SymlinkSkipped"
	DetailDuplicateSkipped   = "DuplicateSkipped"
	DetailAlreadyOrganized   = "AlreadyOrganized"
	DetailOverwrote          = "Overwrote"
	DetailInsufficientSpace  = "InsufficientSpace"
	DetailPermissionDenied   = "PermissionDenied"
	DetailCollisionExhausted = "CollisionExhausted"
	DetailMoveFailed         = "MoveFailed"
	DetailStaleRecord        = "StaleRecord"
)

// Candidate describes a single file eligible for organization, as produced by
// directory enumeration.
type Candidate struct {
	Path    string
	Ext     string
	Size    int64
	Symlink bool
}

// Record captures the outcome of one candidate for the operation journal.
// Records are immutable once created.
type Record struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Outcome     Outcome   `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
}

// skipped builds a record for a candidate that was deliberately not moved.
func skipped(c Candidate, detail string) Record {
	return Record{
		Source:    c.Path,
		Timestamp: time.Now(),
		Outcome:   Skipped,
		Detail:    detail,
	}
}

// errored builds a record for a candidate whose move failed.
func errored(c Candidate, dest, detail string) Record {
	return Record{
		Source:      c.Path,
		Destination: dest,
		Timestamp:   time.Now(),
		Outcome:     Errored,
		Detail:      detail,
	}
}
