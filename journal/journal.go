// Package journal persists the reversible record of a single organization run.
//
// One journal file exists per organized root. Committing a new run replaces the
// previous journal, so exactly one level of undo history is retained. This is a
// deliberate product constraint, not an implementation gap.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/log"
	"github.com/filesan-cli/filesan/mover"
	"github.com/filesan-cli/filesan/where"
	"github.com/samber/lo"
)

// ErrNoHistory reports that no journal exists for the requested root.
var ErrNoHistory = errors.New("journal: no history for this directory")

// Journal accumulates the move records of one run together with its metadata.
// The orchestrator owns it exclusively until Commit.
type Journal struct {
	Root      string         `json:"root"`
	StartedAt time.Time      `json:"started_at"`
	DryRun    bool           `json:"dry_run"`
	Records   []mover.Record `json:"records"`
}

// New returns an empty journal for a run over root.
func New(root string, dryRun bool) *Journal {
	return &Journal{
		Root:      root,
		StartedAt: time.Now(),
		DryRun:    dryRun,
	}
}

// Append adds a record to the in-memory journal.
func (j *Journal) Append(rec mover.Record) {
	j.Records = append(j.Records, rec)
}

// Moved returns only the records whose outcome was an actual move.
func (j *Journal) Moved() []mover.Record {
	return lo.Filter(j.Records, func(rec mover.Record, _ int) bool {
		return rec.Outcome == mover.Moved
	})
}

// Commit atomically replaces the journal file for the root with the full run.
// It is called once, after all candidates are processed; a crash before this
// point leaves no journal and therefore no undo capability for the run.
func (j *Journal) Commit() error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}

	fs := filesystem.API()
	path := where.Journal(j.Root)
	tmp := path + ".tmp"

	if err := fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("journal: write %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("journal: commit %s: %w", path, err)
	}

	log.Infof("committed journal with %d records to %s", len(j.Records), path)
	return nil
}

// Load reads the most recent journal committed for root.
func Load(root string) (*Journal, error) {
	fs := filesystem.API()
	path := where.Journal(root)

	exists, err := fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoHistory, root)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("journal: read %s: %w", path, err)
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("journal: decode %s: %w", path, err)
	}
	return &j, nil
}

// Delete removes the journal for root. A replayed journal must never be
// undone twice.
func Delete(root string) error {
	return filesystem.API().Remove(where.Journal(root))
}
