// Package organizer drives the classification-and-move pipeline for one
// directory tree and replays committed runs in reverse.
//
// A run is single-threaded and synchronous: candidates are processed one at a
// time, and every per-file fault is contained in that file's record. The
// in-memory journal is owned exclusively by the organizer until it is
// committed at the end of the run. Callers must not execute two runs against
// the same root concurrently; the CLI layer guards this with a lock file.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/filesan-cli/filesan/category"
	"github.com/filesan-cli/filesan/collision"
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/journal"
	"github.com/filesan-cli/filesan/key"
	"github.com/filesan-cli/filesan/log"
	"github.com/filesan-cli/filesan/mover"
	"github.com/spf13/viper"
)

// State identifies the orchestrator's position in the run lifecycle.
type State int

const (
	Idle State = iota
	Scanning
	Processing
	Finalizing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	case Processing:
		return "processing"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Environment faults that prevent a run from starting at all.
var (
	ErrRootMissing  = errors.New("organizer: root path does not exist")
	ErrNotDirectory = errors.New("organizer: root path is not a directory")
)

// Organizer owns a single run over one root directory.
type Organizer struct {
	root          string
	table         *category.Table
	strategy      collision.Strategy
	mover         *mover.Mover
	ignoreFolders map[string]struct{}
	ignoreHidden  bool
	state         State
}

// New validates root and assembles an organizer from the global configuration.
// Validation failures here are fatal: the run never starts.
func New(root string) (*Organizer, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := filesystem.API().Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootMissing, abs)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	table, err := category.Load()
	if err != nil {
		return nil, err
	}

	strategy := collision.Strategy(viper.GetString(key.OrganizeDuplicateStrategy))
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", collision.ErrUnknownStrategy, strategy)
	}

	ignoreFolders := make(map[string]struct{})
	for _, name := range viper.GetStringSlice(key.OrganizeIgnoreFolders) {
		ignoreFolders[name] = struct{}{}
	}

	return &Organizer{
		root:     abs,
		table:    table,
		strategy: strategy,
		mover: mover.New(
			viper.GetStringSlice(key.OrganizeIgnoreFiles),
			viper.GetStringSlice(key.OrganizeIgnoreFolders),
			viper.GetBool(key.OrganizeMoveSymlinks),
		),
		ignoreFolders: ignoreFolders,
		ignoreHidden:  viper.GetBool(key.OrganizeIgnoreHidden),
		state:         Idle,
	}, nil
}

// Root returns the absolute path this organizer operates on.
func (o *Organizer) Root() string {
	return o.root
}

// State returns the orchestrator's current lifecycle state.
func (o *Organizer) State() State {
	return o.state
}

// Organize runs the full pipeline over the root and returns the run's
// statistics. Per-file faults are recorded in the journal and counted, never
// returned; only environment faults and a failed journal commit surface as
// errors. Dry runs make every decision but touch nothing and commit nothing.
func (o *Organizer) Organize(recursive, dryRun bool) (*Stats, error) {
	started := time.Now()

	o.state = Scanning
	candidates, err := o.scan(recursive)
	if err != nil {
		o.state = Failed
		return nil, err
	}
	log.Infof("scan of %s found %d candidates (recursive=%t dry_run=%t)", o.root, len(candidates), recursive, dryRun)

	o.state = Processing
	jnl := journal.New(o.root, dryRun)
	stats := NewStats()

	for _, c := range candidates {
		name := o.table.Resolve(c.Ext)
		rec := o.process(c, name, dryRun)
		jnl.Append(rec)
		stats.observe(rec, name, c.Size)
	}

	o.state = Finalizing
	stats.Elapsed = time.Since(started)

	if !dryRun {
		if err := jnl.Commit(); err != nil {
			return stats, err
		}
	}

	o.state = Done
	log.Infof("run over %s finished: %d organized, %d skipped, %d errors", o.root, stats.Organized, stats.Skipped, stats.Errors)
	return stats, nil
}

// process runs one candidate through resolution, collision handling, and the
// executor, producing exactly one record regardless of outcome.
func (o *Organizer) process(c mover.Candidate, categoryName string, dryRun bool) mover.Record {
	if rec, skip := o.mover.Preflight(c); skip {
		return rec
	}

	dest := filepath.Join(o.root, categoryName, filepath.Base(c.Path))

	// A file already sitting in its category folder would collide with itself.
	if dest == c.Path {
		return mover.Record{
			Source:    c.Path,
			Timestamp: time.Now(),
			Outcome:   mover.Skipped,
			Detail:    mover.DetailAlreadyOrganized,
		}
	}

	resolved, err := collision.Resolve(dest, o.strategy)
	if err != nil {
		detail := mover.DetailMoveFailed
		if errors.Is(err, collision.ErrExhausted) {
			detail = mover.DetailCollisionExhausted
		}
		log.Errorf("resolve collision for %s: %v", dest, err)
		return mover.Record{
			Source:      c.Path,
			Destination: dest,
			Timestamp:   time.Now(),
			Outcome:     mover.Errored,
			Detail:      detail,
		}
	}

	resolution, ok := resolved.Get()
	if !ok {
		return mover.Record{
			Source:    c.Path,
			Timestamp: time.Now(),
			Outcome:   mover.Skipped,
			Detail:    mover.DetailDuplicateSkipped,
		}
	}

	if dryRun {
		// Every decision above ran for real; only the executor's side effects
		// are withheld. Dry runs therefore predict the exact final path.
		return mover.Record{
			Source:      c.Path,
			Destination: resolution.Path,
			Timestamp:   time.Now(),
			Outcome:     mover.Moved,
		}
	}

	rec := o.mover.Move(c, resolution.Path)
	if rec.Outcome == mover.Moved && resolution.Overwrite {
		rec.Detail = mover.DetailOverwrote
	}
	return rec
}
