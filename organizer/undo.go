package organizer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/filesan-cli/filesan/category"
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/journal"
	"github.com/filesan-cli/filesan/log"
	"github.com/filesan-cli/filesan/mover"
)

// Undo replays the most recent committed run for root in reverse chronological
// order, restoring moved files to their original paths. It mirrors the forward
// run's fault-tolerance: a record whose destination has since disappeared is
// counted as an error and reported, but the remaining reversals continue.
// The journal is deleted afterwards so it can never be replayed twice.
func Undo(root string) (*Stats, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	jnl, err := journal.Load(abs)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	stats := NewStats()
	fs := filesystem.API()

	// Symlinks were moved as links; restoring them the same way needs no
	// ignore policy, only the cross-volume fallback.
	restorer := mover.New(nil, nil, true)

	for i := len(jnl.Records) - 1; i >= 0; i-- {
		rec := jnl.Records[i]
		stats.Total++

		// Nothing to reverse for skipped or errored records.
		if rec.Outcome != mover.Moved {
			stats.Skipped++
			continue
		}

		exists, err := fs.Exists(rec.Destination)
		if err == nil && !exists {
			stats.Errors++
			log.Warnf("undo %s: destination no longer exists (%s)", rec.Destination, mover.DetailStaleRecord)
			continue
		}

		if restored := restore(restorer, rec); restored.Outcome != mover.Moved {
			stats.Errors++
			log.Errorf("undo %s -> %s: %s", rec.Destination, rec.Source, restored.Detail)
			continue
		}

		stats.Organized++
		log.Infof("restored %s -> %s", rec.Destination, rec.Source)
	}

	removeEmptyCategoryDirs(abs)

	if err := journal.Delete(abs); err != nil {
		return stats, err
	}

	stats.Elapsed = time.Since(started)
	log.Infof("undo over %s finished: %d restored, %d errors", abs, stats.Organized, stats.Errors)
	return stats, nil
}

// restore routes one journal record back through the move executor, reusing
// its cross-volume fallback and link handling.
func restore(restorer *mover.Mover, rec mover.Record) mover.Record {
	var c mover.Candidate
	c.Path = rec.Destination
	c.Ext = filepath.Ext(rec.Destination)

	if info, err := filesystem.Lstat(rec.Destination); err == nil {
		c.Size = info.Size()
		c.Symlink = info.Mode()&os.ModeSymlink != 0
	}

	return restorer.Move(c, rec.Source)
}

// removeEmptyCategoryDirs prunes category folders left empty by the undo.
func removeEmptyCategoryDirs(root string) {
	table, err := category.Load()
	if err != nil {
		return
	}

	fs := filesystem.API()
	for _, name := range table.Names() {
		dir := filepath.Join(root, name)

		empty, err := fs.IsEmpty(dir)
		if err != nil || !empty {
			continue
		}
		if err := fs.Remove(dir); err == nil {
			log.Debugf("removed empty category folder %s", dir)
		}
	}
}
