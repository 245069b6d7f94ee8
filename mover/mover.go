// Package mover executes the filesystem move for a single candidate, with
// preflight checks for space, permissions, and ignore rules.
//
// A candidate's failure is contained in its record; the caller's run always
// continues with the next candidate.
package mover

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/log"
)

// spaceBuffer is the fractional headroom required on the destination volume
// on top of the file size before a move is attempted.
const spaceBuffer = 0.1

// Mover executes moves under a shared ignore policy.
type Mover struct {
	ignoreFiles   map[string]struct{}
	ignoreFolders map[string]struct{}
	moveSymlinks  bool
}

// New constructs a Mover. File names are matched case-insensitively, folder
// names exactly, mirroring the scan-time pruning rules.
func New(ignoreFiles, ignoreFolders []string, moveSymlinks bool) *Mover {
	m := &Mover{
		ignoreFiles:   make(map[string]struct{}, len(ignoreFiles)),
		ignoreFolders: make(map[string]struct{}, len(ignoreFolders)),
		moveSymlinks:  moveSymlinks,
	}
	for _, name := range ignoreFiles {
		m.ignoreFiles[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range ignoreFolders {
		m.ignoreFolders[name] = struct{}{}
	}
	return m
}

// Preflight evaluates the skip-style checks that require no filesystem
// mutation. It reports a skip record when the candidate must not be moved,
// which also lets dry runs share the exact decision path of real runs.
func (m *Mover) Preflight(c Candidate) (Record, bool) {
	if m.ignored(c.Path) {
		return skipped(c, DetailIgnored), true
	}
	if c.Symlink && !m.moveSymlinks {
		return skipped(c, DetailSymlinkSkipped), true
	}
	return Record{}, false
}

// Move relocates candidate to dest and returns a Record describing the outcome.
func (m *Mover) Move(c Candidate, dest string) Record {
	if rec, skip := m.Preflight(c); skip {
		return rec
	}

	fs := filesystem.API()

	// Idempotent create of the destination category folder.
	if err := fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errored(c, dest, classify(err))
	}

	if err := m.checkSpace(c, filepath.Dir(dest)); err != nil {
		log.Errorf("move %s: %v", c.Path, err)
		return errored(c, dest, DetailInsufficientSpace)
	}

	if err := m.relocate(c, dest); err != nil {
		log.Errorf("move %s -> %s: %v", c.Path, dest, err)
		return errored(c, dest, classify(err))
	}

	log.Infof("moved %s -> %s", c.Path, dest)
	return Record{
		Source:      c.Path,
		Destination: dest,
		Timestamp:   time.Now(),
		Outcome:     Moved,
	}
}

// ignored reports whether path matches the ignore list by file name or by any
// parent folder name.
func (m *Mover) ignored(path string) bool {
	if _, ok := m.ignoreFiles[strings.ToLower(filepath.Base(path))]; ok {
		return true
	}

	for dir := filepath.Dir(path); ; {
		if _, ok := m.ignoreFolders[filepath.Base(dir)]; ok {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

// checkSpace verifies the destination volume has room for the candidate plus
// the configured headroom. Virtualized backends report no limit.
func (m *Mover) checkSpace(c Candidate, dir string) error {
	free, ok := freeSpace(dir)
	if !ok {
		return nil
	}

	need := uint64(float64(c.Size) * (1 + spaceBuffer))
	if free < need {
		return fmt.Errorf("insufficient space: %s free, %s required", humanize.IBytes(free), humanize.IBytes(need))
	}
	return nil
}

// relocate attempts an atomic rename first. Renames across volumes fail, so a
// copy-verify-then-delete fallback handles that case without ever losing the
// original.
func (m *Mover) relocate(c Candidate, dest string) error {
	fs := filesystem.API()

	err := fs.Rename(c.Path, dest)
	if err == nil {
		return nil
	}
	if os.IsPermission(err) {
		return err
	}

	return m.copyThenDelete(c, dest, err)
}

// copyThenDelete copies the candidate to dest and removes the original only
// after the copy is verified. A failure at any earlier point cleans up the
// partial destination and leaves the original in place.
func (m *Mover) copyThenDelete(c Candidate, dest string, renameErr error) error {
	fs := filesystem.API()

	if c.Symlink {
		// Recreate the link itself at the destination rather than copying its target.
		target, ok := filesystem.Readlink(c.Path)
		if !ok {
			return renameErr
		}
		supported, err := filesystem.Symlink(target, dest)
		if !supported {
			return renameErr
		}
		if err != nil {
			return err
		}
		return fs.Remove(c.Path)
	}

	info, err := fs.Stat(c.Path)
	if err != nil {
		return err
	}

	src, err := fs.Open(c.Path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(dest)
		return err
	}
	if written != info.Size() {
		_ = fs.Remove(dest)
		return fmt.Errorf("short copy: wrote %d of %d bytes", written, info.Size())
	}

	return fs.Remove(c.Path)
}

// classify maps a filesystem error onto a record detail code.
func classify(err error) string {
	if os.IsPermission(err) {
		return DetailPermissionDenied
	}
	return DetailMoveFailed
}
