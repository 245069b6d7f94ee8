// Package collision resolves destination path conflicts according to the configured duplicate strategy.
package collision

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/util"
	"github.com/samber/mo"
)

// Strategy identifies a duplicate resolution behavior.
type Strategy string

const (
	// Rename appends a second-resolution timestamp to the filename stem.
	Rename Strategy = "rename"
	// Skip leaves the source untouched; the caller records the file as skipped.
	Skip Strategy = "skip"
	// Overwrite replaces the occupant; the caller records that an overwrite occurred.
	Overwrite Strategy = "overwrite"
)

// ErrExhausted reports that the timestamped rename also collides.
// Retries are bounded to that single attempt rather than looping.
var ErrExhausted = errors.New("collision: timestamped rename also collides")

// ErrUnknownStrategy reports an unrecognized duplicate strategy value.
var ErrUnknownStrategy = errors.New("collision: unknown duplicate strategy")

// Strategies returns all valid strategy identifiers.
func Strategies() []Strategy {
	return []Strategy{Rename, Skip, Overwrite}
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case Rename, Skip, Overwrite:
		return true
	}
	return false
}

// Resolution describes the final destination chosen for a contested path.
type Resolution struct {
	// Path is the destination the caller should move to.
	Path string
	// Collided reports whether an occupant existed at the requested destination.
	Collided bool
	// Overwrite reports whether the occupant will be replaced by the move.
	Overwrite bool
}

// now is swappable so tests can force two resolutions into the same second.
var now = time.Now

// Resolve produces a non-colliding destination for path under the given strategy.
// A destination that does not exist yet is returned unchanged with no strategy
// applied. The skip strategy yields mo.None, instructing the caller not to move
// the file and to record it as skipped.
func Resolve(path string, strategy Strategy) (mo.Option[Resolution], error) {
	fs := filesystem.API()

	exists, err := fs.Exists(path)
	if err != nil {
		return mo.None[Resolution](), err
	}
	if !exists {
		return mo.Some(Resolution{Path: path}), nil
	}

	switch strategy {
	case Skip:
		return mo.None[Resolution](), nil

	case Overwrite:
		return mo.Some(Resolution{Path: path, Collided: true, Overwrite: true}), nil

	case Rename:
		stamped := timestamped(path)
		exists, err := fs.Exists(stamped)
		if err != nil {
			return mo.None[Resolution](), err
		}
		if exists {
			return mo.None[Resolution](), fmt.Errorf("%w: %s", ErrExhausted, stamped)
		}
		return mo.Some(Resolution{Path: stamped, Collided: true}), nil

	default:
		return mo.None[Resolution](), fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// timestamped appends a second-resolution timestamp to the filename stem, keeping the extension.
func timestamped(path string) string {
	name := fmt.Sprintf("%s_%s%s", util.FileStem(path), now().Format("20060102_150405"), filepath.Ext(path))
	return filepath.Join(filepath.Dir(path), name)
}
