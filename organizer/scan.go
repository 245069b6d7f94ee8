package organizer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/filesan-cli/filesan/constant"
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/log"
	"github.com/filesan-cli/filesan/mover"
	"github.com/spf13/afero"
)

// scan enumerates candidate files under the root. Folders on the ignore list
// are pruned entirely rather than descended into.
func (o *Organizer) scan(recursive bool) ([]mover.Candidate, error) {
	fs := filesystem.API()
	var out []mover.Candidate

	if !recursive {
		entries, err := fs.ReadDir(o.root)
		if err != nil {
			return nil, err
		}
		for _, info := range entries {
			if info.IsDir() {
				continue
			}
			if c, ok := o.candidate(filepath.Join(o.root, info.Name()), info); ok {
				out = append(out, c)
			}
		}
		return out, nil
	}

	err := afero.Walk(fs, o.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warnf("scan %s: %v", path, err)
			return nil
		}
		if info.IsDir() {
			if _, pruned := o.ignoreFolders[info.Name()]; pruned && path != o.root {
				return filepath.SkipDir
			}
			return nil
		}
		if c, ok := o.candidate(path, info); ok {
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// candidate filters a single directory entry. Run artifacts, hidden files
// (when configured, outside Windows), and irregular files are not candidates.
func (o *Organizer) candidate(path string, info os.FileInfo) (mover.Candidate, bool) {
	name := info.Name()

	if name == constant.JournalFile || name == constant.LockFile {
		return mover.Candidate{}, false
	}
	if o.ignoreHidden && strings.HasPrefix(name, ".") && runtime.GOOS != constant.Windows {
		return mover.Candidate{}, false
	}

	symlink := info.Mode()&os.ModeSymlink != 0
	if !symlink && !info.Mode().IsRegular() {
		return mover.Candidate{}, false
	}

	return mover.Candidate{
		Path:    path,
		Ext:     filepath.Ext(name),
		Size:    info.Size(),
		Symlink: symlink,
	}, true
}
