//go:build !windows

package mover

import (
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// freeSpace reports the bytes available to unprivileged callers on the volume
// containing dir. It only applies to the native filesystem backend.
func freeSpace(dir string) (uint64, bool) {
	if _, ok := filesystem.API().Fs.(*afero.OsFs); !ok {
		return 0, false
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return 0, false
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize), true
}
