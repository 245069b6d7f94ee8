//go:build windows

package mover

import (
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

// freeSpace reports the bytes available to unprivileged callers on the volume
// containing dir. It only applies to the native filesystem backend.
func freeSpace(dir string) (uint64, bool) {
	if _, ok := filesystem.API().Fs.(*afero.OsFs); !ok {
		return 0, false
	}

	path, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return 0, false
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(path, &available, &total, &free); err != nil {
		return 0, false
	}
	return available, true
}
