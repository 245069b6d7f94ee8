// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Lstat stats a path without following symbolic links when the backend supports it.
// Backends without symlink support fall through to a regular Stat.
func Lstat(path string) (os.FileInfo, error) {
	if lstater, ok := backend.Fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return backend.Stat(path)
}

// Readlink resolves the target of a symbolic link when the backend supports it.
func Readlink(path string) (string, bool) {
	reader, ok := backend.Fs.(afero.LinkReader)
	if !ok {
		return "", false
	}
	target, err := reader.ReadlinkIfPossible(path)
	if err != nil {
		return "", false
	}
	return target, true
}

// Symlink creates a symbolic link when the backend supports it.
func Symlink(target, link string) (bool, error) {
	linker, ok := backend.Fs.(afero.Linker)
	if !ok {
		return false, nil
	}
	return true, linker.SymlinkIfPossible(target, link)
}
