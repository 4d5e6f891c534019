// Package filesystem provides the operating system backed file operations used by the alias store.
package filesystem

import (
	"io/fs"
	"os"
)

// TemporaryFile is a writable file created for atomic replacement.
type TemporaryFile interface {
	Write(data []byte) (int, error)
	Name() string
	Sync() error
	Close() error
}

// OSFileSystem implements file operations using the operating system primitives.
type OSFileSystem struct{}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// CreateTemp creates a uniquely named file in directory.
func (OSFileSystem) CreateTemp(directory string, pattern string) (TemporaryFile, error) {
	temporaryFile, createError := os.CreateTemp(directory, pattern)
	if createError != nil {
		return nil, createError
	}
	return temporaryFile, nil
}

// Chmod changes the permissions of path.
func (OSFileSystem) Chmod(path string, permissions fs.FileMode) error {
	return os.Chmod(path, permissions)
}

// Rename renames a path, replacing the destination when it exists.
func (OSFileSystem) Rename(oldPath string, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove deletes a path.
func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}
