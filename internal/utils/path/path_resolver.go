package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DefaultStoreFileNameConstant is the alias storage file placed next to the executable.
	DefaultStoreFileNameConstant = "alias-storage.json"

	tildeSymbolConstant               = "~"
	tildeForwardSlashPrefixConstant   = "~/"
	executableLocationErrorTemplate   = "locate executable: %w"
	absolutePathErrorTemplate         = "resolve %s: %w"
	executableProviderMissingConstant = "executable provider not configured"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// ErrExecutableProviderNotConfigured indicates the resolver cannot locate the running executable.
var ErrExecutableProviderNotConfigured = errors.New(executableProviderMissingConstant)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// ExecutableProvider resolves the path of the running executable.
type ExecutableProvider func() (string, error)

// Resolver turns configured paths into absolute locations.
type Resolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	executableProvider    ExecutableProvider
	homeDirectory         string
	homeDirectoryError    error
	homeDirectoryOnce     sync.Once
}

// NewResolverWithProviders constructs a Resolver with custom lookups. Nil providers fall back to the operating system.
func NewResolverWithProviders(homeDirectoryProvider HomeDirectoryProvider, executableProvider ExecutableProvider) *Resolver {
	if homeDirectoryProvider == nil {
		homeDirectoryProvider = os.UserHomeDir
	}
	if executableProvider == nil {
		executableProvider = os.Executable
	}
	return &Resolver{homeDirectoryProvider: homeDirectoryProvider, executableProvider: executableProvider}
}

// ExpandHome resolves a leading tilde to the user's home directory.
func (resolver *Resolver) ExpandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := resolver.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	switch {
	case candidatePath == tildeSymbolConstant:
		return homeDirectory
	case strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant))
	case strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefix):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefix))
	default:
		return candidatePath
	}
}

// Normalize trims, expands, and cleans candidatePath, returning an absolute path. Empty input yields empty output.
func (resolver *Resolver) Normalize(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return "", nil
	}

	absolutePath, absoluteError := filepath.Abs(resolver.ExpandHome(trimmedPath))
	if absoluteError != nil {
		return "", fmt.Errorf(absolutePathErrorTemplate, trimmedPath, absoluteError)
	}
	return absolutePath, nil
}

// StorePath returns the normalized configured path, or the default storage file beside the executable when none is configured.
func (resolver *Resolver) StorePath(configuredPath string) (string, error) {
	normalizedPath, normalizeError := resolver.Normalize(configuredPath)
	if normalizeError != nil {
		return "", normalizeError
	}
	if len(normalizedPath) > 0 {
		return normalizedPath, nil
	}

	if resolver.executableProvider == nil {
		return "", ErrExecutableProviderNotConfigured
	}
	executablePath, executableError := resolver.executableProvider()
	if executableError != nil {
		return "", fmt.Errorf(executableLocationErrorTemplate, executableError)
	}
	if resolvedPath, symlinkError := filepath.EvalSymlinks(executablePath); symlinkError == nil {
		executablePath = resolvedPath
	}
	return filepath.Join(filepath.Dir(executablePath), DefaultStoreFileNameConstant), nil
}

func (resolver *Resolver) resolveHomeDirectory() string {
	resolver.homeDirectoryOnce.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	if resolver.homeDirectoryError != nil {
		return ""
	}
	return resolver.homeDirectory
}
