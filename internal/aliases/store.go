package aliases

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/findcommit/internal/filesystem"
)

const (
	// SentinelAliasKey is the reserved guard entry that older storage files carry. It is never listed or resolved.
	SentinelAliasKey = "00000000-0000-0000-0000-000000000000"

	aliasPatternConstant            = `^[A-Za-z0-9_-]+$`
	storageDirectoryPermissions     = fs.FileMode(0o755)
	storageFilePermissions          = fs.FileMode(0o644)
	temporaryFilePatternConstant    = ".alias-storage-*.tmp"
	jsonIndentConstant              = "  "
	encodeErrorTemplateConstant     = "encode aliases: %w"
	storageLoadedMessageConstant    = "alias storage loaded"
	storageMissingMessageConstant   = "alias storage missing; starting empty"
	storageSavedMessageConstant     = "alias storage saved"
	logFieldPathConstant            = "path"
	logFieldEntryCountConstant      = "entry_count"
	temporaryCleanupMessageConstant = "unable to remove temporary alias storage"
	logFieldTemporaryPathConstant   = "temporary_path"
)

var aliasPattern = regexp.MustCompile(aliasPatternConstant)

// FileSystem exposes the file operations required by Store.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string, permissions fs.FileMode) error
	CreateTemp(directory string, pattern string) (filesystem.TemporaryFile, error)
	Chmod(path string, permissions fs.FileMode) error
	Rename(oldPath string, newPath string) error
	Remove(path string) error
}

// Entry pairs an alias with the commit reference it names.
type Entry struct {
	Alias           string
	CommitReference string
}

// StoreDependencies enumerates collaborators required by Store.
type StoreDependencies struct {
	Path       string
	FileSystem FileSystem
	Logger     *zap.Logger
}

// Store persists aliases in a whole-file JSON document.
type Store struct {
	path       string
	fileSystem FileSystem
	logger     *zap.Logger
}

// NewStore constructs a Store, defaulting to the operating system file system and a no-op logger.
func NewStore(dependencies StoreDependencies) (*Store, error) {
	if len(dependencies.Path) == 0 {
		return nil, ErrStorePathRequired
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{path: dependencies.Path, fileSystem: fileSystem, logger: logger}, nil
}

// Path reports the storage document location.
func (store *Store) Path() string {
	return store.path
}

// ValidateAlias reports whether alias may be stored.
func ValidateAlias(alias string) error {
	switch {
	case len(alias) == 0:
		return InvalidAliasError{Alias: alias, Reason: aliasEmptyReasonConstant}
	case alias == SentinelAliasKey:
		return InvalidAliasError{Alias: alias, Reason: aliasReservedReasonConstant}
	case !aliasPattern.MatchString(alias):
		return InvalidAliasError{Alias: alias, Reason: aliasCharactersReasonConstant}
	default:
		return nil
	}
}

// Load reads the whole storage document. A missing or empty document yields an empty mapping.
func (store *Store) Load() (map[string]string, error) {
	content, readError := store.fileSystem.ReadFile(store.path)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			store.logger.Debug(storageMissingMessageConstant, zap.String(logFieldPathConstant, store.path))
			return map[string]string{}, nil
		}
		return nil, StorageReadError{Path: store.path, Cause: readError}
	}

	aliases := map[string]string{}
	if len(bytes.TrimSpace(content)) > 0 {
		if decodeError := json.Unmarshal(content, &aliases); decodeError != nil {
			return nil, StorageReadError{Path: store.path, Cause: decodeError}
		}
	}
	if aliases == nil {
		aliases = map[string]string{}
	}

	store.logger.Debug(storageLoadedMessageConstant, zap.String(logFieldPathConstant, store.path), zap.Int(logFieldEntryCountConstant, len(aliases)))
	return aliases, nil
}

// Save replaces the storage document with aliases through a temporary file and rename.
func (store *Store) Save(aliases map[string]string) error {
	content, encodeError := encodeJSON(aliases)
	if encodeError != nil {
		return StorageWriteError{Path: store.path, Cause: encodeError}
	}

	if writeError := store.writeAtomically(store.path, content); writeError != nil {
		return StorageWriteError{Path: store.path, Cause: writeError}
	}

	store.logger.Debug(storageSavedMessageConstant, zap.String(logFieldPathConstant, store.path), zap.Int(logFieldEntryCountConstant, len(aliases)))
	return nil
}

// Set validates alias and stores commitReference under it, replacing any previous value.
func (store *Store) Set(alias string, commitReference string) error {
	if validationError := ValidateAlias(alias); validationError != nil {
		return validationError
	}
	if len(strings.TrimSpace(commitReference)) == 0 {
		return ErrCommitReferenceRequired
	}

	aliases, loadError := store.Load()
	if loadError != nil {
		return loadError
	}

	aliases[alias] = commitReference
	return store.Save(aliases)
}

// Get returns the commit reference stored under alias.
func (store *Store) Get(alias string) (string, bool, error) {
	if alias == SentinelAliasKey {
		return "", false, nil
	}

	aliases, loadError := store.Load()
	if loadError != nil {
		return "", false, loadError
	}

	commitReference, found := aliases[alias]
	return commitReference, found, nil
}

// Delete removes alias and reports whether it was present. Absent aliases leave the document untouched.
func (store *Store) Delete(alias string) (bool, error) {
	if alias == SentinelAliasKey {
		return false, nil
	}

	aliases, loadError := store.Load()
	if loadError != nil {
		return false, loadError
	}

	if _, found := aliases[alias]; !found {
		return false, nil
	}

	delete(aliases, alias)
	if saveError := store.Save(aliases); saveError != nil {
		return false, saveError
	}
	return true, nil
}

// List returns every stored alias except the sentinel, ordered by alias.
func (store *Store) List() ([]Entry, error) {
	aliases, loadError := store.Load()
	if loadError != nil {
		return nil, loadError
	}
	return visibleEntries(aliases), nil
}

func visibleEntries(aliases map[string]string) []Entry {
	entries := make([]Entry, 0, len(aliases))
	for alias, commitReference := range aliases {
		if alias == SentinelAliasKey {
			continue
		}
		entries = append(entries, Entry{Alias: alias, CommitReference: commitReference})
	}
	sort.Slice(entries, func(leftIndex int, rightIndex int) bool {
		return entries[leftIndex].Alias < entries[rightIndex].Alias
	})
	return entries
}

func (store *Store) writeAtomically(destinationPath string, content []byte) error {
	directory := filepath.Dir(destinationPath)
	if mkdirError := store.fileSystem.MkdirAll(directory, storageDirectoryPermissions); mkdirError != nil {
		return mkdirError
	}

	temporaryFile, createError := store.fileSystem.CreateTemp(directory, temporaryFilePatternConstant)
	if createError != nil {
		return createError
	}
	temporaryPath := temporaryFile.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		if removeError := store.fileSystem.Remove(temporaryPath); removeError != nil && !errors.Is(removeError, fs.ErrNotExist) {
			store.logger.Warn(temporaryCleanupMessageConstant, zap.String(logFieldTemporaryPathConstant, temporaryPath), zap.Error(removeError))
		}
	}()

	if _, writeError := temporaryFile.Write(content); writeError != nil {
		_ = temporaryFile.Close()
		return writeError
	}
	if syncError := temporaryFile.Sync(); syncError != nil {
		_ = temporaryFile.Close()
		return syncError
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		return closeError
	}
	if chmodError := store.fileSystem.Chmod(temporaryPath, storageFilePermissions); chmodError != nil {
		return chmodError
	}
	if renameError := store.fileSystem.Rename(temporaryPath, destinationPath); renameError != nil {
		return renameError
	}

	committed = true
	return nil
}

func encodeJSON(aliases map[string]string) ([]byte, error) {
	if aliases == nil {
		aliases = map[string]string{}
	}
	content, marshalError := json.MarshalIndent(aliases, "", jsonIndentConstant)
	if marshalError != nil {
		return nil, fmt.Errorf(encodeErrorTemplateConstant, marshalError)
	}
	return append(content, '\n'), nil
}
