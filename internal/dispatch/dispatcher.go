package dispatch

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/findcommit/internal/aliases"
	"github.com/temirov/findcommit/internal/commits"
)

// Mode identifies the single action an invocation performs.
type Mode string

// Supported modes.
const (
	ModeFind   Mode = "find"
	ModeSave   Mode = "save"
	ModeList   Mode = "list"
	ModeDelete Mode = "delete"
	ModeExport Mode = "export"
	ModeImport Mode = "import"
)

const (
	saveFlagLabelConstant           = "--save"
	listFlagLabelConstant           = "--list"
	deleteFlagLabelConstant         = "--delete"
	exportFlagLabelConstant         = "--export"
	importFlagLabelConstant         = "--import"
	aliasArgumentConstant           = "an alias"
	commitReferenceArgumentConstant = "a commit reference"
	findTargetArgumentConstant      = "a commit reference or alias"
	pathArgumentConstant            = "a file path"
)

// positionalLimits is the number of positional arguments each mode consumes.
var positionalLimits = map[Mode]int{
	ModeFind:   2,
	ModeSave:   1,
	ModeList:   0,
	ModeDelete: 0,
	ModeExport: 0,
	ModeImport: 0,
}

// Arguments carries everything parsed from one command line.
type Arguments struct {
	SaveRequested   bool
	SaveAlias       string
	ListRequested   bool
	DeleteRequested bool
	DeleteAlias     string
	ExportRequested bool
	ExportPath      string
	ImportRequested bool
	ImportPath      string
	IncludeFiles    bool
	Scope           commits.Scope
	Positional      []string
}

// Outcome describes the result of a dispatched mode.
type Outcome struct {
	Mode          Mode
	SavedEntry    aliases.Entry
	Entries       []aliases.Entry
	DeletedAlias  string
	Deleted       bool
	Query         aliases.CommitQuery
	BranchFilter  string
	Branches      []string
	IncludeFiles  bool
	ChangedFiles  []string
	TransferPath  string
	TransferCount int
}

// AliasStore is the alias persistence used by the dispatcher.
type AliasStore interface {
	Set(alias string, commitReference string) error
	Delete(alias string) (bool, error)
	List() ([]aliases.Entry, error)
	Resolve(input string) (aliases.CommitQuery, error)
	Suggest(input string) ([]string, error)
	Export(destinationPath string) (int, error)
	Import(sourcePath string) (int, error)
}

// LocatorProvider supplies the commit locator lazily so that alias-only modes never touch a repository.
type LocatorProvider func(executionContext context.Context) (commits.Locator, error)

// Dependencies enumerates collaborators required by Dispatcher.
type Dependencies struct {
	Store           AliasStore
	LocatorProvider LocatorProvider
}

// Dispatcher runs the mode selected by Arguments.
type Dispatcher struct {
	store           AliasStore
	locatorProvider LocatorProvider
}

// NewDispatcher validates dependencies and constructs a Dispatcher.
func NewDispatcher(dependencies Dependencies) (*Dispatcher, error) {
	if dependencies.Store == nil {
		return nil, ErrStoreNotConfigured
	}
	if dependencies.LocatorProvider == nil {
		return nil, ErrLocatorProviderNotConfigured
	}
	return &Dispatcher{store: dependencies.Store, locatorProvider: dependencies.LocatorProvider}, nil
}

// SelectMode picks the mode requested by arguments. Requesting more than one mode flag yields ConflictingFlagsError.
func SelectMode(arguments Arguments) (Mode, error) {
	requestedModes := []struct {
		requested bool
		mode      Mode
		flag      string
	}{
		{requested: arguments.SaveRequested, mode: ModeSave, flag: saveFlagLabelConstant},
		{requested: arguments.ListRequested, mode: ModeList, flag: listFlagLabelConstant},
		{requested: arguments.DeleteRequested, mode: ModeDelete, flag: deleteFlagLabelConstant},
		{requested: arguments.ExportRequested, mode: ModeExport, flag: exportFlagLabelConstant},
		{requested: arguments.ImportRequested, mode: ModeImport, flag: importFlagLabelConstant},
	}

	selectedMode := ModeFind
	requestedFlags := []string{}
	for _, candidate := range requestedModes {
		if !candidate.requested {
			continue
		}
		selectedMode = candidate.mode
		requestedFlags = append(requestedFlags, candidate.flag)
	}

	if len(requestedFlags) > 1 {
		return "", ConflictingFlagsError{Flags: requestedFlags}
	}
	return selectedMode, nil
}

// Dispatch selects and runs one mode. Positional arguments the mode does not consume yield UnexpectedArgumentsError
// before anything is read or written.
func (dispatcher *Dispatcher) Dispatch(executionContext context.Context, arguments Arguments) (Outcome, error) {
	mode, selectionError := SelectMode(arguments)
	if selectionError != nil {
		return Outcome{}, selectionError
	}
	if surplus := surplusArguments(arguments.Positional, positionalLimits[mode]); len(surplus) > 0 {
		return Outcome{}, UnexpectedArgumentsError{Mode: mode, Arguments: surplus}
	}

	switch mode {
	case ModeSave:
		return dispatcher.save(arguments)
	case ModeList:
		return dispatcher.list()
	case ModeDelete:
		return dispatcher.delete(arguments)
	case ModeExport:
		return dispatcher.export(arguments)
	case ModeImport:
		return dispatcher.importAliases(arguments)
	default:
		return dispatcher.find(executionContext, arguments)
	}
}

func (dispatcher *Dispatcher) save(arguments Arguments) (Outcome, error) {
	alias := strings.TrimSpace(arguments.SaveAlias)
	if len(alias) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeSave, Argument: aliasArgumentConstant}
	}
	commitReference := positionalArgument(arguments.Positional, 0)
	if len(commitReference) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeSave, Argument: commitReferenceArgumentConstant}
	}

	if setError := dispatcher.store.Set(alias, commitReference); setError != nil {
		return Outcome{}, setError
	}
	return Outcome{Mode: ModeSave, SavedEntry: aliases.Entry{Alias: alias, CommitReference: commitReference}}, nil
}

func (dispatcher *Dispatcher) list() (Outcome, error) {
	entries, listError := dispatcher.store.List()
	if listError != nil {
		return Outcome{}, listError
	}
	return Outcome{Mode: ModeList, Entries: entries}, nil
}

func (dispatcher *Dispatcher) delete(arguments Arguments) (Outcome, error) {
	alias := strings.TrimSpace(arguments.DeleteAlias)
	if len(alias) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeDelete, Argument: aliasArgumentConstant}
	}

	deleted, deleteError := dispatcher.store.Delete(alias)
	if deleteError != nil {
		return Outcome{}, deleteError
	}
	return Outcome{Mode: ModeDelete, DeletedAlias: alias, Deleted: deleted}, nil
}

func (dispatcher *Dispatcher) export(arguments Arguments) (Outcome, error) {
	destinationPath := strings.TrimSpace(arguments.ExportPath)
	if len(destinationPath) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeExport, Argument: pathArgumentConstant}
	}

	exportedCount, exportError := dispatcher.store.Export(destinationPath)
	if exportError != nil {
		return Outcome{}, exportError
	}
	return Outcome{Mode: ModeExport, TransferPath: destinationPath, TransferCount: exportedCount}, nil
}

func (dispatcher *Dispatcher) importAliases(arguments Arguments) (Outcome, error) {
	sourcePath := strings.TrimSpace(arguments.ImportPath)
	if len(sourcePath) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeImport, Argument: pathArgumentConstant}
	}

	importedCount, importError := dispatcher.store.Import(sourcePath)
	if importError != nil {
		return Outcome{}, importError
	}
	return Outcome{Mode: ModeImport, TransferPath: sourcePath, TransferCount: importedCount}, nil
}

func (dispatcher *Dispatcher) find(executionContext context.Context, arguments Arguments) (Outcome, error) {
	input := positionalArgument(arguments.Positional, 0)
	if len(input) == 0 {
		return Outcome{}, MissingArgumentError{Mode: ModeFind, Argument: findTargetArgumentConstant}
	}
	branchFilter := positionalArgument(arguments.Positional, 1)

	scope := arguments.Scope
	if len(scope) == 0 {
		scope = commits.ScopeRemote
	}

	query, resolveError := dispatcher.store.Resolve(input)
	if resolveError != nil {
		return Outcome{}, resolveError
	}

	locator, locatorError := dispatcher.locatorProvider(executionContext)
	if locatorError != nil {
		return Outcome{}, locatorError
	}

	if verifyError := locator.VerifyCommit(executionContext, query.CommitReference); verifyError != nil {
		return Outcome{}, dispatcher.describeLookupFailure(query, verifyError)
	}

	branches, branchesError := locator.BranchesContaining(executionContext, query.CommitReference, scope)
	if branchesError != nil {
		return Outcome{}, dispatcher.describeLookupFailure(query, branchesError)
	}

	outcome := Outcome{
		Mode:         ModeFind,
		Query:        query,
		BranchFilter: branchFilter,
		Branches:     commits.FilterBranches(branches, branchFilter),
		IncludeFiles: arguments.IncludeFiles,
	}

	if arguments.IncludeFiles {
		changedFiles, changedFilesError := locator.ChangedFiles(executionContext, query.CommitReference)
		if changedFilesError != nil {
			return Outcome{}, dispatcher.describeLookupFailure(query, changedFilesError)
		}
		outcome.ChangedFiles = changedFiles
	}

	return outcome, nil
}

// describeLookupFailure attaches the alias and, for raw references, close alias names to a missing commit.
func (dispatcher *Dispatcher) describeLookupFailure(query aliases.CommitQuery, lookupError error) error {
	var notFound commits.CommitNotFoundError
	if !errors.As(lookupError, &notFound) {
		return lookupError
	}

	notFound.Reference = query.CommitReference
	notFound.AliasName = query.AliasName
	if query.IsAlias {
		return notFound
	}

	suggestions, suggestError := dispatcher.store.Suggest(query.CommitReference)
	if suggestError != nil {
		return errors.Join(notFound, suggestError)
	}
	notFound.Suggestions = suggestions
	return notFound
}

func surplusArguments(positional []string, limit int) []string {
	if len(positional) <= limit {
		return nil
	}
	return append([]string{}, positional[limit:]...)
}

func positionalArgument(positional []string, index int) string {
	if index >= len(positional) {
		return ""
	}
	return strings.TrimSpace(positional[index])
}
