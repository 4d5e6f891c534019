package commits

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/findcommit/internal/execshell"
)

const (
	gitRevParseSubcommandConstant   = "rev-parse"
	gitVerifyFlagConstant           = "--verify"
	gitQuietFlagConstant            = "--quiet"
	gitCommitPeelSuffixConstant     = "^{commit}"
	gitBranchSubcommandConstant     = "branch"
	gitRemoteFlagConstant           = "-r"
	gitAllFlagConstant              = "-a"
	gitContainsFlagConstant         = "--contains"
	gitDiffTreeSubcommandConstant   = "diff-tree"
	gitNoCommitIDFlagConstant       = "--no-commit-id"
	gitNameOnlyFlagConstant         = "--name-only"
	gitRecursiveFlagConstant        = "-r"
	gitSplitMergesFlagConstant      = "-m"
	gitFirstParentFlagConstant      = "--first-parent"
	gitLocaleVariableConstant       = "LC_ALL"
	gitLocaleValueConstant          = "C"
	gitTerminalPromptVariable       = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabled       = "0"
	verifyOperationConstant         = "git rev-parse"
	branchOperationConstant         = "git branch --contains"
	diffTreeOperationConstant       = "git diff-tree"
	revParseMissingExitCodeConstant = 1
	malformedDiagnosticConstant     = "malformed"
	noSuchCommitDiagnosticConstant  = "no such commit"
)

var commitNotFoundDiagnostics = []string{malformedDiagnosticConstant, noSuchCommitDiagnosticConstant}

// GitExecutor runs git subcommands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ShellLocator answers queries by invoking the git binary.
type ShellLocator struct {
	executor       GitExecutor
	repositoryPath string
}

// NewShellLocator constructs a ShellLocator that runs git inside repositoryPath.
func NewShellLocator(executor GitExecutor, repositoryPath string) (*ShellLocator, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &ShellLocator{executor: executor, repositoryPath: repositoryPath}, nil
}

// VerifyCommit confirms that reference names a commit.
func (locator *ShellLocator) VerifyCommit(executionContext context.Context, reference string) error {
	if isOptionLike(reference) {
		return CommitNotFoundError{Reference: reference}
	}

	_, executionError := locator.executor.ExecuteGit(executionContext, locator.commandDetails(
		gitRevParseSubcommandConstant,
		gitVerifyFlagConstant,
		gitQuietFlagConstant,
		reference+gitCommitPeelSuffixConstant,
	))
	if executionError == nil {
		return nil
	}

	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) && commandFailure.Result.ExitCode == revParseMissingExitCodeConstant {
		return CommitNotFoundError{Reference: reference}
	}
	return classifyFailure(verifyOperationConstant, reference, executionError)
}

// BranchesContaining lists branches in scope whose history includes reference.
func (locator *ShellLocator) BranchesContaining(executionContext context.Context, reference string, scope Scope) ([]string, error) {
	if isOptionLike(reference) {
		return nil, CommitNotFoundError{Reference: reference}
	}

	arguments := []string{gitBranchSubcommandConstant}
	switch scope {
	case ScopeLocal:
	case ScopeAll:
		arguments = append(arguments, gitAllFlagConstant)
	default:
		arguments = append(arguments, gitRemoteFlagConstant)
	}
	arguments = append(arguments, gitContainsFlagConstant, reference)

	executionResult, executionError := locator.executor.ExecuteGit(executionContext, locator.commandDetails(arguments...))
	if executionError != nil {
		return nil, classifyFailure(branchOperationConstant, reference, executionError)
	}
	return ParseBranchListing(executionResult.StandardOutput), nil
}

// ChangedFiles lists the paths changed by reference relative to its first parent, merges included. Root commits report no paths.
func (locator *ShellLocator) ChangedFiles(executionContext context.Context, reference string) ([]string, error) {
	if isOptionLike(reference) {
		return nil, CommitNotFoundError{Reference: reference}
	}

	executionResult, executionError := locator.executor.ExecuteGit(executionContext, locator.commandDetails(
		gitDiffTreeSubcommandConstant,
		gitNoCommitIDFlagConstant,
		gitNameOnlyFlagConstant,
		gitRecursiveFlagConstant,
		gitSplitMergesFlagConstant,
		gitFirstParentFlagConstant,
		reference,
	))
	if executionError != nil {
		return nil, classifyFailure(diffTreeOperationConstant, reference, executionError)
	}

	changedFiles := []string{}
	for _, line := range strings.Split(executionResult.StandardOutput, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if len(trimmedLine) > 0 {
			changedFiles = append(changedFiles, trimmedLine)
		}
	}
	return changedFiles, nil
}

func (locator *ShellLocator) commandDetails(arguments ...string) execshell.CommandDetails {
	return execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: locator.repositoryPath,
		EnvironmentVariables: map[string]string{
			gitLocaleVariableConstant: gitLocaleValueConstant,
			gitTerminalPromptVariable: gitTerminalPromptDisabled,
		},
	}
}

// classifyFailure maps an executor error onto CommitNotFoundError or ExternalToolError.
// Diagnostic text is consulted only after the exit code has been considered.
func classifyFailure(operation string, reference string, executionError error) error {
	var commandFailure execshell.CommandFailedError
	if !errors.As(executionError, &commandFailure) {
		return ExternalToolError{Operation: operation, Cause: executionError}
	}

	diagnostics := strings.ToLower(commandFailure.Result.StandardError)
	for _, diagnostic := range commitNotFoundDiagnostics {
		if strings.Contains(diagnostics, diagnostic) {
			return CommitNotFoundError{Reference: reference}
		}
	}

	return ExternalToolError{
		Operation:   operation,
		ExitCode:    commandFailure.Result.ExitCode,
		Diagnostics: commandFailure.Result.StandardError,
	}
}
