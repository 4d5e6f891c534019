package commits

import (
	"errors"
	"fmt"
	"strings"
)

const (
	commitNotFoundTemplateConstant             = "commit %s was not found"
	aliasCommitNotFoundTemplateConstant        = "commit %s (alias %s) was not found"
	externalToolTemplateConstant               = "%s failed: %v"
	externalToolExitTemplateConstant           = "%s exited with code %d"
	externalToolExitDiagnosticTemplate         = "%s exited with code %d: %s"
	repositoryOpenTemplateConstant             = "unable to open repository %s: %v"
	gitExecutorNotConfiguredMessageConstant    = "git executor not configured"
	repositoryPathNotConfiguredMessageConstant = "repository path not configured"
)

// ErrGitExecutorNotConfigured indicates a ShellLocator was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessageConstant)

// ErrRepositoryPathNotConfigured indicates a GoGitLocator was constructed without a repository path.
var ErrRepositoryPathNotConfigured = errors.New(repositoryPathNotConfiguredMessageConstant)

// CommitNotFoundError reports a reference that does not name a commit in the repository.
type CommitNotFoundError struct {
	Reference   string
	AliasName   string
	Suggestions []string
}

func (notFound CommitNotFoundError) Error() string {
	if len(notFound.AliasName) > 0 {
		return fmt.Sprintf(aliasCommitNotFoundTemplateConstant, notFound.Reference, notFound.AliasName)
	}
	return fmt.Sprintf(commitNotFoundTemplateConstant, notFound.Reference)
}

// ExternalToolError reports a git failure that is not a missing commit.
type ExternalToolError struct {
	Operation   string
	ExitCode    int
	Diagnostics string
	Cause       error
}

func (toolFailure ExternalToolError) Error() string {
	if toolFailure.Cause != nil {
		return fmt.Sprintf(externalToolTemplateConstant, toolFailure.Operation, toolFailure.Cause)
	}
	trimmedDiagnostics := strings.TrimSpace(toolFailure.Diagnostics)
	if len(trimmedDiagnostics) == 0 {
		return fmt.Sprintf(externalToolExitTemplateConstant, toolFailure.Operation, toolFailure.ExitCode)
	}
	return fmt.Sprintf(externalToolExitDiagnosticTemplate, toolFailure.Operation, toolFailure.ExitCode, trimmedDiagnostics)
}

// Unwrap exposes the underlying failure when one exists.
func (toolFailure ExternalToolError) Unwrap() error {
	return toolFailure.Cause
}

// RepositoryOpenError reports a path that go-git could not open as a repository.
type RepositoryOpenError struct {
	Path  string
	Cause error
}

func (openFailure RepositoryOpenError) Error() string {
	return fmt.Sprintf(repositoryOpenTemplateConstant, openFailure.Path, openFailure.Cause)
}

// Unwrap exposes the go-git failure.
func (openFailure RepositoryOpenError) Unwrap() error {
	return openFailure.Cause
}
