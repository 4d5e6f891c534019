package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant         = "shell executor logger not configured"
	commandRunnerNotConfiguredMessageConstant  = "shell executor command runner not configured"
	commandFailedErrorTemplateConstant         = "%s exited with code %d"
	commandFailedStandardErrorTemplateConstant = "%s exited with code %d: %s"
	commandExecutionErrorTemplateConstant      = "%s could not be executed: %v"
	gitCommandNameStringConstant               = "git"
)

// CommandName identifies an executable supported by the shell executor.
type CommandName string

// CommandGit runs the git binary.
const CommandGit CommandName = CommandName(gitCommandNameStringConstant)

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandDetails describes arguments and environment for a single invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand pairs an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable results of a finished process.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner starts processes and waits for their completion.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a process that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command, its exit code, and its trimmed diagnostics.
func (failure CommandFailedError) Error() string {
	commandLabel := describeCommand(failure.Command)
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) == 0 {
		return fmt.Sprintf(commandFailedErrorTemplateConstant, commandLabel, failure.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedStandardErrorTemplateConstant, commandLabel, failure.Result.ExitCode, trimmedStandardError)
}

// CommandExecutionError reports a process that could not be started or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, describeCommand(failure.Command), failure.Cause)
}

// Unwrap exposes the underlying runner failure.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ShellExecutor runs external commands and reports their lifecycle to an observer.
type ShellExecutor struct {
	runner   CommandRunner
	observer CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor that logs command lifecycle events as structured entries.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{
		runner:   runner,
		observer: NewStructuredCommandEventObserver(logger),
	}, nil
}

// WithEventObserver replaces the lifecycle observer. A nil observer discards events.
func (executor *ShellExecutor) WithEventObserver(observer CommandEventObserver) *ShellExecutor {
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	executor.observer = observer
	return executor
}

// Execute runs the command and converts non-zero exits into CommandFailedError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.CommandCompleted(command, executionResult)
	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func describeCommand(command ShellCommand) string {
	if len(command.Details.Arguments) == 0 {
		return string(command.Name)
	}
	return string(command.Name) + " " + strings.Join(command.Details.Arguments, " ")
}
