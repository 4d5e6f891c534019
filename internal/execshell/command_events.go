package execshell

import "go.uber.org/zap"

const (
	logFieldCommandConstant          = "command"
	logFieldArgumentsConstant        = "arguments"
	logFieldWorkingDirectoryConstant = "working_directory"
	logFieldExitCodeConstant         = "exit_code"
	logFieldStandardErrorConstant    = "stderr"
)

// CommandEventObserver receives lifecycle notifications for shell command execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that command execution is beginning.
	CommandStarted(command ShellCommand)
	// CommandCompleted notifies observers that the process exited and supplies the result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports failures that prevented an execution result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

// StructuredCommandEventObserver writes lifecycle events as debug-level structured log entries.
type StructuredCommandEventObserver struct {
	logger    *zap.Logger
	formatter CommandMessageFormatter
}

// NewStructuredCommandEventObserver constructs an observer backed by the provided logger.
func NewStructuredCommandEventObserver(logger *zap.Logger) *StructuredCommandEventObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StructuredCommandEventObserver{logger: logger, formatter: CommandMessageFormatter{}}
}

// CommandStarted logs the command about to run.
func (observer *StructuredCommandEventObserver) CommandStarted(command ShellCommand) {
	observer.logger.Debug(observer.formatter.BuildStartedMessage(command), observer.commandFields(command)...)
}

// CommandCompleted logs the process exit; non-zero exits carry the trimmed diagnostics.
func (observer *StructuredCommandEventObserver) CommandCompleted(command ShellCommand, result ExecutionResult) {
	fields := append(observer.commandFields(command), zap.Int(logFieldExitCodeConstant, result.ExitCode))
	if result.ExitCode == 0 {
		observer.logger.Debug(observer.formatter.BuildSuccessMessage(command, result), fields...)
		return
	}
	fields = append(fields, zap.String(logFieldStandardErrorConstant, result.StandardError))
	observer.logger.Debug(observer.formatter.BuildFailureMessage(command, result), fields...)
}

// CommandExecutionFailed logs failures to start or await the process.
func (observer *StructuredCommandEventObserver) CommandExecutionFailed(command ShellCommand, failure error) {
	fields := append(observer.commandFields(command), zap.Error(failure))
	observer.logger.Debug(observer.formatter.BuildExecutionFailureMessage(command, failure), fields...)
}

func (observer *StructuredCommandEventObserver) commandFields(command ShellCommand) []zap.Field {
	return []zap.Field{
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	}
}
