package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/findcommit/internal/execshell"
)

// ConsoleCommandEventLogger renders git lifecycle events as human-readable console log lines.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted logs the command about to run.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Debug(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted logs the finished command. Non-zero exits are informational because
// callers classify them, for example a missing commit during verification.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.logger.Debug(eventLogger.formatter.BuildSuccessMessage(command, result))
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed logs a command that could not be started or awaited.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}
