package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	flagPrefixConstant                      = "-"
	commitPeelSuffixConstant                = "^{commit}"
)

const (
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitBranchSubcommandNameConstant   = "branch"
	gitDiffTreeSubcommandNameConstant = "diff-tree"
	gitContainsFlagConstant           = "--contains"
	gitRemotesFlagConstant            = "-r"
	gitAllFlagConstant                = "-a"
)

const (
	gitVerifyStartTemplateConstant                  = "Resolving %s in %s"
	gitVerifySuccessTemplateConstant                = "%s in %s resolved to %s"
	gitVerifyFailureTemplateConstant                = "Could not resolve %s in %s (exit code %d%s)"
	gitVerifyExecutionFailureTemplateConstant       = "Unable to resolve %s in %s: %s"
	gitContainsStartTemplateConstant                = "Listing %s containing %s in %s"
	gitContainsSuccessTemplateConstant              = "Listed %d %s containing %s in %s"
	gitContainsFailureTemplateConstant              = "Failed to list %s containing %s in %s (exit code %d%s)"
	gitContainsExecutionFailureTemplateConstant     = "Unable to list %s containing %s in %s: %s"
	gitChangedFilesStartTemplateConstant            = "Listing files changed by %s in %s"
	gitChangedFilesSuccessTemplateConstant          = "Listed files changed by %s in %s"
	gitChangedFilesFailureTemplateConstant          = "Failed to list files changed by %s in %s (exit code %d%s)"
	gitChangedFilesExecutionFailureTemplateConstant = "Unable to list files changed by %s in %s: %s"
	remoteBranchesLabelConstant                     = "remote branches"
	localBranchesLabelConstant                      = "local branches"
	allBranchesLabelConstant                        = "local and remote branches"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a command that exited with code zero.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(command.Details.Arguments[0]) {
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitVerifyMessage(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		if containsArgument(command.Details.Arguments, gitContainsFlagConstant) {
			return formatter.describeGitContainsMessage(command, result, failure, stage)
		}
	case gitDiffTreeSubcommandNameConstant:
		return formatter.describeGitChangedFilesMessage(command, result, failure, stage)
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitVerifyMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	reference := strings.TrimSuffix(formatter.extractLastNonFlagArgument(command.Details.Arguments), commitPeelSuffixConstant)
	reference = formatter.ensureValue(reference)
	workingDirectory := formatter.describeWorkingDirectory(command)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitVerifyStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitVerifySuccessTemplateConstant, reference, workingDirectory, formatter.ensureValue(result.StandardOutput))
	case messageStageFailure:
		return fmt.Sprintf(gitVerifyFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitVerifyExecutionFailureTemplateConstant, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitContainsMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	reference := formatter.ensureValue(findFlagValue(arguments, gitContainsFlagConstant))
	workingDirectory := formatter.describeWorkingDirectory(command)

	scopeLabel := localBranchesLabelConstant
	switch {
	case containsArgument(arguments, gitRemotesFlagConstant):
		scopeLabel = remoteBranchesLabelConstant
	case containsArgument(arguments, gitAllFlagConstant):
		scopeLabel = allBranchesLabelConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitContainsStartTemplateConstant, scopeLabel, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitContainsSuccessTemplateConstant, countNonEmptyLines(result.StandardOutput), scopeLabel, reference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitContainsFailureTemplateConstant, scopeLabel, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitContainsExecutionFailureTemplateConstant, scopeLabel, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitChangedFilesMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	reference := formatter.ensureValue(formatter.extractLastNonFlagArgument(command.Details.Arguments))
	workingDirectory := formatter.describeWorkingDirectory(command)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitChangedFilesStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitChangedFilesSuccessTemplateConstant, reference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitChangedFilesFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitChangedFilesExecutionFailureTemplateConstant, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) extractLastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index > 0; index-- {
		argument := strings.TrimSpace(arguments[index])
		if len(argument) == 0 || strings.HasPrefix(argument, flagPrefixConstant) {
			continue
		}
		return argument
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}

func countNonEmptyLines(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if len(strings.TrimSpace(line)) > 0 {
			count++
		}
	}
	return count
}
