package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/findcommit/internal/aliases"
	"github.com/temirov/findcommit/internal/commits"
	"github.com/temirov/findcommit/internal/dispatch"
)

const (
	savedAliasMessageConstant            = "Successfully saved that alias."
	noAliasesMessageConstant             = "No aliases have been saved yet."
	aliasListingTemplateConstant         = "%s -> %s"
	deletedAliasTemplateConstant         = "Deleted the %s alias."
	aliasNotFoundTemplateConstant        = "No alias named %s was found."
	exportedAliasesTemplateConstant      = "Exported %d %s to %s."
	importedAliasesTemplateConstant      = "Imported %d %s from %s."
	singularAliasLabelConstant           = "alias"
	pluralAliasLabelConstant             = "aliases"
	branchesHeaderTemplateConstant       = "Branches that contain commit %s:"
	noMatchingBranchesTemplateConstant   = "No branches matching %s contain commit %s."
	noBranchesTemplateConstant           = "No branches contain commit %s."
	changedFilesHeaderTemplateConstant   = "Files changed by commit %s:"
	noChangedFilesTemplateConstant       = "No files changed by commit %s."
	listItemIndentConstant               = "  "
	aliasCommitNotFoundTemplateConstant  = "The %s commit was not found in this repository."
	rawCommitNotFoundTemplateConstant    = "The commit of %s was not found in this repository."
	suggestionsTemplateConstant          = "Did you mean: %s?"
	suggestionsSeparatorConstant         = ", "
	missingSaveArgumentsMessageConstant  = "Please specify both an alias and a commit message SHA."
	missingFindArgumentMessageConstant   = "Please specify a saved alias or a commit message SHA."
	missingDeleteArgumentMessageConstant = "Please specify the alias to delete."
	missingExportArgumentMessageConstant = "Please specify a file to export aliases to."
	missingImportArgumentMessageConstant = "Please specify a file to import aliases from."
	conflictingFlagsTemplateConstant     = "Only one of %s may be used at a time."
	unexpectedArgumentsTemplateConstant  = "Unexpected arguments for %s: %s."
	invalidAliasTemplateConstant         = "Unable to save that alias: %s."
	storageWriteFailureTemplateConstant  = "Unable to save aliases to %s: %v"
	storageReadFailureTemplateConstant   = "Unable to read aliases from %s: %v"
	externalToolFailureTemplateConstant  = "Git could not answer the query: %s"
	genericFailureTemplateConstant       = "Error: %v"
	successColorConstant                 = "2"
	failureColorConstant                 = "1"
	accentColorConstant                  = "6"
	mutedColorConstant                   = "8"
)

type presenterStyles struct {
	success lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
}

func newPresenterStyles(renderer *lipgloss.Renderer) presenterStyles {
	return presenterStyles{
		success: renderer.NewStyle().Foreground(lipgloss.Color(successColorConstant)),
		failure: renderer.NewStyle().Foreground(lipgloss.Color(failureColorConstant)),
		header:  renderer.NewStyle().Bold(true),
		accent:  renderer.NewStyle().Foreground(lipgloss.Color(accentColorConstant)).Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color(mutedColorConstant)),
	}
}

// Presenter writes outcomes to the standard output stream and failures to the error stream.
type Presenter struct {
	output            io.Writer
	errorOutput       io.Writer
	outputStyles      presenterStyles
	errorOutputStyles presenterStyles
}

// NewPresenter constructs a Presenter writing to output and errorOutput.
func NewPresenter(output io.Writer, errorOutput io.Writer, colorMode ColorMode) *Presenter {
	return &Presenter{
		output:            output,
		errorOutput:       errorOutput,
		outputStyles:      newPresenterStyles(newRenderer(output, colorMode)),
		errorOutputStyles: newPresenterStyles(newRenderer(errorOutput, colorMode)),
	}
}

// RenderOutcome writes the human-readable form of outcome.
func (presenter *Presenter) RenderOutcome(outcome dispatch.Outcome) error {
	return writeLines(presenter.output, presenter.outcomeLines(outcome))
}

// RenderError writes the human-readable form of failure.
func (presenter *Presenter) RenderError(failure error) error {
	if failure == nil {
		return nil
	}
	return writeLines(presenter.errorOutput, presenter.errorLines(failure))
}

func (presenter *Presenter) outcomeLines(outcome dispatch.Outcome) []string {
	styles := presenter.outputStyles

	switch outcome.Mode {
	case dispatch.ModeSave:
		return []string{styles.success.Render(savedAliasMessageConstant)}
	case dispatch.ModeList:
		if len(outcome.Entries) == 0 {
			return []string{styles.muted.Render(noAliasesMessageConstant)}
		}
		lines := make([]string, 0, len(outcome.Entries))
		for _, entry := range outcome.Entries {
			lines = append(lines, fmt.Sprintf(aliasListingTemplateConstant, styles.accent.Render(entry.Alias), entry.CommitReference))
		}
		return lines
	case dispatch.ModeDelete:
		if outcome.Deleted {
			return []string{styles.success.Render(fmt.Sprintf(deletedAliasTemplateConstant, outcome.DeletedAlias))}
		}
		return []string{styles.muted.Render(fmt.Sprintf(aliasNotFoundTemplateConstant, outcome.DeletedAlias))}
	case dispatch.ModeExport:
		return []string{styles.success.Render(fmt.Sprintf(exportedAliasesTemplateConstant, outcome.TransferCount, aliasLabel(outcome.TransferCount), outcome.TransferPath))}
	case dispatch.ModeImport:
		return []string{styles.success.Render(fmt.Sprintf(importedAliasesTemplateConstant, outcome.TransferCount, aliasLabel(outcome.TransferCount), outcome.TransferPath))}
	default:
		return presenter.findLines(outcome)
	}
}

func (presenter *Presenter) findLines(outcome dispatch.Outcome) []string {
	styles := presenter.outputStyles
	commitLabel := outcome.Query.DisplayName()

	lines := []string{}
	switch {
	case len(outcome.Branches) > 0:
		lines = append(lines, styles.header.Render(fmt.Sprintf(branchesHeaderTemplateConstant, commitLabel)))
		for _, branchName := range outcome.Branches {
			lines = append(lines, listItemIndentConstant+styles.success.Render(branchName))
		}
	case len(outcome.BranchFilter) > 0:
		lines = append(lines, styles.failure.Render(fmt.Sprintf(noMatchingBranchesTemplateConstant, outcome.BranchFilter, commitLabel)))
	default:
		lines = append(lines, styles.failure.Render(fmt.Sprintf(noBranchesTemplateConstant, commitLabel)))
	}

	if !outcome.IncludeFiles {
		return lines
	}
	if len(outcome.ChangedFiles) == 0 {
		return append(lines, styles.muted.Render(fmt.Sprintf(noChangedFilesTemplateConstant, commitLabel)))
	}
	lines = append(lines, styles.header.Render(fmt.Sprintf(changedFilesHeaderTemplateConstant, commitLabel)))
	for _, changedFile := range outcome.ChangedFiles {
		lines = append(lines, listItemIndentConstant+changedFile)
	}
	return lines
}

func (presenter *Presenter) errorLines(failure error) []string {
	styles := presenter.errorOutputStyles

	var notFound commits.CommitNotFoundError
	if errors.As(failure, &notFound) {
		message := fmt.Sprintf(rawCommitNotFoundTemplateConstant, notFound.Reference)
		if len(notFound.AliasName) > 0 {
			message = fmt.Sprintf(aliasCommitNotFoundTemplateConstant, notFound.AliasName)
		}
		lines := []string{styles.failure.Render(message)}
		if len(notFound.Suggestions) > 0 {
			lines = append(lines, styles.muted.Render(fmt.Sprintf(suggestionsTemplateConstant, strings.Join(notFound.Suggestions, suggestionsSeparatorConstant))))
		}
		return lines
	}

	return []string{styles.failure.Render(describeFailure(failure))}
}

func describeFailure(failure error) string {
	var missingArgument dispatch.MissingArgumentError
	var conflictingFlags dispatch.ConflictingFlagsError
	var unexpectedArguments dispatch.UnexpectedArgumentsError
	var invalidAlias aliases.InvalidAliasError
	var storageWrite aliases.StorageWriteError
	var storageRead aliases.StorageReadError
	var externalTool commits.ExternalToolError

	switch {
	case errors.As(failure, &missingArgument):
		return describeMissingArgument(missingArgument)
	case errors.As(failure, &conflictingFlags):
		return fmt.Sprintf(conflictingFlagsTemplateConstant, strings.Join(conflictingFlags.Flags, suggestionsSeparatorConstant))
	case errors.As(failure, &unexpectedArguments):
		return fmt.Sprintf(unexpectedArgumentsTemplateConstant, unexpectedArguments.Mode, strings.Join(unexpectedArguments.Arguments, suggestionsSeparatorConstant))
	case errors.As(failure, &invalidAlias):
		return fmt.Sprintf(invalidAliasTemplateConstant, invalidAlias.Reason)
	case errors.As(failure, &storageWrite):
		return fmt.Sprintf(storageWriteFailureTemplateConstant, storageWrite.Path, storageWrite.Cause)
	case errors.As(failure, &storageRead):
		return fmt.Sprintf(storageReadFailureTemplateConstant, storageRead.Path, storageRead.Cause)
	case errors.As(failure, &externalTool):
		return fmt.Sprintf(externalToolFailureTemplateConstant, externalTool.Error())
	default:
		return fmt.Sprintf(genericFailureTemplateConstant, failure)
	}
}

func describeMissingArgument(missingArgument dispatch.MissingArgumentError) string {
	switch missingArgument.Mode {
	case dispatch.ModeSave:
		return missingSaveArgumentsMessageConstant
	case dispatch.ModeDelete:
		return missingDeleteArgumentMessageConstant
	case dispatch.ModeExport:
		return missingExportArgumentMessageConstant
	case dispatch.ModeImport:
		return missingImportArgumentMessageConstant
	default:
		return missingFindArgumentMessageConstant
	}
}

func aliasLabel(count int) string {
	if count == 1 {
		return singularAliasLabelConstant
	}
	return pluralAliasLabelConstant
}

func writeLines(writer io.Writer, lines []string) error {
	for _, line := range lines {
		if _, writeError := fmt.Fprintln(writer, line); writeError != nil {
			return writeError
		}
	}
	return nil
}
