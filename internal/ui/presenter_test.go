package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/findcommit/internal/aliases"
	"github.com/temirov/findcommit/internal/commits"
	"github.com/temirov/findcommit/internal/dispatch"
	"github.com/temirov/findcommit/internal/ui"
)

func TestPresenterRendersOutcomes(testInstance *testing.T) {
	aliasQuery := aliases.CommitQuery{IsAlias: true, AliasName: "release", CommitReference: "abc123"}
	rawQuery := aliases.CommitQuery{CommitReference: "abc123"}

	testCases := []struct {
		name           string
		outcome        dispatch.Outcome
		expectedOutput string
	}{
		{
			name:           "saved",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeSave, SavedEntry: aliases.Entry{Alias: "release", CommitReference: "abc123"}},
			expectedOutput: "Successfully saved that alias.\n",
		},
		{
			name:           "empty_list",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeList},
			expectedOutput: "No aliases have been saved yet.\n",
		},
		{
			name: "list",
			outcome: dispatch.Outcome{Mode: dispatch.ModeList, Entries: []aliases.Entry{
				{Alias: "hotfix", CommitReference: "def456"},
				{Alias: "release", CommitReference: "abc123"},
			}},
			expectedOutput: "hotfix -> def456\nrelease -> abc123\n",
		},
		{
			name:           "deleted",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeDelete, DeletedAlias: "release", Deleted: true},
			expectedOutput: "Deleted the release alias.\n",
		},
		{
			name:           "delete_missing",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeDelete, DeletedAlias: "release"},
			expectedOutput: "No alias named release was found.\n",
		},
		{
			name:           "exported",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeExport, TransferPath: "aliases.yaml", TransferCount: 1},
			expectedOutput: "Exported 1 alias to aliases.yaml.\n",
		},
		{
			name:           "imported",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeImport, TransferPath: "aliases.toml", TransferCount: 3},
			expectedOutput: "Imported 3 aliases from aliases.toml.\n",
		},
		{
			name:           "branches_for_alias",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeFind, Query: aliasQuery, Branches: []string{"origin/main", "origin/release-1.2"}},
			expectedOutput: "Branches that contain commit release (abc123):\n  origin/main\n  origin/release-1.2\n",
		},
		{
			name:           "no_matching_branches",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeFind, Query: rawQuery, BranchFilter: "hotfix", Branches: []string{}},
			expectedOutput: "No branches matching hotfix contain commit abc123.\n",
		},
		{
			name:           "no_branches",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeFind, Query: rawQuery},
			expectedOutput: "No branches contain commit abc123.\n",
		},
		{
			name: "branches_with_files",
			outcome: dispatch.Outcome{
				Mode:         dispatch.ModeFind,
				Query:        rawQuery,
				Branches:     []string{"origin/main"},
				IncludeFiles: true,
				ChangedFiles: []string{"README.md", "main.go"},
			},
			expectedOutput: "Branches that contain commit abc123:\n  origin/main\nFiles changed by commit abc123:\n  README.md\n  main.go\n",
		},
		{
			name:           "branches_without_files",
			outcome:        dispatch.Outcome{Mode: dispatch.ModeFind, Query: rawQuery, Branches: []string{"origin/main"}, IncludeFiles: true},
			expectedOutput: "Branches that contain commit abc123:\n  origin/main\nNo files changed by commit abc123.\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var output bytes.Buffer
			var errorOutput bytes.Buffer
			presenter := ui.NewPresenter(&output, &errorOutput, ui.ColorNever)

			require.NoError(testInstance, presenter.RenderOutcome(testCase.outcome))
			require.Equal(testInstance, testCase.expectedOutput, output.String())
			require.Empty(testInstance, errorOutput.String())
		})
	}
}

func TestPresenterRendersErrors(testInstance *testing.T) {
	testCases := []struct {
		name           string
		failure        error
		expectedOutput string
	}{
		{
			name:           "alias_commit_missing",
			failure:        commits.CommitNotFoundError{Reference: "abc123", AliasName: "release"},
			expectedOutput: "The release commit was not found in this repository.\n",
		},
		{
			name:           "raw_commit_missing_with_suggestions",
			failure:        commits.CommitNotFoundError{Reference: "relase", Suggestions: []string{"release", "relocate"}},
			expectedOutput: "The commit of relase was not found in this repository.\nDid you mean: release, relocate?\n",
		},
		{
			name:           "missing_save_arguments",
			failure:        dispatch.MissingArgumentError{Mode: dispatch.ModeSave, Argument: "a commit reference"},
			expectedOutput: "Please specify both an alias and a commit message SHA.\n",
		},
		{
			name:           "missing_find_argument",
			failure:        dispatch.MissingArgumentError{Mode: dispatch.ModeFind, Argument: "a commit reference or alias"},
			expectedOutput: "Please specify a saved alias or a commit message SHA.\n",
		},
		{
			name:           "conflicting_flags",
			failure:        dispatch.ConflictingFlagsError{Flags: []string{"--save", "--list"}},
			expectedOutput: "Only one of --save, --list may be used at a time.\n",
		},
		{
			name:           "unexpected_arguments",
			failure:        dispatch.UnexpectedArgumentsError{Mode: dispatch.ModeExport, Arguments: []string{"a", "b"}},
			expectedOutput: "Unexpected arguments for export: a, b.\n",
		},
		{
			name:           "invalid_alias",
			failure:        aliases.InvalidAliasError{Alias: "bad alias", Reason: "aliases may only contain letters, digits, dashes, and underscores"},
			expectedOutput: "Unable to save that alias: aliases may only contain letters, digits, dashes, and underscores.\n",
		},
		{
			name:           "storage_write",
			failure:        aliases.StorageWriteError{Path: "/opt/alias-storage.json", Cause: errors.New("permission denied")},
			expectedOutput: "Unable to save aliases to /opt/alias-storage.json: permission denied\n",
		},
		{
			name:           "external_tool",
			failure:        commits.ExternalToolError{Operation: "git rev-parse", ExitCode: 128, Diagnostics: "fatal: not a git repository"},
			expectedOutput: "Git could not answer the query: git rev-parse exited with code 128: fatal: not a git repository\n",
		},
		{
			name:           "generic",
			failure:        errors.New("boom"),
			expectedOutput: "Error: boom\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var output bytes.Buffer
			var errorOutput bytes.Buffer
			presenter := ui.NewPresenter(&output, &errorOutput, ui.ColorNever)

			require.NoError(testInstance, presenter.RenderError(testCase.failure))
			require.Equal(testInstance, testCase.expectedOutput, errorOutput.String())
			require.Empty(testInstance, output.String())
		})
	}
}

func TestPresenterColorModes(testInstance *testing.T) {
	outcome := dispatch.Outcome{Mode: dispatch.ModeSave}

	var coloredOutput bytes.Buffer
	require.NoError(testInstance, ui.NewPresenter(&coloredOutput, &bytes.Buffer{}, ui.ColorAlways).RenderOutcome(outcome))
	require.Contains(testInstance, coloredOutput.String(), "\x1b[")
	require.Contains(testInstance, coloredOutput.String(), "Successfully saved that alias.")

	var automaticOutput bytes.Buffer
	require.NoError(testInstance, ui.NewPresenter(&automaticOutput, &bytes.Buffer{}, ui.ColorAuto).RenderOutcome(outcome))
	require.Equal(testInstance, "Successfully saved that alias.\n", automaticOutput.String())
}

func TestParseColorMode(testInstance *testing.T) {
	for input, expected := range map[string]ui.ColorMode{"": ui.ColorAuto, "ALWAYS": ui.ColorAlways, " never ": ui.ColorNever} {
		mode, parseError := ui.ParseColorMode(input)
		require.NoError(testInstance, parseError)
		require.Equal(testInstance, expected, mode)
	}

	var decodedMode ui.ColorMode
	require.Error(testInstance, decodedMode.UnmarshalText([]byte("sometimes")))
}
