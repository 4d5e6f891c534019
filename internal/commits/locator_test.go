package commits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/findcommit/internal/commits"
)

func TestParseBranchListing(testInstance *testing.T) {
	testCases := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "remote_listing",
			output:   "  origin/main\n  origin/release-1.2\n",
			expected: []string{"origin/main", "origin/release-1.2"},
		},
		{
			name:     "current_and_worktree_markers",
			output:   "* main\n+ linked\n  feature\n",
			expected: []string{"main", "linked", "feature"},
		},
		{
			name:     "symbolic_reference",
			output:   "  origin/HEAD -> origin/main\n  origin/main\n",
			expected: []string{"origin/HEAD", "origin/main"},
		},
		{
			name:     "detached_head",
			output:   "* (HEAD detached at 1a2b3c4)\n  main\n",
			expected: []string{"main"},
		},
		{
			name:     "blank_output",
			output:   "\n  \n",
			expected: []string{},
		},
		{
			name:     "windows_line_endings",
			output:   "  origin/main\r\n  origin/dev\r\n",
			expected: []string{"origin/main", "origin/dev"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, commits.ParseBranchListing(testCase.output))
		})
	}
}

func TestFilterBranches(testInstance *testing.T) {
	branches := commits.ParseBranchListing("origin/main\norigin/release-1.2\n\n")

	require.Equal(testInstance, []string{"origin/release-1.2"}, commits.FilterBranches(branches, "release"))
	require.Equal(testInstance, []string{"origin/main", "origin/release-1.2"}, commits.FilterBranches(branches, ""))
	require.Empty(testInstance, commits.FilterBranches(branches, "Release"))
	require.Empty(testInstance, commits.FilterBranches(branches, "release*"))
}

func TestParseScopeAndBackend(testInstance *testing.T) {
	scopeCases := map[string]commits.Scope{
		"":        commits.ScopeRemote,
		"remote":  commits.ScopeRemote,
		" Local ": commits.ScopeLocal,
		"ALL":     commits.ScopeAll,
	}
	for input, expected := range scopeCases {
		scope, parseError := commits.ParseScope(input)
		require.NoError(testInstance, parseError)
		require.Equal(testInstance, expected, scope)
	}
	_, scopeError := commits.ParseScope("tags")
	require.Error(testInstance, scopeError)

	var decodedScope commits.Scope
	require.NoError(testInstance, decodedScope.UnmarshalText([]byte("all")))
	require.Equal(testInstance, commits.ScopeAll, decodedScope)

	backend, backendError := commits.ParseBackend("Go-Git")
	require.NoError(testInstance, backendError)
	require.Equal(testInstance, commits.BackendGoGit, backend)

	var decodedBackend commits.Backend
	require.Error(testInstance, decodedBackend.UnmarshalText([]byte("libgit2")))
	require.NoError(testInstance, decodedBackend.UnmarshalText(nil))
	require.Equal(testInstance, commits.BackendShell, decodedBackend)
}

func TestCommitNotFoundErrorMessage(testInstance *testing.T) {
	require.Equal(testInstance, "commit abc123 was not found", commits.CommitNotFoundError{Reference: "abc123"}.Error())
	require.Equal(testInstance, "commit abc123 (alias release) was not found", commits.CommitNotFoundError{Reference: "abc123", AliasName: "release"}.Error())
}
