package commits

import (
	"context"
	"sort"
	"strings"
)

const (
	currentBranchMarkerConstant  = "* "
	worktreeBranchMarkerConstant = "+ "
	symbolicSeparatorConstant    = " -> "
	detachedEntryPrefixConstant  = "("
	optionPrefixConstant         = "-"
)

// Locator answers commit containment and change queries for one repository.
type Locator interface {
	VerifyCommit(executionContext context.Context, reference string) error
	BranchesContaining(executionContext context.Context, reference string, scope Scope) ([]string, error)
	ChangedFiles(executionContext context.Context, reference string) ([]string, error)
}

// ParseBranchListing converts `git branch --contains` output into branch names.
// Blank lines and detached HEAD entries are dropped, current and worktree markers are removed,
// and symbolic entries such as "origin/HEAD -> origin/main" keep only their own name.
func ParseBranchListing(output string) []string {
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		branchName := strings.TrimSpace(line)
		branchName = strings.TrimPrefix(branchName, currentBranchMarkerConstant)
		branchName = strings.TrimPrefix(branchName, worktreeBranchMarkerConstant)
		if separatorIndex := strings.Index(branchName, symbolicSeparatorConstant); separatorIndex >= 0 {
			branchName = branchName[:separatorIndex]
		}
		branchName = strings.TrimSpace(branchName)
		if len(branchName) == 0 || strings.HasPrefix(branchName, detachedEntryPrefixConstant) {
			continue
		}
		branches = append(branches, branchName)
	}
	return branches
}

// FilterBranches keeps branch names containing filter. Matching is a case-sensitive substring test.
func FilterBranches(branches []string, filter string) []string {
	filtered := make([]string, 0, len(branches))
	for _, branchName := range branches {
		if strings.Contains(branchName, filter) {
			filtered = append(filtered, branchName)
		}
	}
	return filtered
}

func sortedUnique(values []string) []string {
	sort.Strings(values)
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if len(unique) > 0 && unique[len(unique)-1] == value {
			continue
		}
		unique = append(unique, value)
	}
	return unique
}

func isOptionLike(reference string) bool {
	return strings.HasPrefix(reference, optionPrefixConstant)
}
