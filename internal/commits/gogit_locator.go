package commits

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const (
	remoteBranchDisplayPrefixConstant = "remotes/"
	minimumAbbreviatedHashLength      = 4
	fullHashLength                    = 40
	goGitReferencesOperationConstant  = "go-git references"
	goGitDiffOperationConstant        = "go-git diff"
	goGitResolveOperationConstant     = "go-git resolve"
	goGitMessageMismatchPrefix        = "no commit message match"
)

var (
	errAbbreviatedHashAmbiguous = errors.New("abbreviated hash is ambiguous")

	// go-git returns a nil hash only when the revision cannot be parsed.
	errRevisionMalformed = errors.New("malformed revision")
)

// GoGitLocator answers queries in process using go-git.
type GoGitLocator struct {
	repository *git.Repository
}

// NewGoGitLocator opens the repository containing repositoryPath.
func NewGoGitLocator(repositoryPath string) (*GoGitLocator, error) {
	if len(strings.TrimSpace(repositoryPath)) == 0 {
		return nil, ErrRepositoryPathNotConfigured
	}

	repository, openError := git.PlainOpenWithOptions(repositoryPath, &git.PlainOpenOptions{DetectDotGit: true})
	if openError != nil {
		return nil, RepositoryOpenError{Path: repositoryPath, Cause: openError}
	}
	return &GoGitLocator{repository: repository}, nil
}

// VerifyCommit confirms that reference names a commit.
func (locator *GoGitLocator) VerifyCommit(executionContext context.Context, reference string) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}
	_, resolveError := locator.resolveCommit(reference)
	return resolveError
}

// BranchesContaining lists branches in scope whose history includes reference, sorted by name.
func (locator *GoGitLocator) BranchesContaining(executionContext context.Context, reference string, scope Scope) ([]string, error) {
	targetCommit, resolveError := locator.resolveCommit(reference)
	if resolveError != nil {
		return nil, resolveError
	}

	referenceIterator, iteratorError := locator.repository.References()
	if iteratorError != nil {
		return nil, ExternalToolError{Operation: goGitReferencesOperationConstant, Cause: iteratorError}
	}

	branches := []string{}
	iterationError := referenceIterator.ForEach(func(candidate *plumbing.Reference) error {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		displayName, included := branchDisplayName(candidate.Name(), scope)
		if !included {
			return nil
		}

		branchHash, hashResolved := locator.referenceHash(candidate)
		if !hashResolved {
			return nil
		}
		branchCommit, commitError := locator.repository.CommitObject(branchHash)
		if commitError != nil {
			return nil
		}

		contained, containmentError := commitContains(branchCommit, targetCommit)
		if containmentError != nil {
			return containmentError
		}
		if contained {
			branches = append(branches, displayName)
		}
		return nil
	})
	if iterationError != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return nil, contextError
		}
		return nil, ExternalToolError{Operation: goGitReferencesOperationConstant, Cause: iterationError}
	}

	return sortedUnique(branches), nil
}

// ChangedFiles lists the paths changed by reference relative to its first parent. Root commits report no paths.
func (locator *GoGitLocator) ChangedFiles(executionContext context.Context, reference string) ([]string, error) {
	commit, resolveError := locator.resolveCommit(reference)
	if resolveError != nil {
		return nil, resolveError
	}
	if commit.NumParents() == 0 {
		return []string{}, nil
	}

	parentCommit, parentError := commit.Parent(0)
	if parentError != nil {
		return nil, ExternalToolError{Operation: goGitDiffOperationConstant, Cause: parentError}
	}
	parentTree, parentTreeError := parentCommit.Tree()
	if parentTreeError != nil {
		return nil, ExternalToolError{Operation: goGitDiffOperationConstant, Cause: parentTreeError}
	}
	commitTree, commitTreeError := commit.Tree()
	if commitTreeError != nil {
		return nil, ExternalToolError{Operation: goGitDiffOperationConstant, Cause: commitTreeError}
	}

	changes, diffError := parentTree.DiffContext(executionContext, commitTree)
	if diffError != nil {
		if contextError := executionContext.Err(); contextError != nil {
			return nil, contextError
		}
		return nil, ExternalToolError{Operation: goGitDiffOperationConstant, Cause: diffError}
	}

	changedFiles := make([]string, 0, len(changes))
	for _, change := range changes {
		changedPath := change.To.Name
		if len(changedPath) == 0 {
			changedPath = change.From.Name
		}
		changedFiles = append(changedFiles, changedPath)
	}
	sort.Strings(changedFiles)
	return changedFiles, nil
}

func (locator *GoGitLocator) resolveCommit(reference string) (*object.Commit, error) {
	trimmedReference := strings.TrimSpace(reference)
	if len(trimmedReference) == 0 || isOptionLike(trimmedReference) {
		return nil, CommitNotFoundError{Reference: reference}
	}

	hash, hashError := locator.resolveHash(trimmedReference)
	if hashError != nil {
		return nil, locator.classifyLookupFailure(reference, hashError)
	}

	commit, commitError := locator.repository.CommitObject(hash)
	if commitError == nil {
		return commit, nil
	}
	if !errors.Is(commitError, plumbing.ErrObjectNotFound) {
		return nil, locator.classifyLookupFailure(reference, commitError)
	}

	tag, tagError := locator.repository.TagObject(hash)
	if tagError != nil {
		return nil, locator.classifyLookupFailure(reference, tagError)
	}
	taggedCommit, taggedCommitError := tag.Commit()
	if taggedCommitError != nil {
		return nil, locator.classifyLookupFailure(reference, taggedCommitError)
	}
	return taggedCommit, nil
}

// resolveHash maps reference onto an object hash. Full hashes are returned as is so that
// object read failures surface from the subsequent lookup instead of being folded into a miss.
func (locator *GoGitLocator) resolveHash(reference string) (plumbing.Hash, error) {
	if plumbing.IsHash(reference) {
		return plumbing.NewHash(reference), nil
	}

	hash, resolveError := locator.repository.ResolveRevision(plumbing.Revision(reference))
	if resolveError == nil {
		return *hash, nil
	}
	if hash == nil {
		return plumbing.ZeroHash, errRevisionMalformed
	}
	if strings.HasPrefix(resolveError.Error(), goGitMessageMismatchPrefix) {
		return plumbing.ZeroHash, plumbing.ErrReferenceNotFound
	}
	if !isMissingObject(resolveError) {
		return plumbing.ZeroHash, resolveError
	}

	abbreviatedHash, abbreviatedFound := locator.resolveAbbreviatedHash(reference)
	if !abbreviatedFound {
		return plumbing.ZeroHash, resolveError
	}
	return abbreviatedHash, nil
}

// classifyLookupFailure reports missing objects and malformed revisions as CommitNotFoundError and
// every other failure as ExternalToolError.
func (locator *GoGitLocator) classifyLookupFailure(reference string, lookupError error) error {
	if isMissingObject(lookupError) || errors.Is(lookupError, errRevisionMalformed) {
		return CommitNotFoundError{Reference: reference}
	}
	return ExternalToolError{Operation: goGitResolveOperationConstant, Cause: lookupError}
}

// isMissingObject reports whether err means the revision names nothing in the repository,
// including walking past a root commit or peeling a tag that does not point at a commit.
func isMissingObject(err error) bool {
	return errors.Is(err, plumbing.ErrReferenceNotFound) ||
		errors.Is(err, plumbing.ErrObjectNotFound) ||
		errors.Is(err, object.ErrParentNotFound) ||
		errors.Is(err, object.ErrUnsupportedObject) ||
		errors.Is(err, io.EOF)
}

// resolveAbbreviatedHash scans commit objects for a unique hash prefix.
func (locator *GoGitLocator) resolveAbbreviatedHash(prefix string) (plumbing.Hash, bool) {
	if len(prefix) < minimumAbbreviatedHashLength || len(prefix) >= fullHashLength {
		return plumbing.ZeroHash, false
	}
	loweredPrefix := strings.ToLower(prefix)

	commitIterator, iteratorError := locator.repository.CommitObjects()
	if iteratorError != nil {
		return plumbing.ZeroHash, false
	}

	var matchedHash plumbing.Hash
	matchCount := 0
	iterationError := commitIterator.ForEach(func(candidate *object.Commit) error {
		if !strings.HasPrefix(candidate.Hash.String(), loweredPrefix) {
			return nil
		}
		matchCount++
		if matchCount > 1 {
			return errAbbreviatedHashAmbiguous
		}
		matchedHash = candidate.Hash
		return nil
	})
	if iterationError != nil && !errors.Is(iterationError, storer.ErrStop) {
		return plumbing.ZeroHash, false
	}
	return matchedHash, matchCount == 1
}

func (locator *GoGitLocator) referenceHash(candidate *plumbing.Reference) (plumbing.Hash, bool) {
	if candidate.Type() == plumbing.HashReference {
		return candidate.Hash(), true
	}
	resolvedReference, resolveError := locator.repository.Reference(candidate.Name(), true)
	if resolveError != nil {
		return plumbing.ZeroHash, false
	}
	return resolvedReference.Hash(), true
}

// branchDisplayName renders a reference the way `git branch` lists it for scope.
func branchDisplayName(name plumbing.ReferenceName, scope Scope) (string, bool) {
	switch scope {
	case ScopeLocal:
		return name.Short(), name.IsBranch()
	case ScopeAll:
		if name.IsBranch() {
			return name.Short(), true
		}
		if name.IsRemote() {
			return remoteBranchDisplayPrefixConstant + name.Short(), true
		}
		return "", false
	default:
		return name.Short(), name.IsRemote()
	}
}

func commitContains(branchCommit *object.Commit, targetCommit *object.Commit) (bool, error) {
	if branchCommit.Hash == targetCommit.Hash {
		return true, nil
	}
	return targetCommit.IsAncestor(branchCommit)
}
