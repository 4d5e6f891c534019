// Package commits answers which branches contain a commit and which files a commit changed.
//
// Two Locator implementations exist. ShellLocator drives the git binary through
// execshell and classifies failures by exit code before falling back to the
// diagnostic text, since git's wording is not a stable contract. GoGitLocator
// answers the same questions in process with go-git.
package commits
