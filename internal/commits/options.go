package commits

import (
	"fmt"
	"strings"
)

// Scope selects which branch namespace a containment query searches.
type Scope string

// Backend selects the Locator implementation.
type Backend string

// Supported scopes and backends.
const (
	ScopeRemote Scope = "remote"
	ScopeLocal  Scope = "local"
	ScopeAll    Scope = "all"

	BackendShell Backend = "shell"
	BackendGoGit Backend = "go-git"
)

const (
	unsupportedScopeTemplateConstant   = "unsupported branch scope %q (expected remote, local, or all)"
	unsupportedBackendTemplateConstant = "unsupported git backend %q (expected shell or go-git)"
)

// ParseScope normalizes a scope name. Empty input selects ScopeRemote.
func ParseScope(value string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(value))) {
	case "", ScopeRemote:
		return ScopeRemote, nil
	case ScopeLocal:
		return ScopeLocal, nil
	case ScopeAll:
		return ScopeAll, nil
	default:
		return "", fmt.Errorf(unsupportedScopeTemplateConstant, value)
	}
}

// UnmarshalText decodes configuration values into a Scope.
func (scope *Scope) UnmarshalText(text []byte) error {
	parsedScope, parseError := ParseScope(string(text))
	if parseError != nil {
		return parseError
	}
	*scope = parsedScope
	return nil
}

// ParseBackend normalizes a backend name. Empty input selects BackendShell.
func ParseBackend(value string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(value))) {
	case "", BackendShell:
		return BackendShell, nil
	case BackendGoGit:
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf(unsupportedBackendTemplateConstant, value)
	}
}

// UnmarshalText decodes configuration values into a Backend.
func (backend *Backend) UnmarshalText(text []byte) error {
	parsedBackend, parseError := ParseBackend(string(text))
	if parseError != nil {
		return parseError
	}
	*backend = parsedBackend
	return nil
}
