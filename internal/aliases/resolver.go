package aliases

import (
	"fmt"
	"strings"
)

const aliasDisplayTemplateConstant = "%s (%s)"

// CommitQuery describes the commit a find request targets.
type CommitQuery struct {
	IsAlias         bool
	AliasName       string
	CommitReference string
}

// DisplayName renders the query as users refer to it: "alias (reference)" for aliases, the reference otherwise.
func (query CommitQuery) DisplayName() string {
	if query.IsAlias {
		return fmt.Sprintf(aliasDisplayTemplateConstant, query.AliasName, query.CommitReference)
	}
	return query.CommitReference
}

// Resolve converts raw input into a CommitQuery, substituting stored aliases with their commit reference.
func (store *Store) Resolve(input string) (CommitQuery, error) {
	trimmedInput := strings.TrimSpace(input)
	if ValidateAlias(trimmedInput) != nil {
		return CommitQuery{CommitReference: trimmedInput}, nil
	}

	commitReference, found, lookupError := store.Get(trimmedInput)
	if lookupError != nil {
		return CommitQuery{}, lookupError
	}
	if !found {
		return CommitQuery{CommitReference: trimmedInput}, nil
	}

	return CommitQuery{IsAlias: true, AliasName: trimmedInput, CommitReference: commitReference}, nil
}
