package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

const (
	missingArgumentTemplateConstant             = "%s requires %s"
	conflictingFlagsTemplateConstant            = "only one of %s may be used at a time"
	conflictingFlagsSeparatorConstant           = ", "
	unexpectedArgumentsTemplateConstant         = "%s does not accept %s"
	unexpectedArgumentsSeparatorConstant        = " "
	storeNotConfiguredMessageConstant           = "alias store not configured"
	locatorProviderNotConfiguredMessageConstant = "commit locator provider not configured"
)

// ErrStoreNotConfigured indicates the dispatcher was constructed without an alias store.
var ErrStoreNotConfigured = errors.New(storeNotConfiguredMessageConstant)

// ErrLocatorProviderNotConfigured indicates the dispatcher was constructed without a locator provider.
var ErrLocatorProviderNotConfigured = errors.New(locatorProviderNotConfiguredMessageConstant)

// MissingArgumentError reports a mode invoked without one of its required inputs.
type MissingArgumentError struct {
	Mode     Mode
	Argument string
}

func (missing MissingArgumentError) Error() string {
	return fmt.Sprintf(missingArgumentTemplateConstant, missing.Mode, missing.Argument)
}

// ConflictingFlagsError reports more than one mode flag in a single invocation.
type ConflictingFlagsError struct {
	Flags []string
}

func (conflict ConflictingFlagsError) Error() string {
	return fmt.Sprintf(conflictingFlagsTemplateConstant, strings.Join(conflict.Flags, conflictingFlagsSeparatorConstant))
}

// UnexpectedArgumentsError reports positional arguments beyond what a mode consumes.
type UnexpectedArgumentsError struct {
	Mode      Mode
	Arguments []string
}

func (unexpected UnexpectedArgumentsError) Error() string {
	return fmt.Sprintf(unexpectedArgumentsTemplateConstant, unexpected.Mode, strings.Join(unexpected.Arguments, unexpectedArgumentsSeparatorConstant))
}
