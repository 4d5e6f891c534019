package aliases

import (
	"errors"
	"fmt"
)

const (
	invalidAliasErrorTemplateConstant        = "alias %q is invalid: %s"
	storageReadErrorTemplateConstant         = "unable to read alias storage %s: %v"
	storageWriteErrorTemplateConstant        = "unable to write alias storage %s: %v"
	commitReferenceRequiredMessageConstant   = "commit reference must be provided"
	storePathRequiredMessageConstant         = "alias storage path must be provided"
	unsupportedTransferFormatMessageConstant = "unsupported alias file format"
	aliasEmptyReasonConstant                 = "aliases must not be empty"
	aliasCharactersReasonConstant            = "aliases may only contain letters, digits, dashes, and underscores"
	aliasReservedReasonConstant              = "the alias is reserved"
)

// ErrCommitReferenceRequired indicates an empty commit reference was supplied for an alias.
var ErrCommitReferenceRequired = errors.New(commitReferenceRequiredMessageConstant)

// ErrStorePathRequired indicates the store was constructed without a storage path.
var ErrStorePathRequired = errors.New(storePathRequiredMessageConstant)

// ErrUnsupportedTransferFormat indicates an export or import path with an unknown extension.
var ErrUnsupportedTransferFormat = errors.New(unsupportedTransferFormatMessageConstant)

// InvalidAliasError reports an alias that fails validation.
type InvalidAliasError struct {
	Alias  string
	Reason string
}

func (invalidAlias InvalidAliasError) Error() string {
	return fmt.Sprintf(invalidAliasErrorTemplateConstant, invalidAlias.Alias, invalidAlias.Reason)
}

// StorageReadError reports a storage document that could not be read or parsed.
type StorageReadError struct {
	Path  string
	Cause error
}

func (readFailure StorageReadError) Error() string {
	return fmt.Sprintf(storageReadErrorTemplateConstant, readFailure.Path, readFailure.Cause)
}

// Unwrap exposes the underlying failure.
func (readFailure StorageReadError) Unwrap() error {
	return readFailure.Cause
}

// StorageWriteError reports a storage document that could not be written.
type StorageWriteError struct {
	Path  string
	Cause error
}

func (writeFailure StorageWriteError) Error() string {
	return fmt.Sprintf(storageWriteErrorTemplateConstant, writeFailure.Path, writeFailure.Cause)
}

// Unwrap exposes the underlying failure.
func (writeFailure StorageWriteError) Unwrap() error {
	return writeFailure.Cause
}
