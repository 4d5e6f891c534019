package aliases

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// TransferFormat names a document format accepted by Export and Import.
type TransferFormat string

// Supported transfer formats.
const (
	TransferFormatJSON TransferFormat = "json"
	TransferFormatYAML TransferFormat = "yaml"
	TransferFormatTOML TransferFormat = "toml"
)

const (
	jsonExtensionConstant              = ".json"
	yamlExtensionConstant              = ".yaml"
	ymlExtensionConstant               = ".yml"
	tomlExtensionConstant              = ".toml"
	unsupportedFormatTemplateConstant  = "%w: %s"
	decodeAliasesTemplateConstant      = "decode %s aliases: %w"
	aliasesExportedMessageConstant     = "aliases exported"
	aliasesImportedMessageConstant     = "aliases imported"
	logFieldFormatConstant             = "format"
	logFieldDestinationConstant        = "destination"
	logFieldSourceConstant             = "source"
	importedAliasErrorTemplateConstant = "%s: %w"
)

// DetectTransferFormat selects a TransferFormat from the path extension.
func DetectTransferFormat(path string) (TransferFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case jsonExtensionConstant:
		return TransferFormatJSON, nil
	case yamlExtensionConstant, ymlExtensionConstant:
		return TransferFormatYAML, nil
	case tomlExtensionConstant:
		return TransferFormatTOML, nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplateConstant, ErrUnsupportedTransferFormat, path)
	}
}

// Export writes every visible alias to destinationPath in the format implied by its extension.
func (store *Store) Export(destinationPath string) (int, error) {
	format, formatError := DetectTransferFormat(destinationPath)
	if formatError != nil {
		return 0, formatError
	}

	entries, listError := store.List()
	if listError != nil {
		return 0, listError
	}

	exported := make(map[string]string, len(entries))
	for _, entry := range entries {
		exported[entry.Alias] = entry.CommitReference
	}

	content, encodeError := encodeTransfer(format, exported)
	if encodeError != nil {
		return 0, StorageWriteError{Path: destinationPath, Cause: encodeError}
	}
	if writeError := store.writeAtomically(destinationPath, content); writeError != nil {
		return 0, StorageWriteError{Path: destinationPath, Cause: writeError}
	}

	store.logger.Debug(aliasesExportedMessageConstant, zap.String(logFieldDestinationConstant, destinationPath), zap.String(logFieldFormatConstant, string(format)), zap.Int(logFieldEntryCountConstant, len(exported)))
	return len(exported), nil
}

// Import merges the aliases stored in sourcePath into the store. Every alias is validated before anything is written.
func (store *Store) Import(sourcePath string) (int, error) {
	format, formatError := DetectTransferFormat(sourcePath)
	if formatError != nil {
		return 0, formatError
	}

	content, readError := store.fileSystem.ReadFile(sourcePath)
	if readError != nil {
		return 0, StorageReadError{Path: sourcePath, Cause: readError}
	}

	imported, decodeError := decodeTransfer(format, content)
	if decodeError != nil {
		return 0, StorageReadError{Path: sourcePath, Cause: decodeError}
	}
	delete(imported, SentinelAliasKey)

	for _, entry := range visibleEntries(imported) {
		if validationError := ValidateAlias(entry.Alias); validationError != nil {
			return 0, validationError
		}
		if len(strings.TrimSpace(entry.CommitReference)) == 0 {
			return 0, fmt.Errorf(importedAliasErrorTemplateConstant, entry.Alias, ErrCommitReferenceRequired)
		}
	}

	aliases, loadError := store.Load()
	if loadError != nil {
		return 0, loadError
	}
	for alias, commitReference := range imported {
		aliases[alias] = strings.TrimSpace(commitReference)
	}
	if saveError := store.Save(aliases); saveError != nil {
		return 0, saveError
	}

	store.logger.Debug(aliasesImportedMessageConstant, zap.String(logFieldSourceConstant, sourcePath), zap.String(logFieldFormatConstant, string(format)), zap.Int(logFieldEntryCountConstant, len(imported)))
	return len(imported), nil
}

func encodeTransfer(format TransferFormat, aliases map[string]string) ([]byte, error) {
	switch format {
	case TransferFormatYAML:
		return yaml.Marshal(aliases)
	case TransferFormatTOML:
		var buffer bytes.Buffer
		if encodeError := toml.NewEncoder(&buffer).Encode(aliases); encodeError != nil {
			return nil, encodeError
		}
		return buffer.Bytes(), nil
	default:
		return encodeJSON(aliases)
	}
}

func decodeTransfer(format TransferFormat, content []byte) (map[string]string, error) {
	decoded := map[string]string{}
	if len(bytes.TrimSpace(content)) == 0 {
		return decoded, nil
	}

	var decodeError error
	switch format {
	case TransferFormatYAML:
		decodeError = yaml.Unmarshal(content, &decoded)
	case TransferFormatTOML:
		decodeError = toml.Unmarshal(content, &decoded)
	default:
		decodeError = json.Unmarshal(content, &decoded)
	}
	if decodeError != nil {
		return nil, fmt.Errorf(decodeAliasesTemplateConstant, format, decodeError)
	}
	if decoded == nil {
		decoded = map[string]string{}
	}
	return decoded, nil
}
