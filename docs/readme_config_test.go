package docs_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/findcommit/cmd/cli"
	"github.com/temirov/findcommit/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetFileNameConstant    = "config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

func readReadmeConfigurationSnippet(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	contentBytes, readError := os.ReadFile(filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant))
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	fenceEndRelativeIndex := strings.Index(contentText[headerIndex:], yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : headerIndex+fenceEndRelativeIndex])
}

func flattenKeys(prefix string, node map[string]any) []string {
	keys := []string{}
	for key, value := range node {
		qualifiedKey := key
		if len(prefix) > 0 {
			qualifiedKey = prefix + "." + key
		}
		if nested, isNested := value.(map[string]any); isNested {
			keys = append(keys, flattenKeys(qualifiedKey, nested)...)
			continue
		}
		keys = append(keys, qualifiedKey)
	}
	sort.Strings(keys)
	return keys
}

func TestReadmeConfigurationMatchesEmbeddedDefaults(testInstance *testing.T) {
	snippet := readReadmeConfigurationSnippet(testInstance)

	var readmeDocument map[string]any
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippet), &readmeDocument))

	embeddedContent, _ := cli.EmbeddedDefaultConfiguration()
	var embeddedDocument map[string]any
	require.NoError(testInstance, yaml.Unmarshal(embeddedContent, &embeddedDocument))

	require.Equal(testInstance, flattenKeys("", embeddedDocument), flattenKeys("", readmeDocument))
}

func TestReadmeConfigurationDecodes(testInstance *testing.T) {
	snippet := readReadmeConfigurationSnippet(testInstance)
	configurationPath := filepath.Join(testInstance.TempDir(), readmeSnippetFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(snippet), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "READMEFINDCOMMIT", nil)
	var configuration cli.ApplicationConfiguration
	loadedConfiguration, loadError := loader.LoadConfiguration(configurationPath, nil, &configuration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationPath, loadedConfiguration.ConfigFileUsed)

	embeddedContent, embeddedType := cli.EmbeddedDefaultConfiguration()
	embeddedLoader := utils.NewConfigurationLoader("config", "yaml", "READMEFINDCOMMIT", nil)
	embeddedLoader.SetEmbeddedConfiguration(embeddedContent, embeddedType)
	var embeddedConfiguration cli.ApplicationConfiguration
	_, embeddedLoadError := embeddedLoader.LoadConfiguration("", nil, &embeddedConfiguration)
	require.NoError(testInstance, embeddedLoadError)

	require.Equal(testInstance, embeddedConfiguration, configuration)
}
