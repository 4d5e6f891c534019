package aliases

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maximumSuggestionCountConstant = 3

// Suggest returns up to three stored aliases that fuzzily match input, best match first.
func (store *Store) Suggest(input string) ([]string, error) {
	trimmedInput := strings.TrimSpace(input)
	if len(trimmedInput) == 0 {
		return nil, nil
	}

	entries, listError := store.List()
	if listError != nil {
		return nil, listError
	}

	aliasNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Alias == trimmedInput {
			continue
		}
		aliasNames = append(aliasNames, entry.Alias)
	}

	matches := fuzzy.Find(trimmedInput, aliasNames)
	suggestions := make([]string, 0, maximumSuggestionCountConstant)
	for _, match := range matches {
		if len(suggestions) == maximumSuggestionCountConstant {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions, nil
}
