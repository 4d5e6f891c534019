// Package flags provides pflag values shared by find-commit commands.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix  = "<"
	choicePlaceholderSuffix  = ">"
	choiceSeparatorLiteral   = "|"
	choiceUsageEmptyTemplate = "`%s`"
	choiceUsageFullTemplate  = "`%s` %s"
	choiceInvalidTemplate    = "invalid value %q (expected one of %s)"
	choiceValueTypeName      = "choice"
)

// ChoiceValue is a pflag.Value restricted to a fixed, case-insensitive set of options.
type ChoiceValue struct {
	current string
	choices []string
}

// NewChoiceValue constructs a ChoiceValue preset to defaultChoice.
func NewChoiceValue(defaultChoice string, choices []string) *ChoiceValue {
	normalizedChoices := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalizedChoice := normalizeChoice(choice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalizedChoices = append(normalizedChoices, normalizedChoice)
	}
	return &ChoiceValue{current: normalizeChoice(defaultChoice), choices: normalizedChoices}
}

// String reports the selected choice.
func (value *ChoiceValue) String() string {
	if value == nil {
		return ""
	}
	return value.current
}

// Set selects rawValue when it names one of the allowed choices.
func (value *ChoiceValue) Set(rawValue string) error {
	normalizedValue := normalizeChoice(rawValue)
	for _, choice := range value.choices {
		if choice == normalizedValue {
			value.current = normalizedValue
			return nil
		}
	}
	return fmt.Errorf(choiceInvalidTemplate, rawValue, strings.Join(value.choices, choiceSeparatorLiteral))
}

// Type names the value kind in generated help.
func (value *ChoiceValue) Type() string {
	return choiceValueTypeName
}

// BindChoiceFlag registers a ChoiceValue flag on flagSet and returns it.
func BindChoiceFlag(flagSet *pflag.FlagSet, name string, defaultChoice string, choices []string, description string) *ChoiceValue {
	value := NewChoiceValue(defaultChoice, choices)
	flagSet.Var(value, name, FormatChoiceUsage(defaultChoice, choices, description))
	return value
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choicePlaceholderPrefix + strings.Join(highlightDefaultChoice(defaultChoice, choices), choiceSeparatorLiteral) + choicePlaceholderSuffix
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := normalizeChoice(defaultChoice)
	highlighted := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := normalizeChoice(choice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		highlighted = append(highlighted, trimmedChoice)
	}

	return highlighted
}

func normalizeChoice(choice string) string {
	return strings.ToLower(strings.TrimSpace(choice))
}
