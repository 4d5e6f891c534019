package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether rendered output carries terminal colors.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const unsupportedColorModeTemplateConstant = "unsupported color mode %q (expected auto, always, or never)"

// ParseColorMode normalizes a color mode name. Empty input selects ColorAuto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf(unsupportedColorModeTemplateConstant, value)
	}
}

// UnmarshalText decodes configuration values into a ColorMode.
func (mode *ColorMode) UnmarshalText(text []byte) error {
	parsedMode, parseError := ParseColorMode(string(text))
	if parseError != nil {
		return parseError
	}
	*mode = parsedMode
	return nil
}

// newRenderer builds a lipgloss renderer for writer honoring mode.
func newRenderer(writer io.Writer, mode ColorMode) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(writer)
	switch mode {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(writer) {
			renderer.SetColorProfile(termenv.Ascii)
		}
	}
	return renderer
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}
