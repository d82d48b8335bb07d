package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title capitalizes each word of s ("bridge" -> "Bridge").
func Title(s string) string {
	return titleCaser.String(s)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", lastSegment(message))
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	msg := lastSegment(message)

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// lastSegment extracts the innermost message of an error chain
func lastSegment(message string) string {
	parts := strings.Split(message, ": ")
	return parts[len(parts)-1]
}

// relativePath returns the path relative to the current directory
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}
