package domain

import (
	"strings"

	m "github.com/mouse-blink/savelicense/internal/model"
)

const (
	previewLength   = 10
	previewEllipsis = "..."
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\b", `\b`,
	"\t", `\t`,
	"\n", `\n`,
	"\v", `\v`,
	"\f", `\f`,
	"\r", `\r`,
	`"`, `\"`,
	`'`, `\'`,
	"`", "\\`",
)

// Escape replaces control characters, quotes and backslashes with their
// two-character escape sequences.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Preview returns the escaped first characters of a license text, followed
// by an ellipsis when the text was cut.
func Preview(text m.LicenseText) string {
	runes := []rune(string(text))
	if len(runes) <= previewLength {
		return Escape(string(runes))
	}

	return Escape(string(runes[:previewLength])) + previewEllipsis
}
