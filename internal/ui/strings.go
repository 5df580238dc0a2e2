package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a string to the given display width, adding ellipsis if
// needed. Leading and trailing spaces are part of the value and are kept.
func truncate(value string, limit int) string {
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	return ansi.Truncate(value, limit, "…")
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// filterStrings drops blank entries.
func filterStrings(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// positionRunes reports whether runes may be typed into the position field.
func positionRunes(runes []rune) bool {
	for _, r := range runes {
		if r != '-' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// plural formats a count with its noun.
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// singleLine folds line breaks and tabs into spaces.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
