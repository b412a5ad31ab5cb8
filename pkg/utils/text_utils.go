package utils

import "strings"

// WrapText wraps text into lines of at most maxColumns characters.
//
// Columns are counted in runes, not bytes, so accented and CJK text wraps at
// the right width and a hard break can never tear a multi-byte rune apart.
// Wrapping happens at word boundaries; a single word longer than the column
// budget is hard-broken so no line ever exceeds it. maxColumns <= 0 returns
// the input as a single line.
func WrapText(s string, maxColumns int) []string {
	if maxColumns <= 0 || s == "" {
		return []string{s}
	}

	var lines []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(s) {
		runes := []rune(word)

		// Hard-break words that exceed the budget on their own.
		for len(runes) > maxColumns {
			flush()
			lines = append(lines, string(runes[:maxColumns]))
			runes = runes[maxColumns:]
		}

		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= maxColumns:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
