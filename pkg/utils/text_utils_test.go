package utils

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// TestWrapText verifies word-boundary wrapping.
func TestWrapText(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxColumns int
		expected   []string
	}{
		{
			name:       "fits on one line",
			input:      "hello world",
			maxColumns: 20,
			expected:   []string{"hello world"},
		},
		{
			name:       "wraps at word boundary",
			input:      "the quick brown fox jumps",
			maxColumns: 10,
			expected:   []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:       "exact fit",
			input:      "abcde fghij",
			maxColumns: 11,
			expected:   []string{"abcde fghij"},
		},
		{
			name:       "one over forces wrap",
			input:      "abcde fghijk",
			maxColumns: 11,
			expected:   []string{"abcde", "fghijk"},
		},
		{
			name:       "zero columns returns input",
			input:      "whatever text",
			maxColumns: 0,
			expected:   []string{"whatever text"},
		},
		{
			name:       "empty input",
			input:      "",
			maxColumns: 10,
			expected:   []string{""},
		},
		{
			name:       "collapses whitespace runs",
			input:      "a   b\t c",
			maxColumns: 10,
			expected:   []string{"a b c"},
		},
		{
			// Columns count runes: "naïveté" is 7 runes, not 9 bytes.
			name:       "multi-byte word fits its rune width",
			input:      "naïveté overload",
			maxColumns: 8,
			expected:   []string{"naïveté", "overload"},
		},
		{
			name:       "cjk wraps by rune count",
			input:      "骑士 法师 盗贼",
			maxColumns: 5,
			expected:   []string{"骑士 法师", "盗贼"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapText(tt.input, tt.maxColumns)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("WrapText(%q, %d) = %v, want %v", tt.input, tt.maxColumns, result, tt.expected)
			}
		})
	}
}

// TestWrapTextHardBreak verifies that a word longer than the column budget is
// broken so no line exceeds the budget.
func TestWrapTextHardBreak(t *testing.T) {
	result := WrapText("see abcdefghijklmno yes", 5)

	for _, line := range result {
		if len(line) > 5 {
			t.Errorf("line %q exceeds 5 columns", line)
		}
	}

	expected := []string{"see", "abcde", "fghij", "klmno", "yes"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("WrapText hard break = %v, want %v", result, expected)
	}
}

// TestWrapTextHardBreakMultiByte verifies a hard break lands between runes,
// never inside one, so every output line stays valid UTF-8.
func TestWrapTextHardBreakMultiByte(t *testing.T) {
	result := WrapText("一二三四五六七", 4)

	expected := []string{"一二三四", "五六七"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("WrapText = %v, want %v", result, expected)
	}
	for _, line := range result {
		if !utf8.ValidString(line) {
			t.Errorf("line %q is not valid UTF-8", line)
		}
		if n := len([]rune(line)); n > 4 {
			t.Errorf("line %q is %d runes, budget is 4", line, n)
		}
	}
}
