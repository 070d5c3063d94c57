package graph

import (
	"testing"
)

// TestNormalizeNodeID tests ID normalization
func TestNormalizeNodeID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{"UPPERCASE", "uppercase"},
		{"with-dash", "with-dash"},
		{"with_underscore", "with_underscore"},
		{"with spaces", "with_spaces"},
		{"special@chars#here", "special_chars_here"},
		{"dots.and.stuff", "dots_and_stuff"},
		{"123numbers", "123numbers"},
		{"", ""},
	}

	for _, tt := range tests {
		result := normalizeNodeID(tt.input)
		if result != tt.expected {
			t.Errorf("normalizeNodeID(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

// TestUniqueIDs tests that colliding labels get distinct IDs
func TestUniqueIDs(t *testing.T) {
	got := uniqueIDs([]string{"A", "a", "a b", "a_b", ""})
	want := []string{"a", "a_2", "a_b", "a_b_2", "_"}

	if len(got) != len(want) {
		t.Fatalf("uniqueIDs returned %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniqueIDs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
