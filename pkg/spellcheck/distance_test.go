package spellcheck

import "testing"

func TestEditDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"teh", "the", 1},
		{"teh", "ten", 1},
		{"kitten", "sitting", 3},
		{"ca", "abc", 3},
		{"héllo", "hello", 1},
		{"recieve", "receive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := editDistance(tt.a, tt.b); got != tt.expected {
				t.Errorf("editDistance(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	t.Parallel()

	if got := commonPrefix("teh", "ten"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	if got := commonPrefix("abc", "xyz"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
