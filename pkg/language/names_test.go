package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFor(t *testing.T) {
	t.Parallel()

	names := NewNames("en")

	tests := []struct {
		code     string
		expected string
		ok       bool
	}{
		{code: "en", expected: "English", ok: true},
		{code: "en_GB", expected: "British English", ok: true},
		{code: "en-US", expected: "American English", ok: true},
		{code: "de", expected: "German", ok: true},
		{code: "", ok: false},
		{code: "not a language!", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			name, ok := names.NameFor(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestNewNamesFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	name, ok := NewNames("!!").NameFor("fr")
	assert.True(t, ok)
	assert.Equal(t, "French", name)
}

func TestNewNamesLocalised(t *testing.T) {
	t.Parallel()

	name, ok := NewNames("de").NameFor("en")
	assert.True(t, ok)
	assert.Equal(t, "Englisch", name)
}
