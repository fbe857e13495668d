package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortCommit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0123456", shortCommit("0123456789abcdef"))
	assert.Equal(t, "abc", shortCommit("abc"))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version()+" ("+Commit()+", "+Date()+")", String())
}
