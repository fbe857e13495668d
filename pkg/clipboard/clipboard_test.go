package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	var c ReadWriter = &Memory{}

	text, err := c.Read()
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, c.Write("https://wavebox.io"))

	text, err = c.Read()
	require.NoError(t, err)
	assert.Equal(t, "https://wavebox.io", text)
}
