package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomStringRejectsBadInput(t *testing.T) {
	_, err := RandomString(-1, "abc")
	assert.Error(t, err)

	_, err = RandomString(4, "")
	assert.Error(t, err)
}

func TestRandomStringZeroLength(t *testing.T) {
	got, err := RandomString(0, "abc")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRandomStringStaysInAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	got, err := RandomString(64, alphabet)
	require.NoError(t, err)
	require.Len(t, got, 64)
	for _, char := range got {
		assert.True(t, strings.ContainsRune(alphabet, char), "char %q outside alphabet", char)
	}

	single, err := RandomString(8, "X")
	require.NoError(t, err)
	assert.Equal(t, "XXXXXXXX", single)
}
