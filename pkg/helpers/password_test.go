package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	assert.True(t, CompareHashAndPassword(hash, "pw1"))
	assert.False(t, CompareHashAndPassword(hash, "pw2"))
	assert.False(t, CompareHashAndPassword("", "pw1"))
}
