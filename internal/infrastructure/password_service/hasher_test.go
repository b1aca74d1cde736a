package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Password(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hashed)

	assert.NoError(t, h.ComparePasswordHash("Secret123!", hashed))
	assert.ErrorIs(t, h.ComparePasswordHash("secret123!", hashed), ErrPasswordMismatch)
}

func TestHasher_Tokens(t *testing.T) {
	h := NewHasher(0)

	digest := h.HashString("refresh-token")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, h.HashString("refresh-token"))
	assert.True(t, h.CheckHash("refresh-token", digest))
	assert.False(t, h.CheckHash("other-token", digest))
	assert.Empty(t, h.HashString(""))
}
