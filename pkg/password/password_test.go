package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/door-to-door/pkg/password"
)

func TestHasher_HashYVerify(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	salt, hash, err := h.Hash("Secreto123")
	require.NoError(t, err)
	assert.NotEmpty(t, salt)
	assert.NotEmpty(t, hash)

	assert.NoError(t, h.Verify("Secreto123", salt, hash))
	assert.ErrorIs(t, h.Verify("otra", salt, hash), password.ErrMismatch)
}

func TestHasher_SaltDistintoEnCadaHash(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	s1, _, err := h.Hash("x")
	require.NoError(t, err)
	s2, _, err := h.Hash("x")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
}

func TestHasher_SaltAjenoNoVerifica(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	_, hash, err := h.Hash("x")
	require.NoError(t, err)

	assert.ErrorIs(t, h.Verify("x", "otro-salt", hash), password.ErrMismatch)
}
