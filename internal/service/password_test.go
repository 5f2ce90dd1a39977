package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_SaltedAndVerifiable(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	require.NotEqual(t, "secret1", first)
	require.NotEqual(t, first, second)
	require.NoError(t, h.Verify(first, "secret1"))
	require.NoError(t, h.Verify(second, "secret1"))
	require.Error(t, h.Verify(first, "secret2"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(0).(*bcryptHasher)
	require.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptHasher(bcrypt.MaxCost + 1).(*bcryptHasher)
	require.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}
