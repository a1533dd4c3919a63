package hasher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashVerify_Roundtrip(t *testing.T) {
	ctx := context.Background()
	h := NewBcrypt(bcrypt.MinCost, 2)

	hash, err := h.Hash(ctx, "Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	ok, err := h.Verify(ctx, "Passw0rd!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(ctx, "Passw0rd?", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	ctx := context.Background()
	h := NewBcrypt(bcrypt.MinCost, 1)

	first, err := h.Hash(ctx, "Passw0rd!")
	require.NoError(t, err)
	second, err := h.Hash(ctx, "Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_Hash_Empty(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost, 1).Hash(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	ok, err := NewBcrypt(bcrypt.MinCost, 1).Verify(context.Background(), "Passw0rd!", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcrypt_CancelledContext(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, 1)
	h.slots <- struct{}{} // occupy the only worker

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "Passw0rd!")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewBcrypt_Defaults(t *testing.T) {
	h := NewBcrypt(100, 0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
	assert.Positive(t, cap(h.slots))
}

func TestBcrypt_LongPassword(t *testing.T) {
	ctx := context.Background()
	h := NewBcrypt(bcrypt.MinCost, 1)
	long := "Passw0rd!" + strings.Repeat("a", 70)
	require.Greater(t, len(long), 72)

	hash, err := h.Hash(ctx, long)
	require.NoError(t, err)

	ok, err := h.Verify(ctx, long, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Passwords sharing the first 72 bytes must still differ.
	ok, err = h.Verify(ctx, long+"b", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_Hash_SingleWrap(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, 1)
	h.slots <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "Passw0rd!")
	require.Error(t, err)
	assert.Equal(t, "failed to hash password: context canceled", err.Error())
}
