package crypto_test

import (
	"strings"
	"testing"

	"wms/internal/adapters/out/crypto"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast
func newTestHasher() *crypto.Argon2Hasher {
	return crypto.NewArgon2Hasher(crypto.Params{Memory: 1024, Iterations: 1, Parallelism: 1})
}

func TestArgon2Hasher_Hash(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("Secret#123")
	require.NoError(t, err)
	second, err := h.Hash("Secret#123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, first, "Secret#123")
	assert.NotEqual(t, first, second, "salt must differ between hashes")
}

func TestArgon2Hasher_Verify(t *testing.T) {
	h := newTestHasher()
	encoded, err := h.Hash("Secret#123")
	require.NoError(t, err)

	ok, err := h.Verify("Secret#123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("secret#123", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("uses parameters stored in the hash", func(t *testing.T) {
		other := crypto.NewArgon2Hasher(crypto.DefaultParams)

		ok, err := other.Verify("Secret#123", encoded)

		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestArgon2Hasher_Verify_MalformedHash(t *testing.T) {
	h := newTestHasher()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
	} {
		ok, err := h.Verify("whatever", encoded)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid, encoded)
		assert.False(t, ok)
	}
}

func TestArgon2Hasher_DefaultParams(t *testing.T) {
	assert.Equal(t, crypto.Params{Memory: 64 * 1024, Iterations: 3, Parallelism: 2, SaltLength: 16, KeyLength: 32}, crypto.DefaultParams)

	encoded, err := crypto.NewArgon2Hasher(crypto.Params{}).Hash("Secret#123")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=2$"))
}
