package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashRoundTrip(t *testing.T) {
	t.Parallel()

	h := New(nil)

	for _, plaintext := range []string{"secret", "correct horse battery staple", "пароль", "p@ss!"} {
		digest, err := h.Hash(plaintext)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(digest, "$argon2id$"), "digest should be self-describing: %s", digest)
		assert.True(t, h.Verify(plaintext, digest))
	}
}

func TestHashDistinctInputs(t *testing.T) {
	t.Parallel()

	h := New(nil)

	d1, err := h.Hash("password-one")
	require.NoError(t, err)
	d2, err := h.Hash("password-two")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.False(t, h.Verify("password-one", d2))
	assert.False(t, h.Verify("password-two", d1))
}

func TestHashSaltsDiffer(t *testing.T) {
	t.Parallel()

	h := New(nil)

	d1, err := h.Hash("same-password")
	require.NoError(t, err)
	d2, err := h.Hash("same-password")
	require.NoError(t, err)

	// Random salt makes every digest unique even for identical input
	assert.NotEqual(t, d1, d2)
}

func TestVerifyLegacyBcryptDigest(t *testing.T) {
	t.Parallel()

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)

	h := New([]string{SchemeArgon2id, SchemeBcrypt})

	assert.True(t, h.Verify("old-password", string(legacy)))
	assert.False(t, h.Verify("wrong-password", string(legacy)))

	// New digests still use the primary scheme
	digest, err := h.Hash("old-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
}

func TestVerifySchemeOutsideList(t *testing.T) {
	t.Parallel()

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt digests must not verify when bcrypt is not configured
	h := New([]string{SchemeArgon2id})
	assert.False(t, h.Verify("old-password", string(legacy)))
}

func TestVerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	h := New(nil)

	for _, digest := range []string{
		"",
		"not-a-digest",
		"$md5$abc",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=1,p=4$!!notbase64!!$AAAA",
		"$argon2id$v=19$bad-params$AAAA$AAAA",
		"$argon2id$v=12$m=65536,t=1,p=4$AAAA$AAAA",
		"$argon2id$v=19$m=65536,t=0,p=4$AAAA$AAAA",
		"$argon2id$v=19$m=65536,t=1,p=0$AAAA$AAAA",
		"$argon2id$v=19$m=4294967295,t=1,p=4$AAAA$AAAA",
	} {
		assert.False(t, h.Verify("anything", digest), "digest %q should not verify", digest)
	}
}

func TestBcryptPrimary(t *testing.T) {
	t.Parallel()

	h := New([]string{SchemeBcrypt})

	digest, err := h.Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2"))
	assert.True(t, h.Verify("secret", digest))
}

func TestUnsupportedPrimaryScheme(t *testing.T) {
	t.Parallel()

	h := New([]string{"scrypt"})

	_, err := h.Hash("secret")
	assert.Error(t, err)
}
