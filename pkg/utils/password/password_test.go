package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("gizli-sifre-123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "scrypt$"))
	assert.True(t, Verify("gizli-sifre-123", hash))
	assert.False(t, Verify("yanlis-sifre", hash))
	assert.False(t, Verify("", hash))
}

func TestHash_SaltIsRandom(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "per-user salt makes equal passwords hash differently")
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerify_MalformedHashes(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"scrypt$16384$8",
		"bcrypt$10$abc$def$ghi$jkl",
		"scrypt$x$8$1$c2FsdA$a2V5",
		"scrypt$16384$8$1$!!!$a2V5",
		"scrypt$16384$8$1$c2FsdA$!!!",
	}
	for _, encoded := range cases {
		assert.False(t, Verify("anything", encoded), "hash %q must not verify", encoded)
	}
}
