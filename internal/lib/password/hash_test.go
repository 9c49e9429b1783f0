package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_And_CompareHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "long password", password: strings.Repeat("a", 70)},
		{name: "unicode password", password: "пароль-密码-🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2"))

			assert.NoError(t, CompareHash(hash, tt.password))
			assert.Error(t, CompareHash(hash, tt.password+"x"))
		})
	}
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	hash1, err := GetHash("password123")
	require.NoError(t, err)
	hash2, err := GetHash("password123")
	require.NoError(t, err)

	// bcrypt солит каждый хэш, повторный вызов не должен давать совпадения.
	assert.NotEqual(t, hash1, hash2)
	assert.NoError(t, CompareHash(hash1, "password123"))
	assert.NoError(t, CompareHash(hash2, "password123"))
}
