package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "pass123"},
		{name: "complex password", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "пароль123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.NotEqual(t, tt.password, hash)

			require.True(t, hasher.Verify(tt.password, hash))
			require.False(t, hasher.Verify(tt.password+"x", hash))
			require.False(t, hasher.Verify("", hash))
		})
	}
}

func TestPasswordHasher_UniqueHashes(t *testing.T) {
	hasher := NewPasswordHasher()

	hash1, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	// Salts differ, so hashes do too; both still verify
	require.NotEqual(t, hash1, hash2)
	require.True(t, hasher.Verify("samepassword", hash1))
	require.True(t, hasher.Verify("samepassword", hash2))
}

func TestPasswordHasher_MalformedStoredHash(t *testing.T) {
	hasher := NewPasswordHasher()

	require.False(t, hasher.Verify("pass123", "not-a-bcrypt-hash"))
	require.False(t, hasher.Verify("pass123", ""))
}
