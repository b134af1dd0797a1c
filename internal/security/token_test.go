package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-0123456789"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, err := tm.GenerateAccessToken("user-1", "ten-1", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ten-1", claims.TenantID)
	assert.Equal(t, "staff", claims.Role)
}

func TestValidateToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	t.Run("garbage token is invalid", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other := NewTokenManager("another-secret-also-long-enough-987654321", 60)
		token, err := other.GenerateAccessToken("user-1", "ten-1", "")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAPIKeyLifecycle(t *testing.T) {
	id, secret, hash, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, secret, 48)

	t.Run("secret verifies against its hash", func(t *testing.T) {
		assert.True(t, VerifyAPIKey(hash, secret))
		assert.False(t, VerifyAPIKey(hash, "wrong-secret"))
	})

	t.Run("presented key splits into id and secret", func(t *testing.T) {
		gotID, gotSecret, err := SplitAPIKey(id + "." + secret)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, secret, gotSecret)
	})

	t.Run("malformed keys are rejected", func(t *testing.T) {
		for _, presented := range []string{"", "no-dot", ".secret-only", "id-only."} {
			_, _, err := SplitAPIKey(presented)
			assert.ErrorIs(t, err, ErrMalformedAPIKey, presented)
		}
	})
}
