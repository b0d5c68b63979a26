package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret")
	userID := uuid.New()

	signed, err := svc.Issue(userID, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, ok := svc.Verify(signed)
	assert.True(t, ok)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "a@b.com", identity.Email)
}

func TestVerifyFailures(t *testing.T) {
	svc := NewService("test-secret")

	t.Run("malformed token", func(t *testing.T) {
		_, ok := svc.Verify("not-a-token")
		assert.False(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret")
		signed, err := other.Issue(uuid.New(), "a@b.com")
		require.NoError(t, err)

		_, ok := svc.Verify(signed)
		assert.False(t, ok)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now()
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
			Email:  "a@b.com",
			UserID: uuid.New().String(),
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, ok := svc.Verify(signed)
		assert.False(t, ok)
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Email:  "a@b.com",
			UserID: uuid.New().String(),
		})
		signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, ok := svc.Verify(signed)
		assert.False(t, ok)
	})

	t.Run("bad user id claim", func(t *testing.T) {
		bad := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Email:  "a@b.com",
			UserID: "not-a-uuid",
		})
		signed, err := bad.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, ok := svc.Verify(signed)
		assert.False(t, ok)
	})
}

func TestVerifyFailureIsIdempotent(t *testing.T) {
	svc := NewService("test-secret")

	// Verifying the same bad token twice never yields a partial or cached
	// success.
	for i := 0; i < 2; i++ {
		identity, ok := svc.Verify("malformed")
		assert.False(t, ok)
		assert.Equal(t, Identity{}, identity)
	}
}
