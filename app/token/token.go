package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL is the lifetime of an issued session token.
const TTL = time.Hour

// Claims represents the signed session payload.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// Identity is the decoded result of a successful verification.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Service issues and verifies session tokens. It is stateless; validity is
// purely a function of signature and expiry at verification time.
type Service struct {
	secret string
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: secret}
}

// Issue encodes the identity into a signed token expiring in one hour.
func (s *Service) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		Email:  email,
		UserID: userID.String(),
	})

	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry. Any failure, malformed token, bad
// signature or expiry, yields ok=false; it never returns a partial identity.
func (s *Service) Verify(tokenString string) (Identity, bool) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !t.Valid {
		return Identity{}, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: userID, Email: claims.Email}, true
}
