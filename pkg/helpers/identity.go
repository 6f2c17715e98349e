package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager verifies identity tokens minted by the external identity
// provider. The provider and this API share an HS256 secret; the API only ever
// reads the user id out of the token. Issue exists for the seeder and tests.
type TokenManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{Secret: []byte(secret), TTL: ttl}
}

type IdentityClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issue signs an identity token for userID.
func (m *TokenManager) Issue(userID string) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &IdentityClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify parses a token and returns its claims.
func (m *TokenManager) Verify(tokenStr string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
