package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// AccessClaims are the claims the authentication collaborator puts in the
// bearer tokens this service consumes. OrgID and Role are trusted as given.
type AccessClaims struct {
	OrgID int32  `json:"org_id"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateToken(orgID int32, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*AccessClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

// GenerateToken mints a token with org/role claims. Used by tests and local
// tooling; production tokens come from the authentication service.
func (m *tokenManager) GenerateToken(orgID int32, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		OrgID: orgID,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
