package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tradlogistics/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Claims is the JWT payload for an authenticated account.
type Claims struct {
	AccountID string `json:"sub"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller extracted from a validated token.
type Principal struct {
	AccountID kernel.UUID
	Role      string
}

// TokenManager signs and validates bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given HS256 secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken issues a signed token for the given account and role.
func (m *TokenManager) GenerateToken(accountID kernel.UUID, role string) (string, error) {
	claims := Claims{
		AccountID: accountID.String(),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and verifies a token string, returning its claims.
func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// AuthMiddleware validates the bearer token and stashes the caller's
// Principal in the request context.
func AuthMiddleware(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return respondError(c, http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return respondError(c, http.StatusUnauthorized, "invalid or expired token")
			}

			accountID, err := kernel.UUIDFromString(claims.AccountID)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, "invalid token subject")
			}

			c.Set(principalContextKey, Principal{AccountID: accountID, Role: claims.Role})
			return next(c)
		}
	}
}

// principalFrom returns the authenticated Principal set by AuthMiddleware.
func principalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}
