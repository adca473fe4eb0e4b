package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned when the token signature is fine but the
	// expiry has passed. Callers show a distinct message for this case.
	ErrExpired = errors.New("token expired")

	// ErrInvalid is returned for every other verification failure:
	// bad signature, malformed token, or missing user_id/role claims.
	ErrInvalid = errors.New("invalid token")
)

// Claims holds the typed JWT payload shared between the auth server and the
// resource server.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate creates an HS256-signed token carrying the user id and role,
// expiring after ttl.
func Generate(secret string, userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify parses and validates a token string. Tokens without user_id or role
// claims are rejected even when the signature is valid.
func Verify(secret, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.UserID == 0 || claims.Role == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}
