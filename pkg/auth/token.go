package auth

import (
	"fmt"
	"time"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "beanline"

var jwtSigningMethod = jwt.SigningMethodHS256

// AdminClaims are the claims minted after a successful passcode exchange.
// The gate is a UI lock, not real authentication, so the claims carry no
// identity beyond the role.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// MintAdminToken issues a signed JWT granting the admin role until the
// configured TTL elapses.
func MintAdminToken(cfg config.AdminConfig, now time.Time) (string, error) {
	if cfg.TokenSecret == "" {
		return "", fmt.Errorf("admin token secret is required")
	}
	ttl := cfg.TokenTTL()
	if ttl <= 0 {
		return "", fmt.Errorf("admin token ttl must be positive")
	}

	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("signing admin token: %w", err)
	}
	return signed, nil
}

// ParseAdminToken validates the JWT string and returns typed claims.
func ParseAdminToken(cfg config.AdminConfig, tokenString string) (*AdminClaims, error) {
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("admin token secret is required")
	}

	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.TokenSecret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, err
	}
	if claims.Role != "admin" {
		return nil, fmt.Errorf("unexpected role %q", claims.Role)
	}

	return claims, nil
}
