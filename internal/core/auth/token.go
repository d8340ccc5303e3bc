package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// TokenIssuer issues and validates HS256-signed bearer tokens binding a
// subject (username) to an expiry. The signing key is process-wide
// configuration loaded once at startup; rotation is out of scope.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue produces a signed token with subject=username and expiry=now+ttl.
func (t *TokenIssuer) Issue(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate verifies signature and expiry and extracts the subject. Every
// failure mode collapses to domain.ErrInvalidToken: callers must not be able
// to tell a bad signature from an expired token or a missing subject, so no
// failure detail leaks past this point. A token is invalid at exactly its
// expiry instant.
func (t *TokenIssuer) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
