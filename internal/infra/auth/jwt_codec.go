// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Tokens are signed with HS256 under a single process-wide secret and carry an
// explicit exp claim, so a captured token string goes stale on its own instead
// of relying on the cookie max-age alone.
type jwtCodec struct {
	secret     string
	sessionTTL time.Duration
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtCodec{
		secret:     cfg.SecretKey.Session,
		sessionTTL: cfg.Auth.SessionTTL,
	}, nil
}

// Issue produces a signed token encoding the numeric subject id.
func (c *jwtCodec) Issue(subjectID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(c.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the subject id.
// Every failure mode collapses into the domain's invalid-token error so
// callers never learn why verification failed.
func (c *jwtCodec) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(c.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("failed to verify session token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims type")
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("subject claim is not numeric")
	}

	return subjectID, nil
}

// SessionTTL returns the configured session lifetime.
func (c *jwtCodec) SessionTTL() time.Duration {
	return c.sessionTTL
}
