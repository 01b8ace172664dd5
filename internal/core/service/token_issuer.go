package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenIssuer issues and verifies HS256-signed session tokens. The same
// secret must verify what it issued; tokens are stateless and expire on
// their own, there is no revocation list.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token binding the subject and role with an
// absolute expiration of now + ttl.
func (ti *TokenIssuer) Issue(subjectID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ti.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(ti.secret)
}

// Verify checks signature integrity and expiration. Failures are classified
// into the three domain sentinels so callers can log them apart while still
// treating all of them as unauthenticated.
func (ti *TokenIssuer) Verify(token string) (domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return ti.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.TokenClaims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return domain.TokenClaims{}, domain.ErrTokenMalformed
		default:
			return domain.TokenClaims{}, domain.ErrTokenSignatureInvalid
		}
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, domain.ErrTokenSignatureInvalid
	}

	out := domain.TokenClaims{}
	out.SubjectID, _ = claims["sub"].(string)
	out.Role, _ = claims["role"].(string)
	if out.SubjectID == "" || out.Role == "" {
		return domain.TokenClaims{}, domain.ErrTokenMalformed
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
