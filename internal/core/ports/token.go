package ports

import "github.com/coursehub/pricing-api/internal/core/domain"

// TokenIssuer signs self-contained session tokens binding a subject and role.
type TokenIssuer interface {
	Issue(subjectID, role string) (string, error)
}

// TokenVerifier checks signature integrity and expiration of a session token.
// Failures are one of domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid
// or domain.ErrTokenExpired.
type TokenVerifier interface {
	Verify(token string) (domain.TokenClaims, error)
}
