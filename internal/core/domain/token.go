package domain

import (
	"errors"
	"time"
)

// Token verification failure modes. All three are unauthenticated from the
// caller's point of view but are logged and counted separately.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// TokenClaims is the identity a verified session token carries.
type TokenClaims struct {
	SubjectID string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
