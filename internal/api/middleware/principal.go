package middleware

import "github.com/labstack/echo/v4"

const principalKey = "auth.principal"

// Principal is the verified identity attached to a request. It is only ever
// stored by a successful run of the Auth middleware, so a role can never be
// read off an unauthenticated request.
type Principal struct {
	SubjectID string
	Role      string
}

// PrincipalFrom returns the Principal set by Auth, if any.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}
