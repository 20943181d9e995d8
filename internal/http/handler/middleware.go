package handler

import (
	"github.com/labstack/echo/v4"

	"user-service/internal/authz"
	"user-service/internal/token"
)

// ContextKeyClaims is the echo context key under which RequireRoles stores
// the resolved claims.
const ContextKeyClaims = "claims"

// RequireRoles authorizes the request's bearer token against the given
// allow-list before invoking the handler. An empty allow-list only
// requires a decodable token.
func RequireRoles(methods string, roles ...authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			claims, err := authz.Authorize(header, roles...)
			if err != nil {
				return respondMappedError(c, methods, err)
			}

			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// GetClaims returns the claims stored by RequireRoles, or nil when the
// route carries no authorization.
func GetClaims(c echo.Context) *token.Claims {
	claims, ok := c.Get(ContextKeyClaims).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
