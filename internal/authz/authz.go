package authz

import (
	"fmt"
	"strings"

	"user-service/internal/token"
	apperrors "user-service/pkg/errors"
)

// Role is the closed set of roles governing access. There is no implicit
// hierarchy: every operation declares the exact roles it permits.
type Role string

const (
	RoleUser       Role = "User"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

const msgAccessDeniedFmt = "access denied, required roles: %s"

// Authorize extracts and decodes the bearer token from an Authorization
// header value and checks the role claim against the allow-list. An empty
// allow-list means any authenticated caller. Credential failures and
// access denials carry distinct error kinds so callers can map them to
// 401 and 403 without inspecting messages.
func Authorize(header string, allowed ...Role) (*token.Claims, error) {
	raw, err := token.ExtractBearer(header)
	if err != nil {
		return nil, err
	}

	claims, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}

	if len(allowed) == 0 {
		return claims, nil
	}

	for _, role := range allowed {
		if Role(claims.Role) == role {
			return claims, nil
		}
	}

	return nil, apperrors.AccessDenied(fmt.Sprintf(msgAccessDeniedFmt, roleList(allowed)))
}

func roleList(roles []Role) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return strings.Join(names, ", ")
}
