package validator

import (
	"fmt"
	"regexp"
)

const (
	MinPasswordLength = 8

	errFieldRequiredFmt     = "%s is required"
	errEmailInvalidFmt      = "invalid email format"
	errPasswordMinLengthFmt = "password must be at least %d characters long"
	errRoleNotAllowedFmt    = "role must be one of: %s"
	allowedRolesList        = "Admin, SuperAdmin, User"
)

// Matches one or more non-space/non-@ characters, an @, a domain part and a
// dot-separated suffix. Intentionally permissive; the user pool applies its
// own canonical checks.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var allowedRoles = map[string]struct{}{
	"Admin":      {},
	"SuperAdmin": {},
	"User":       {},
}

// Field pairs a declared field name with its submitted value. Required
// checks run in declaration order so error messages are deterministic.
type Field struct {
	Name  string
	Value string
}

func Required(fields ...Field) error {
	for _, f := range fields {
		if f.Value == "" {
			return fmt.Errorf(errFieldRequiredFmt, f.Name)
		}
	}
	return nil
}

func Email(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}
	return nil
}

func Password(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf(errPasswordMinLengthFmt, MinPasswordLength)
	}
	return nil
}

func RoleName(role string) error {
	if _, ok := allowedRoles[role]; !ok {
		return fmt.Errorf(errRoleNotAllowedFmt, allowedRolesList)
	}
	return nil
}
