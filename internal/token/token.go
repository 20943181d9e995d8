package token

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "user-service/pkg/errors"
)

const (
	bearerPrefix = "Bearer "

	// Cognito exposes custom attributes under the custom: namespace.
	claimEmail      = "email"
	claimGivenName  = "given_name"
	claimFamilyName = "family_name"
	claimRole       = "role"
	claimCustomRole = "custom:role"

	// DefaultRole is assumed when a token carries no role claim.
	DefaultRole = "User"

	msgMissingAuthorization = "no valid authorization token"
	msgInvalidTokenFormat   = "invalid token format"
)

// Claims holds the identity attributes recovered from a decoded bearer
// token. They live only for the duration of one request.
type Claims struct {
	Email      string
	GivenName  string
	FamilyName string
	Role       string
}

// ExtractBearer strips the literal "Bearer " prefix (case-sensitive,
// single space) from an Authorization header value.
func ExtractBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", apperrors.MissingCredential(msgMissingAuthorization)
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}

// Decode parses the claims segment of a JWT without verifying its
// signature. Signature verification is the responsibility of the fronting
// API gateway; this service only recovers the claims it forwarded.
func Decode(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, apperrors.MalformedToken(msgInvalidTokenFormat)
	}

	decoded := &Claims{
		Email:      stringClaim(claims, claimEmail),
		GivenName:  stringClaim(claims, claimGivenName),
		FamilyName: stringClaim(claims, claimFamilyName),
		Role:       stringClaim(claims, claimCustomRole),
	}

	if decoded.Role == "" {
		decoded.Role = stringClaim(claims, claimRole)
	}
	if decoded.Role == "" {
		decoded.Role = DefaultRole
	}

	return decoded, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}
