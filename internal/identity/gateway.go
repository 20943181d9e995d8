package identity

import (
	"context"
	"time"
)

// Tokens is the credential set issued by the identity provider on a
// successful authentication.
type Tokens struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
}

// CreateUserInput carries the validated attributes for a new directory
// entry. The temporary password is promoted to a permanent one as part of
// creation, with the provider's invitation message suppressed.
type CreateUserInput struct {
	Email             string
	FirstName         string
	LastName          string
	Role              string
	TemporaryPassword string
}

// CreatedUser is the provider's view of a freshly created directory entry.
type CreatedUser struct {
	UserID string
	Status string
}

// User is a directory entry as returned by a listing.
type User struct {
	Email            string
	FirstName        string
	LastName         string
	Role             string
	Status           string
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

// Gateway is the interface the handlers require from the external identity
// provider. Implementations return pkg/errors kinds so handlers can map
// failures to HTTP statuses without knowing provider internals.
type Gateway interface {
	Authenticate(ctx context.Context, email, password string) (*Tokens, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*CreatedUser, error)
	ListUsers(ctx context.Context, limit int64) ([]User, error)
}
