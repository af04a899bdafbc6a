package ports

import (
	"context"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// AuthService resolves submitted credentials into a session identity.
// Neither path verifies a password or consults a user registry; the
// presentation layer is responsible for rejecting empty fields before
// calling in.
type AuthService interface {
	// Login fabricates an identity from the email: the display name is the
	// address prefix and the role is derived from the address content.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register fabricates a member identity with a freshly generated id and
	// the submitted name verbatim.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
}
