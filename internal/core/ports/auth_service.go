package ports

import (
	"context"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// RegisterInput carries the fields a visitor submits when signing up.
// Registration always produces a CLIENT; roles are promoted later by a manager.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by Register and Login: a sanitized user plus a
// bearer token for the HTTP surface.
type AuthResult struct {
	Token string
	User  domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	// Users and Operators back the manager's staff view.
	Users(ctx context.Context) ([]domain.User, error)
	Operators(ctx context.Context) ([]domain.User, error)
	ChangeRole(ctx context.Context, userID string, role domain.Role) error
}
