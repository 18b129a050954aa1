package ports

import (
	"context"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, role domain.Role, name, email, password string) (*domain.Actor, string, error)
	Signin(ctx context.Context, role domain.Role, login, password string) (*domain.Actor, string, error)
	Signout(ctx context.Context, claims *domain.Claims) error
}
