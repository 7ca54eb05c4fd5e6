package ports

import (
	"context"

	"github.com/postrepublic/quote-system/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName, phone, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
