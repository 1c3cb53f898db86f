package ports

import (
	"context"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

type AuthAPI interface {
	Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error)
	ObtainToken(ctx context.Context, creds domain.LoginCredentials) (domain.Credential, error)
	// RefreshToken exchanges the refresh token for a new access token only.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	CurrentUser(ctx context.Context) (domain.UserProfile, error)
}
