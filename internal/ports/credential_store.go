package ports

import (
	"context"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

// CredentialStore persists the token pair across process restarts. Get
// returns a zero Credential when nothing is stored; Clear on an empty
// store is a no-op.
type CredentialStore interface {
	Get(ctx context.Context) (domain.Credential, error)
	Set(ctx context.Context, cred domain.Credential) error
	Clear(ctx context.Context) error
}
