package env

import (
	"context"
	"errors"
	"os"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

const (
	AccessTokenVar  = "SHOPFRONT_ACCESS_TOKEN"
	RefreshTokenVar = "SHOPFRONT_REFRESH_TOKEN"
)

var ErrReadOnly = errors.New("environment credential source is read-only")

// Source reads the token pair from the environment. It is a read-only
// override for scripted use; Set and Clear always fail so the chain
// routes writes to the durable store.
type Source struct {
	lookup func(string) (string, bool)
}

var _ ports.CredentialStore = (*Source)(nil)

func NewSource() *Source {
	return &Source{lookup: os.LookupEnv}
}

func (s *Source) Get(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	access, _ := s.lookup(AccessTokenVar)
	refresh, _ := s.lookup(RefreshTokenVar)

	return domain.Credential{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Source) Set(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrReadOnly
}

func (s *Source) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrReadOnly
}
