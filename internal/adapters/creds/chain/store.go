package chain

import (
	"context"
	"errors"
	"fmt"

	envsource "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/creds/env"
	filestore "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/creds/file"
	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
	"github.com/spf13/viper"
)

// Store layers a read-preferred primary source over a durable fallback.
// Reads take the primary's credential when it has one; writes and clears
// try the primary first and fall through to the fallback when the
// primary cannot serve them.
type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	return &Store{primary: primary, fallback: fallback}, nil
}

// NewEnvFirstWithFileFallback is the default wiring: environment
// variables override reads, the TOML file store holds everything else.
func NewEnvFirstWithFileFallback(cfg *viper.Viper) (*Store, error) {
	fileStore, err := filestore.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(envsource.NewSource(), fileStore)
}

func (s *Store) Get(ctx context.Context) (domain.Credential, error) {
	cred, err := s.primary.Get(ctx)
	if err != nil {
		if shouldSkipFallback(err) {
			return domain.Credential{}, err
		}
	} else if !cred.IsZero() {
		return cred, nil
	}

	fallbackCred, fallbackErr := s.fallback.Get(ctx)
	if fallbackErr != nil {
		if err != nil {
			return domain.Credential{}, fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
		}
		return domain.Credential{}, fallbackErr
	}

	return fallbackCred, nil
}

func (s *Store) Set(ctx context.Context, cred domain.Credential) error {
	err := s.primary.Set(ctx, cred)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	if fallbackErr := s.fallback.Set(ctx, cred); fallbackErr != nil {
		return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if err == nil {
		return s.fallback.Clear(ctx)
	}
	if shouldSkipFallback(err) {
		return err
	}

	return s.fallback.Clear(ctx)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
