package env

import (
	"context"
	"testing"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceWithEnv(vars map[string]string) *Source {
	return &Source{lookup: func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}}
}

func TestGetReadsTokenPairFromEnvironment(t *testing.T) {
	t.Parallel()

	source := sourceWithEnv(map[string]string{
		AccessTokenVar:  "env-access",
		RefreshTokenVar: "env-refresh",
	})

	cred, err := source.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-access", cred.AccessToken)
	assert.Equal(t, "env-refresh", cred.RefreshToken)
}

func TestGetReturnsZeroCredentialWhenUnset(t *testing.T) {
	t.Parallel()

	cred, err := sourceWithEnv(nil).Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cred.IsZero())
}

func TestWritesAreRejected(t *testing.T) {
	t.Parallel()

	source := sourceWithEnv(nil)
	ctx := context.Background()

	assert.ErrorIs(t, source.Set(ctx, domain.Credential{AccessToken: "a", RefreshToken: "r"}), ErrReadOnly)
	assert.ErrorIs(t, source.Clear(ctx), ErrReadOnly)
}
