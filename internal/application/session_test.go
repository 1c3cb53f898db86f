package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(auth *fakeAuthAPI, store *memCredStore) *Session {
	return NewSession(auth, store, nil, zerolog.Nop())
}

func TestLoginSuccessAuthenticatesAndStoresTokens(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		obtainFn: func(creds domain.LoginCredentials) (domain.Credential, error) {
			require.Equal(t, "ada", creds.Username)
			return domain.Credential{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil
		},
	}
	store := &memCredStore{}
	session := newTestSession(auth, store)

	result := session.Login(context.Background(), domain.LoginCredentials{Username: "ada", Password: "pw"})
	require.True(t, result.Success)

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, StateAuthenticated, session.State())

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", cred.AccessToken)
	assert.Equal(t, "refresh-1", cred.RefreshToken)
}

func TestLoginFailureLeavesCredentialsUntouched(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		obtainFn: func(domain.LoginCredentials) (domain.Credential, error) {
			return domain.Credential{}, fmt.Errorf("bad credentials: %w", domain.ErrAuthExpired)
		},
	}
	store := &memCredStore{cred: domain.Credential{AccessToken: "old-access", RefreshToken: "old-refresh"}}
	session := newTestSession(auth, store)

	result := session.Login(context.Background(), domain.LoginCredentials{Username: "ada", Password: "wrong"})
	require.False(t, result.Success)
	assert.Equal(t, "Invalid username or password.", result.Error)

	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, StateAnonymous, session.State())

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old-access", cred.AccessToken)
	assert.Equal(t, "old-refresh", cred.RefreshToken)
}

func TestLogoutClearsTokensAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store := &memCredStore{cred: domain.Credential{AccessToken: "a", RefreshToken: "r"}}
	session := newTestSession(&fakeAuthAPI{}, store)
	require.NoError(t, session.Resume(context.Background()))
	require.True(t, session.IsAuthenticated())

	require.NoError(t, session.Logout(context.Background()))
	assert.False(t, session.IsAuthenticated())

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cred.IsZero())
	assert.Empty(t, cred.RefreshToken)

	// A second logout from Anonymous still succeeds.
	require.NoError(t, session.Logout(context.Background()))
	assert.False(t, session.IsAuthenticated())
}

func TestRegisterPasswordMismatchMakesNoNetworkCalls(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{}
	session := newTestSession(auth, &memCredStore{})

	result := session.Register(context.Background(), domain.Registration{
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "abc123",
		PasswordConfirm: "xyz789",
	})

	require.False(t, result.Success)
	assert.Equal(t, "Passwords do not match", result.Error)
	assert.Zero(t, auth.callCount())
}

func TestRegisterSuccessDoesNotAuthenticate(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		registerFn: func(reg domain.Registration) (domain.UserProfile, error) {
			return domain.UserProfile{ID: 1, Username: reg.Username}, nil
		},
	}
	store := &memCredStore{}
	session := newTestSession(auth, store)

	result := session.Register(context.Background(), domain.Registration{
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "abc123",
		PasswordConfirm: "abc123",
	})

	require.True(t, result.Success)
	assert.False(t, session.IsAuthenticated())

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cred.IsZero())
}

func TestRegisterWhileAuthenticatedKeepsTheSession(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		registerFn: func(reg domain.Registration) (domain.UserProfile, error) {
			return domain.UserProfile{ID: 2, Username: reg.Username}, nil
		},
	}
	store := &memCredStore{cred: domain.Credential{AccessToken: "a", RefreshToken: "r"}}
	session := newTestSession(auth, store)
	require.NoError(t, session.Resume(context.Background()))
	require.True(t, session.IsAuthenticated())

	result := session.Register(context.Background(), domain.Registration{
		Username:        "grace",
		Email:           "grace@example.com",
		Password:        "abc123",
		PasswordConfirm: "abc123",
	})

	require.True(t, result.Success)
	assert.Equal(t, StateAuthenticated, session.State())

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", cred.AccessToken)
}

func TestRefreshOverwritesOnlyAccessToken(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		refreshFn: func(refreshToken string) (string, error) {
			require.Equal(t, "refresh-1", refreshToken)
			return "access-2", nil
		},
	}
	store := &memCredStore{cred: domain.Credential{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	session := newTestSession(auth, store)

	require.NoError(t, session.Refresh(context.Background()))

	cred, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", cred.AccessToken)
	assert.Equal(t, "refresh-1", cred.RefreshToken)
}

func TestRefreshWithoutStoredRefreshTokenFails(t *testing.T) {
	t.Parallel()

	session := newTestSession(&fakeAuthAPI{}, &memCredStore{})

	err := session.Refresh(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCurrentUserRequiresAuthentication(t *testing.T) {
	t.Parallel()

	session := newTestSession(&fakeAuthAPI{}, &memCredStore{})

	_, err := session.CurrentUser(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCurrentUserFetchesOnceAndCaches(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{
		currentFn: func() (domain.UserProfile, error) {
			return domain.UserProfile{ID: 1, Username: "ada", Email: "ada@example.com"}, nil
		},
	}
	store := &memCredStore{cred: domain.Credential{AccessToken: "a", RefreshToken: "r"}}
	session := newTestSession(auth, store)
	require.NoError(t, session.Resume(context.Background()))

	first, err := session.CurrentUser(context.Background())
	require.NoError(t, err)
	second, err := session.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, auth.callCount())
}

func TestCurrentUserCacheDropsOnLogin(t *testing.T) {
	t.Parallel()

	calls := 0
	auth := &fakeAuthAPI{
		obtainFn: func(domain.LoginCredentials) (domain.Credential, error) {
			return domain.Credential{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
		currentFn: func() (domain.UserProfile, error) {
			calls++
			return domain.UserProfile{ID: int64(calls), Username: "ada"}, nil
		},
	}
	store := &memCredStore{cred: domain.Credential{AccessToken: "a1", RefreshToken: "r1"}}
	session := newTestSession(auth, store)
	require.NoError(t, session.Resume(context.Background()))

	first, err := session.CurrentUser(context.Background())
	require.NoError(t, err)

	result := session.Login(context.Background(), domain.LoginCredentials{Username: "ada", Password: "pw"})
	require.True(t, result.Success)

	second, err := session.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestResumeWithoutStoredCredentialStaysAnonymous(t *testing.T) {
	t.Parallel()

	session := newTestSession(&fakeAuthAPI{}, &memCredStore{})
	require.NoError(t, session.Resume(context.Background()))
	assert.Equal(t, StateAnonymous, session.State())
}

func TestErrorMessageNormalization(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ErrorMessage(nil))
	assert.Equal(t, "Passwords do not match",
		ErrorMessage(&domain.ValidationError{Field: "password_confirm", Message: "Passwords do not match"}))
	assert.Equal(t, "Out of stock",
		ErrorMessage(&domain.RequestError{StatusCode: 400, Detail: "Out of stock"}))
	assert.Equal(t, "Something went wrong. Please try again.",
		ErrorMessage(&domain.RequestError{StatusCode: 500}))
	assert.Equal(t, "Please sign in first.", ErrorMessage(domain.ErrNotAuthenticated))
	assert.Equal(t, "Your session has expired. Please sign in again.",
		ErrorMessage(fmt.Errorf("wrapped: %w", domain.ErrAuthExpired)))
	assert.Equal(t, "That wasn't found.", ErrorMessage(domain.ErrNotFound))
	assert.Equal(t, "Something went wrong. Please try again.", ErrorMessage(errors.New("boom")))
}
