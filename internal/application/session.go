package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
)

// Session owns authentication state: the current user, the authenticated
// flag, and the transitions between them. It is the single source of
// truth other components consult before touching protected data.
type Session struct {
	auth   ports.AuthAPI
	creds  ports.CredentialStore
	clock  ports.Clock
	logger zerolog.Logger

	mu    sync.Mutex
	state SessionState
	user  *domain.UserProfile
}

func NewSession(auth ports.AuthAPI, creds ports.CredentialStore, clock ports.Clock, logger zerolog.Logger) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Session{
		auth:   auth,
		creds:  creds,
		clock:  clock,
		logger: logger,
		state:  StateAnonymous,
	}
}

// Resume short-circuits to Authenticated when a stored credential
// exists, so a fresh process picks up where the last one left off. The
// user profile is never persisted; it is refetched lazily.
func (s *Session) Resume(ctx context.Context) error {
	cred, err := s.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("load stored credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !cred.IsZero() {
		s.state = StateAuthenticated
	}
	return nil
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Register creates an account. Client-side validation runs first: an
// invalid form is rejected with zero network calls. A successful
// registration does not authenticate, and registering while signed in
// leaves the current session untouched.
func (s *Session) Register(ctx context.Context, reg domain.Registration) Result {
	if err := reg.Validate(); err != nil {
		return failureResult(ErrorMessage(err))
	}

	if s.State() == StateAnonymous {
		s.setState(StateAuthenticating)
		defer s.setState(StateAnonymous)
	}

	if _, err := s.auth.Register(ctx, reg); err != nil {
		return failureResult(ErrorMessage(err))
	}
	return okResult()
}

func (s *Session) Login(ctx context.Context, creds domain.LoginCredentials) Result {
	s.setState(StateAuthenticating)

	cred, err := s.auth.ObtainToken(ctx, creds)
	if err != nil {
		s.setState(StateAnonymous)
		if errors.Is(err, domain.ErrAuthExpired) {
			return failureResult("Invalid username or password.")
		}
		return failureResult(ErrorMessage(err))
	}

	if err := s.creds.Set(ctx, cred); err != nil {
		s.setState(StateAnonymous)
		s.logger.Debug().Err(err).Msg("store credential failed")
		return failureResult("Could not save your session. Please try again.")
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = nil
	s.mu.Unlock()

	return okResult()
}

// Refresh exchanges the stored refresh token for a new access token and
// overwrites only the access half of the pair.
func (s *Session) Refresh(ctx context.Context) error {
	cred, err := s.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("load stored credential: %w", err)
	}
	if cred.RefreshToken == "" {
		return domain.ErrNotAuthenticated
	}

	access, err := s.auth.RefreshToken(ctx, cred.RefreshToken)
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	cred.AccessToken = access
	if err := s.creds.Set(ctx, cred); err != nil {
		return fmt.Errorf("store refreshed credential: %w", err)
	}

	return nil
}

// Logout clears the stored pair and drops back to Anonymous. Purely
// local; safe to call in any state.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored credential: %w", err)
	}

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()

	return nil
}

// CurrentUser fetches and caches the authenticated principal's profile.
func (s *Session) CurrentUser(ctx context.Context) (domain.UserProfile, error) {
	if !s.IsAuthenticated() {
		return domain.UserProfile{}, domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	cached := s.user
	s.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return user, nil
}

// TokenExpiry reports when the stored access token expires, parsed from
// its claims without signature verification: the server is the
// authority, this is display-only.
func (s *Session) TokenExpiry(ctx context.Context) (time.Time, bool) {
	cred, err := s.creds.Get(ctx)
	if err != nil || cred.IsZero() {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// TokenExpired reports whether the stored access token is past its
// expiry claim. Tokens without claims count as live; the server has the
// final word either way.
func (s *Session) TokenExpired(ctx context.Context) bool {
	expiry, ok := s.TokenExpiry(ctx)
	if !ok {
		return false
	}
	return !expiry.After(s.clock.Now())
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
