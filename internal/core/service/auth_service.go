package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/api/metrics"
	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
	"github.com/storefront/gateway/internal/core/token"
)

// TabResetter discards a tab's view state on sign-out.
type TabResetter interface {
	Reset(ctx context.Context, tabID string) error
}

// AuthService implements the login and sign-out flows. It is the only writer
// of the session store.
type AuthService struct {
	backend  ports.Authenticator
	sessions ports.SessionStore
	guard    ports.LoginGuard
	tabs     TabResetter
	log      zerolog.Logger
}

func NewAuthService(
	backend ports.Authenticator,
	sessions ports.SessionStore,
	guard ports.LoginGuard,
	tabs TabResetter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{backend: backend, sessions: sessions, guard: guard, tabs: tabs, log: log}
}

// Login authenticates creds, decodes the returned token, persists the session
// and picks the landing route. Any failure leaves the session store untouched.
func (s *AuthService) Login(ctx context.Context, tabID string, creds domain.Credentials) (*ports.LoginResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("login: email and password are required: %w", domain.ErrInvalidInput)
	}

	acquired, err := s.guard.Acquire(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("login: acquire guard: %w", err)
	}
	if !acquired {
		metrics.LoginsTotal.WithLabelValues("in_progress").Inc()
		return nil, domain.ErrLoginInProgress
	}
	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), tabID); err != nil {
			s.log.Warn().Err(err).Str("tab", tabID).Msg("failed to release login guard")
		}
	}()

	resp, err := s.backend.Authenticate(ctx, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		var authErr *domain.AuthError
		if !errors.As(err, &authErr) {
			err = &domain.AuthError{Err: err}
		}
		s.log.Info().Err(err).Str("tab", tabID).Msg("login rejected")
		return nil, err
	}

	claims, err := token.Decode(resp.Token)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("decode_error").Inc()
		s.log.Warn().Err(err).Str("tab", tabID).Msg("backend returned an undecodable token")
		return nil, err
	}

	session := domain.Session{Token: resp.Token, UserID: resp.UserID, Roles: claims.Roles}
	if err := s.sessions.Set(ctx, tabID, session); err != nil {
		metrics.LoginsTotal.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("tab", tabID).Str("user_id", session.UserID).Strs("roles", session.Roles).Msg("login succeeded")

	return &ports.LoginResult{Session: session, Navigation: domain.LandingRoute(&session)}, nil
}

// SignOut clears the tab's session and view state and sends it to the login page.
func (s *AuthService) SignOut(ctx context.Context, tabID string) (*domain.Navigation, error) {
	if err := s.sessions.Clear(ctx, tabID); err != nil {
		return nil, fmt.Errorf("sign out: %w", err)
	}
	if err := s.tabs.Reset(ctx, tabID); err != nil {
		s.log.Warn().Err(err).Str("tab", tabID).Msg("failed to reset tab state")
	}

	metrics.SignOutsTotal.Inc()
	s.log.Info().Str("tab", tabID).Msg("signed out")
	return &domain.Navigation{Path: domain.RouteLogin}, nil
}

// Current returns the tab's session with roles re-derived from its token.
func (s *AuthService) Current(ctx context.Context, tabID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, tabID)
	if err != nil {
		return nil, err
	}

	claims, err := token.Decode(session.Token)
	if err != nil {
		return nil, err
	}
	session.Roles = claims.Roles
	return session, nil
}
