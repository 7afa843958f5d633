package service

import (
	"context"
	"fmt"
	"time"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/domain"
	"github.com/narabid/bidassist/internal/repository"
)

type authService struct {
	client   api.Client
	sessions repository.SessionRepo
}

// NewAuthService creates an AuthService that persists the issued credential
// in the session repository. Token issuance and validation stay remote;
// locally the token is an opaque string whose presence gates the protected
// views.
func NewAuthService(client api.Client, sessions repository.SessionRepo) AuthService {
	return &authService{client: client, sessions: sessions}
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: empty token issued", api.ErrRemote)
	}
	return s.sessions.Save(ctx, &domain.Session{
		Email:       email,
		AccessToken: token,
		SavedAt:     time.Now().UTC(),
	})
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *authService) Token() string {
	sess, err := s.sessions.Get(context.Background())
	if err != nil {
		return ""
	}
	return sess.AccessToken
}

func (s *authService) Email() string {
	sess, err := s.sessions.Get(context.Background())
	if err != nil {
		return ""
	}
	return sess.Email
}

func (s *authService) Authenticated() bool {
	return s.Token() != ""
}

// SessionTokenSource adapts the session repository to api.TokenSource so
// the HTTP client reads the credential straight from storage. A missing
// session yields an empty token, which the client sends as "no header".
type SessionTokenSource struct {
	Sessions repository.SessionRepo
}

func (t SessionTokenSource) Token() string {
	sess, err := t.Sessions.Get(context.Background())
	if err != nil {
		return ""
	}
	return sess.AccessToken
}
