package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"zenhealing/internal/auth"
	"zenhealing/internal/domain"
	"zenhealing/internal/normalize"
	"zenhealing/internal/transport"
)

const OpUserLogin = "userLogin"

// AuthStore owns the end-user session, separate from the practitioner login on
// DoctorStore. Both halves of the credential pair (token and user profile) go
// through an auth.Session so they stay atomic in storage.
type AuthStore struct {
	api     UserAPI
	session *auth.Session
	logger  *slog.Logger

	mu   sync.Mutex
	user *domain.User
	ops  opState
}

func NewAuthStore(api UserAPI, session *auth.Session, logger *slog.Logger) *AuthStore {
	return &AuthStore{
		api:     api,
		session: session,
		logger:  logger.With("store", "auth"),
		ops:     newOpState(),
	}
}

type userLoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *AuthStore) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	s.mu.Lock()
	s.ops.begin(OpUserLogin)
	s.mu.Unlock()

	raw, err := s.api.LoginUser(ctx, creds)
	if err != nil {
		return nil, s.reject(err)
	}
	resp, err := normalize.Item[userLoginResponse](raw)
	if err != nil {
		return nil, s.reject(err)
	}
	if resp.Token == "" {
		return nil, s.reject(errors.New("login response is missing a token"))
	}
	if err := s.session.Save(ctx, resp.Token, resp.User); err != nil {
		return nil, s.reject(err)
	}

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.ops.finish(OpUserLogin, nil)
	s.mu.Unlock()

	s.logger.Info("user logged in", "user_id", user.ID)
	out := user
	return &out, nil
}

// Restore reinstalls the user from a previously persisted session. Returns nil
// when nothing is stored.
func (s *AuthStore) Restore(ctx context.Context) *domain.User {
	if _, err := s.session.Token(ctx); err != nil {
		return nil
	}
	var user domain.User
	if err := s.session.Identity(ctx, &user); err != nil {
		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	out := user
	return &out
}

// Logout clears the in-memory user and the persisted pair. Idempotent.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.session.Clear(ctx)
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *AuthStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.isLoading(OpUserLogin)
}

func (s *AuthStore) Err() *transport.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.err(OpUserLogin)
}

func (s *AuthStore) reject(err error) *transport.Error {
	terr := transport.Wrap(err)
	s.mu.Lock()
	s.ops.finish(OpUserLogin, terr)
	s.mu.Unlock()
	s.logger.Error("login failed", "kind", terr.Kind, "error", terr.Message)
	return terr
}
