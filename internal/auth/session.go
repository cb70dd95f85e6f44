// Package auth persists the credential pair (bearer token + identity blob) as
// one transaction: the token must never be stored without its identity, or the
// other way around.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"zenhealing/internal/storage"
)

// Session serializes credential writes against a storage.Store. Both the
// doctor store and the user auth store share one Session per identity kind.
type Session struct {
	mu          sync.Mutex
	store       storage.Store
	tokenKey    string
	identityKey string
}

func NewSession(store storage.Store, tokenKey, identityKey string) *Session {
	return &Session{store: store, tokenKey: tokenKey, identityKey: identityKey}
}

// Save stores the token and the JSON-encoded identity. If either write fails
// the previously stored pair is restored, so a failed login leaves existing
// credentials untouched.
func (s *Session) Save(ctx context.Context, token string, identity any) error {
	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prevToken, hadToken := s.read(ctx, s.tokenKey)
	prevIdentity, hadIdentity := s.read(ctx, s.identityKey)

	if err := s.store.Set(ctx, s.tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.store.Set(ctx, s.identityKey, string(blob)); err != nil {
		s.restore(ctx, s.tokenKey, prevToken, hadToken)
		s.restore(ctx, s.identityKey, prevIdentity, hadIdentity)
		return fmt.Errorf("store identity: %w", err)
	}
	return nil
}

// Token returns the stored bearer token. Absence is reported as
// storage.ErrNotFound.
func (s *Session) Token(ctx context.Context) (string, error) {
	return s.store.Get(ctx, s.tokenKey)
}

// Identity decodes the stored identity into out. Absence is reported as
// storage.ErrNotFound.
func (s *Session) Identity(ctx context.Context, out any) error {
	blob, err := s.store.Get(ctx, s.identityKey)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(blob), out); err != nil {
		return fmt.Errorf("decode identity: %w", err)
	}
	return nil
}

// Clear removes both halves of the credential pair. Idempotent.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenErr := s.store.Remove(ctx, s.tokenKey)
	identityErr := s.store.Remove(ctx, s.identityKey)
	return errors.Join(tokenErr, identityErr)
}

func (s *Session) read(ctx context.Context, key string) (string, bool) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Session) restore(ctx context.Context, key, value string, existed bool) {
	if existed {
		_ = s.store.Set(ctx, key, value)
		return
	}
	_ = s.store.Remove(ctx, key)
}
