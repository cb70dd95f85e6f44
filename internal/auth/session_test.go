package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"zenhealing/internal/domain"
	"zenhealing/internal/storage"
)

// failingStore rejects writes to one key, everything else passes through.
type failingStore struct {
	storage.Store
	failKey string
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func TestSave_StoresBothHalves(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := NewSession(mem, storage.KeyAuthToken, storage.KeyDoctorInfo)

	doctor := domain.Doctor{ID: 12, Name: "Dr. Ana Flores"}
	require.NoError(t, s.Save(ctx, "tok-123", doctor))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)

	var got domain.Doctor
	require.NoError(t, s.Identity(ctx, &got))
	require.Equal(t, doctor.ID, got.ID)
	require.Equal(t, doctor.Name, got.Name)
}

func TestSave_FailedIdentityWriteRestoresPreviousPair(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	failing := &failingStore{Store: mem, failKey: storage.KeyDoctorInfo}
	s := NewSession(failing, storage.KeyAuthToken, storage.KeyDoctorInfo)

	// Seed an existing pair through the plain store.
	require.NoError(t, mem.Set(ctx, storage.KeyAuthToken, "old-token"))
	require.NoError(t, mem.Set(ctx, storage.KeyDoctorInfo, `{"id":1}`))

	err := s.Save(ctx, "new-token", domain.Doctor{ID: 2})
	require.Error(t, err)

	token, err := mem.Get(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, "old-token", token)

	identity, err := mem.Get(ctx, storage.KeyDoctorInfo)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1}`, identity)
}

func TestSave_FailedIdentityWriteWithNoPriorPairLeavesNothing(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	failing := &failingStore{Store: mem, failKey: storage.KeyDoctorInfo}
	s := NewSession(failing, storage.KeyAuthToken, storage.KeyDoctorInfo)

	err := s.Save(ctx, "new-token", domain.Doctor{ID: 2})
	require.Error(t, err)

	_, err = mem.Get(ctx, storage.KeyAuthToken)
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = mem.Get(ctx, storage.KeyDoctorInfo)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClear_RemovesBothAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := NewSession(mem, storage.KeyAuthToken, storage.KeyDoctorInfo)

	require.NoError(t, s.Save(ctx, "tok", domain.Doctor{ID: 3}))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	var d domain.Doctor
	require.ErrorIs(t, s.Identity(ctx, &d), storage.ErrNotFound)

	// Clearing again is a no-op.
	require.NoError(t, s.Clear(ctx))
}
