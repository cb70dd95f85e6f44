// Package storage defines the key/value persistence collaborator used for
// credentials, identities and client settings.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Well-known keys. Values are JSON-encoded strings.
const (
	KeyAuthToken           = "zen_healing_auth_token"
	KeyUserInfo            = "zen_healing_user_info"
	KeyDoctorInfo          = "zen_healing_doctor_info"
	KeyAppSettings         = "zen_healing_app_settings"
	KeyOnboardingCompleted = "zen_healing_onboarding_completed"
)

// Store is the persistence contract. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
