package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"zenhealing/internal/domain"
	"zenhealing/internal/storage"
	"zenhealing/internal/transport"
)

// SettingsPatch updates individual settings fields; nil fields are untouched.
type SettingsPatch struct {
	Theme         *string
	Notifications *bool
	Language      *string
}

// AppStore owns app-wide client state: user settings, the connectivity flag
// and the onboarding marker. Settings and the marker persist through the
// storage.Store; the connectivity flag is in-memory only and starts optimistic.
type AppStore struct {
	store   storage.Store
	support SupportAPI // nil disables the contact form
	logger  *slog.Logger

	mu             sync.Mutex
	settings       domain.Settings
	online         bool
	onboardingDone bool
}

func NewAppStore(store storage.Store, support SupportAPI, logger *slog.Logger) *AppStore {
	return &AppStore{
		store:    store,
		support:  support,
		logger:   logger.With("store", "app"),
		settings: domain.DefaultSettings(),
		online:   true,
	}
}

// Load restores persisted settings and the onboarding marker. Missing keys
// leave the defaults in place; corrupt settings are discarded with a warning.
func (s *AppStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.store.Get(ctx, storage.KeyAppSettings)
	switch {
	case err == nil:
		var settings domain.Settings
		if uerr := json.Unmarshal([]byte(blob), &settings); uerr != nil {
			s.logger.Warn("discarding corrupt persisted settings", "error", uerr)
		} else {
			s.settings = settings
		}
	case errors.Is(err, storage.ErrNotFound):
	default:
		return fmt.Errorf("load settings: %w", err)
	}

	flag, err := s.store.Get(ctx, storage.KeyOnboardingCompleted)
	switch {
	case err == nil:
		s.onboardingDone = flag == "true"
	case errors.Is(err, storage.ErrNotFound):
	default:
		return fmt.Errorf("load onboarding flag: %w", err)
	}
	return nil
}

// UpdateSettings merges the patch and persists the result.
func (s *AppStore) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		s.settings.Notifications = *patch.Notifications
	}
	if patch.Language != nil {
		s.settings.Language = *patch.Language
	}
	return s.persistSettings(ctx)
}

// ToggleTheme flips between light and dark and persists.
func (s *AppStore) ToggleTheme(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.Theme == "dark" {
		s.settings.Theme = "light"
	} else {
		s.settings.Theme = "dark"
	}
	return s.persistSettings(ctx)
}

func (s *AppStore) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetOnline records a connectivity transition.
func (s *AppStore) SetOnline(online bool) {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	s.mu.Unlock()
	if changed {
		s.logger.Info("connectivity changed", "online", online)
	}
}

func (s *AppStore) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// CompleteOnboarding marks onboarding done and persists the marker.
func (s *AppStore) CompleteOnboarding(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboardingDone = true
	if err := s.store.Set(ctx, storage.KeyOnboardingCompleted, "true"); err != nil {
		return fmt.Errorf("persist onboarding flag: %w", err)
	}
	return nil
}

func (s *AppStore) OnboardingCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboardingDone
}

// SubmitContact sends the support form. Failures come back as normalized
// transport errors the screen can render.
func (s *AppStore) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	if s.support == nil {
		return errors.New("contact form is not available")
	}
	if _, err := s.support.SubmitContact(ctx, msg); err != nil {
		terr := transport.Wrap(err)
		s.logger.Error("contact submission failed", "kind", terr.Kind, "error", terr.Message)
		return terr
	}
	s.logger.Info("contact message submitted", "email", msg.Email)
	return nil
}

func (s *AppStore) persistSettings(ctx context.Context) error {
	blob, err := json.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyAppSettings, string(blob)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}
