package store

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"

	"zenhealing/internal/domain"
)

// The stores talk to the backend through these slices of the api facade.
// Responses stay raw here; decoding and shape normalization happen in the
// stores so the facade remains a pure pass-through.

type DoctorAPI interface {
	ListDoctors(ctx context.Context) (json.RawMessage, error)
	GetDoctor(ctx context.Context, id int64) (json.RawMessage, error)
	CreateDoctor(ctx context.Context, reg domain.DoctorRegistration) (json.RawMessage, error)
	LoginDoctor(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
}

type ReferenceAPI interface {
	ListSpecialities(ctx context.Context) (json.RawMessage, error)
	ListSymptoms(ctx context.Context) (json.RawMessage, error)
	ListLocations(ctx context.Context) (json.RawMessage, error)
}

type AppointmentAPI interface {
	ListAppointments(ctx context.Context) (json.RawMessage, error)
	ListUserAppointments(ctx context.Context, userID int64) (json.RawMessage, error)
	ListDoctorAppointments(ctx context.Context, doctorID int64) (json.RawMessage, error)
	CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (json.RawMessage, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status string) (json.RawMessage, error)
}

type ArticleAPI interface {
	ListArticles(ctx context.Context) (json.RawMessage, error)
	GetArticle(ctx context.Context, id int64) (json.RawMessage, error)
}

type UserAPI interface {
	LoginUser(ctx context.Context, creds domain.Credentials) (json.RawMessage, error)
}

type SupportAPI interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) (json.RawMessage, error)
}

// EventPublisher receives appointment lifecycle events. Publish failures are
// logged by the stores, never surfaced to the UI.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
