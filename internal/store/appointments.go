package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"zenhealing/internal/domain"
	"zenhealing/internal/normalize"
	"zenhealing/internal/transport"
)

const (
	OpAppointments      = "appointments"
	OpAppointmentCreate = "create"
	OpAppointmentStatus = "updateStatus"
)

// AppointmentStore holds a single normalized table of appointments indexed by
// id, with the "all", per-user and per-doctor listings kept as id slices over
// it. A status change therefore becomes visible in every listing at once.
type AppointmentStore struct {
	api    AppointmentAPI
	events EventPublisher // nil disables event publishing
	logger *slog.Logger

	mu       sync.Mutex
	byID     map[int64]domain.Appointment
	all      []int64
	user     []int64
	doctor   []int64
	selected int64
	ops      opState
}

func NewAppointmentStore(api AppointmentAPI, events EventPublisher, logger *slog.Logger) *AppointmentStore {
	return &AppointmentStore{
		api:    api,
		events: events,
		logger: logger.With("store", "appointment"),
		byID:   make(map[int64]domain.Appointment),
		ops:    newOpState(),
	}
}

// FetchAll replaces the "all" listing. There is no fallback dataset for
// appointments, so a failed fetch records the normalized error under
// OpAppointments and leaves the previous listing in place.
func (s *AppointmentStore) FetchAll(ctx context.Context) {
	raw, err := s.fetch(func() (json.RawMessage, error) { return s.api.ListAppointments(ctx) })
	if err != nil {
		return
	}
	s.install(raw, &s.all)
}

// FetchForUser replaces the per-user listing with the given user's bookings.
func (s *AppointmentStore) FetchForUser(ctx context.Context, userID int64) {
	raw, err := s.fetch(func() (json.RawMessage, error) { return s.api.ListUserAppointments(ctx, userID) })
	if err != nil {
		return
	}
	s.install(raw, &s.user)
}

// FetchForDoctor replaces the per-doctor listing with the given practitioner's
// bookings.
func (s *AppointmentStore) FetchForDoctor(ctx context.Context, doctorID int64) {
	raw, err := s.fetch(func() (json.RawMessage, error) { return s.api.ListDoctorAppointments(ctx, doctorID) })
	if err != nil {
		return
	}
	s.install(raw, &s.doctor)
}

// Create books an appointment. The created record defaults to "pending" when
// the backend omits a status, is appended to the affected listings without a
// refetch, and an appointment.created event is published.
func (s *AppointmentStore) Create(ctx context.Context, req domain.AppointmentRequest) (*domain.Appointment, error) {
	s.mu.Lock()
	s.ops.begin(OpAppointmentCreate)
	s.mu.Unlock()

	raw, err := s.api.CreateAppointment(ctx, req)
	if err != nil {
		return nil, s.reject(OpAppointmentCreate, err)
	}
	appt, err := normalize.Item[domain.Appointment](raw)
	if err != nil {
		return nil, s.reject(OpAppointmentCreate, err)
	}
	if appt.Status == "" {
		appt.Status = domain.AppointmentStatusPending
	}

	s.mu.Lock()
	s.byID[appt.ID] = appt
	s.all = appendID(s.all, appt.ID)
	s.user = appendID(s.user, appt.ID)
	s.ops.finish(OpAppointmentCreate, nil)
	s.mu.Unlock()

	s.publish(ctx, domain.Event{
		Type:        domain.EventAppointmentCreated,
		Appointment: appt,
		OccurredAt:  time.Now().UTC(),
	})
	out := appt
	return &out, nil
}

// UpdateStatus transitions the appointment and merges the backend's response
// into the stored entity. When the backend returns the full record it replaces
// the entity; a bare status acknowledgment only patches the status field.
func (s *AppointmentStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.mu.Lock()
	s.ops.begin(OpAppointmentStatus)
	s.mu.Unlock()

	raw, err := s.api.UpdateAppointmentStatus(ctx, id, status)
	if err != nil {
		return s.reject(OpAppointmentStatus, err)
	}
	upd, err := normalize.Item[domain.Appointment](raw)
	if err != nil {
		return s.reject(OpAppointmentStatus, err)
	}

	s.mu.Lock()
	current, known := s.byID[id]
	switch {
	case upd.DoctorID != 0 || upd.BookingDate != "":
		upd.ID = id
		if upd.Status == "" {
			upd.Status = status
		}
		current = upd
	case known:
		if upd.Status != "" {
			current.Status = upd.Status
		} else {
			current.Status = status
		}
	default:
		current = domain.Appointment{ID: id, Status: status}
	}
	s.byID[id] = current
	s.ops.finish(OpAppointmentStatus, nil)
	s.mu.Unlock()

	s.publish(ctx, domain.Event{
		Type:        domain.EventAppointmentStatusChanged,
		Appointment: current,
		OccurredAt:  time.Now().UTC(),
	})
	return nil
}

func (s *AppointmentStore) All() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(s.all)
}

func (s *AppointmentStore) ForUser() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(s.user)
}

func (s *AppointmentStore) ForDoctor() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(s.doctor)
}

// SetSelected marks an appointment for the details screen. Returns false when
// the id is not in the table.
func (s *AppointmentStore) SetSelected(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	s.selected = id
	return true
}

func (s *AppointmentStore) Selected() (domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt, ok := s.byID[s.selected]
	return appt, ok
}

// ByStatus filters the "all" listing. An empty status or "all" returns
// everything.
func (s *AppointmentStore) ByStatus(status string) []domain.Appointment {
	appts := s.All()
	if status == "" || status == "all" {
		return appts
	}
	out := appts[:0]
	for _, a := range appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// InDateRange filters the "all" listing by booking date. Zero bounds are
// open-ended; records with unparseable dates are dropped.
func (s *AppointmentStore) InDateRange(from, to time.Time) []domain.Appointment {
	appts := s.All()
	out := appts[:0]
	for _, a := range appts {
		day, err := time.Parse(domain.BookingDateLayout, a.BookingDate)
		if err != nil {
			continue
		}
		if !from.IsZero() && day.Before(from) {
			continue
		}
		if !to.IsZero() && day.After(to) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *AppointmentStore) Loading(op string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.isLoading(op)
}

func (s *AppointmentStore) Err(op string) *transport.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.err(op)
}

func (s *AppointmentStore) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops.clearErrors()
}

// fetch runs a listing call under the shared OpAppointments slot. On failure
// the error is recorded and a nil payload returned.
func (s *AppointmentStore) fetch(call func() (json.RawMessage, error)) (json.RawMessage, error) {
	s.mu.Lock()
	s.ops.begin(OpAppointments)
	s.mu.Unlock()

	raw, err := call()
	if err != nil {
		terr := transport.Wrap(err)
		s.mu.Lock()
		s.ops.finish(OpAppointments, terr)
		s.mu.Unlock()
		s.logger.Warn("appointment listing unavailable", "kind", terr.Kind, "error", terr.Message)
		return nil, terr
	}
	return raw, nil
}

// install decodes a listing payload into the table and rewrites the target id
// slice. Decode failures are recorded like transport failures.
func (s *AppointmentStore) install(raw json.RawMessage, target *[]int64) {
	appts, err := normalize.List[domain.Appointment](raw, "appointments")
	if err != nil {
		terr := transport.Wrap(err)
		s.mu.Lock()
		s.ops.finish(OpAppointments, terr)
		s.mu.Unlock()
		s.logger.Warn("appointment listing malformed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(appts))
	for _, a := range appts {
		s.byID[a.ID] = a
		ids = append(ids, a.ID)
	}
	*target = ids
	s.ops.finish(OpAppointments, nil)
}

func (s *AppointmentStore) collect(ids []int64) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *AppointmentStore) publish(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish appointment event", "type", event.Type, "error", err)
	}
}

func (s *AppointmentStore) reject(op string, err error) *transport.Error {
	terr := transport.Wrap(err)
	s.mu.Lock()
	s.ops.finish(op, terr)
	s.mu.Unlock()
	s.logger.Error("operation failed", "op", op, "kind", terr.Kind, "error", terr.Message)
	return terr
}

func appendID(ids []int64, id int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
