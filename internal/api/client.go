// Package api maps domain operations onto backend endpoints. Each method is a
// direct pass-through to the transport with a fixed path and method; response
// decoding belongs to the stores.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"zenhealing/internal/domain"
	"zenhealing/internal/transport"
)

type Client struct {
	http *transport.Client
}

func New(http *transport.Client) *Client {
	return &Client{http: http}
}

// Doctors.

func (c *Client) ListDoctors(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/doctors/v1", nil)
}

func (c *Client) GetDoctor(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.http.Get(ctx, fmt.Sprintf("/doctors/v1/%d", id), nil)
}

func (c *Client) CreateDoctor(ctx context.Context, reg domain.DoctorRegistration) (json.RawMessage, error) {
	return c.http.Post(ctx, "/doctors/v1/doctors", reg)
}

func (c *Client) LoginDoctor(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	return c.http.Post(ctx, "/doctor/login", creds)
}

// Appointments.

func (c *Client) ListAppointments(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/appointments", nil)
}

func (c *Client) ListUserAppointments(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.http.Get(ctx, fmt.Sprintf("/appointments/user/%d", userID), nil)
}

func (c *Client) ListDoctorAppointments(ctx context.Context, doctorID int64) (json.RawMessage, error) {
	return c.http.Get(ctx, fmt.Sprintf("/appointments/doctor/%d", doctorID), nil)
}

func (c *Client) CreateAppointment(ctx context.Context, req domain.AppointmentRequest) (json.RawMessage, error) {
	return c.http.Post(ctx, "/appointments", req)
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status string) (json.RawMessage, error) {
	payload := map[string]string{"status": status}
	return c.http.Put(ctx, fmt.Sprintf("/appointments/%d/status", id), payload)
}

// Reference data.

func (c *Client) ListSpecialities(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/v1/specialities", nil)
}

func (c *Client) ListSymptoms(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/v1/symptoms", nil)
}

func (c *Client) ListLocations(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/v1/locations", nil)
}

// Articles.

func (c *Client) ListArticles(ctx context.Context) (json.RawMessage, error) {
	return c.http.Get(ctx, "/articles", nil)
}

func (c *Client) GetArticle(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.http.Get(ctx, fmt.Sprintf("/articles/%d", id), nil)
}

// CreateArticle publishes editorial content; used by back-office embedders,
// the reader screens never call it.
func (c *Client) CreateArticle(ctx context.Context, article domain.Article) (json.RawMessage, error) {
	return c.http.Post(ctx, "/articles", article)
}

// Accounts and support.

func (c *Client) LoginUser(ctx context.Context, creds domain.Credentials) (json.RawMessage, error) {
	return c.http.Post(ctx, "/auth/login", creds)
}

func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) (json.RawMessage, error) {
	return c.http.Post(ctx, "/v1/contact", msg)
}
