package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a normalized transport failure.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindTimeout      Kind = "timeout"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "notFound"
	KindBadRequest   Kind = "badRequest"
	KindServer       Kind = "server"
	KindUnknown      Kind = "unknown"
)

// Default human-readable messages per kind. Login, booking and listing screens
// render these directly, so they must never be empty or technical.
const (
	msgNetwork      = "Unable to connect. Please check your internet connection."
	msgTimeout      = "Request timed out. Please try again."
	msgServer       = "Something went wrong on our end. Please try again later."
	msgUnauthorized = "Please login to continue."
	msgForbidden    = "You do not have permission to access this resource."
	msgNotFound     = "The requested resource was not found."
	msgBadRequest   = "Invalid request. Please check your data."
)

// Error is the uniform failure shape every transport call rejects with.
// Code is the HTTP status, or 0 when no response was received.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s, code %d)", e.Message, e.Kind, e.Code)
}

// Wrap converts an arbitrary error into a normalized *Error. Errors that are
// already normalized pass through unchanged.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return terr
	}
	return &Error{Message: err.Error(), Kind: KindUnknown}
}

// statusError maps an HTTP error status and response body to a normalized
// Error. 400 and 5xx prefer the server-provided message when one is present.
func statusError(status int, body []byte) *Error {
	serverMsg := extractMessage(body)

	switch status {
	case http.StatusUnauthorized:
		return &Error{Message: msgUnauthorized, Code: status, Kind: KindUnauthorized}
	case http.StatusForbidden:
		return &Error{Message: msgForbidden, Code: status, Kind: KindForbidden}
	case http.StatusNotFound:
		return &Error{Message: msgNotFound, Code: status, Kind: KindNotFound}
	case http.StatusBadRequest:
		msg := serverMsg
		if msg == "" {
			msg = msgBadRequest
		}
		return &Error{Message: msg, Code: status, Kind: KindBadRequest}
	default:
		msg := serverMsg
		if msg == "" {
			msg = msgServer
		}
		return &Error{Message: msg, Code: status, Kind: KindServer}
	}
}

func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
