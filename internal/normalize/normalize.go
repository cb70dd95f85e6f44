// Package normalize decodes the backend's inconsistent response envelopes.
// Listing endpoints variously return a bare array, an array under "data", or
// an array under a pluralized resource key; single-item endpoints return the
// object bare or under "data". The priority order here is part of the client
// contract and is tested independently of any network code.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrShape is returned when a body matches none of the known envelopes.
var ErrShape = errors.New("normalize: unrecognized response shape")

// List decodes a listing body, trying in order: bare array, "data" array,
// pluralized-key array.
func List[T any](body json.RawMessage, plural string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrShape)
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShape, previewOf(trimmed))
	}

	for _, key := range []string{"data", plural} {
		raw, ok := envelope[key]
		if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.TrimSpace(raw)[0] != '[' {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode %q list: %w", key, err)
		}
		return items, nil
	}

	return nil, fmt.Errorf("%w: object with no list under \"data\" or %q", ErrShape, plural)
}

// Item decodes a single-entity body that is either the object itself or an
// object wrapped under "data".
func Item[T any](body json.RawMessage) (T, error) {
	var zero T

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return zero, fmt.Errorf("%w: %s", ErrShape, previewOf(trimmed))
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		inner := bytes.TrimSpace(envelope.Data)
		if len(inner) > 0 && inner[0] == '{' {
			trimmed = inner
		}
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return zero, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}

func previewOf(body []byte) string {
	const max = 64
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
