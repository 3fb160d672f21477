package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ------------------------------
// Response Envelope
// ------------------------------

// Meta describes the request that produced an envelope. Pagination fields
// are only sent by list endpoints and stay nil otherwise.
type Meta struct {
	RequestID    string  `json:"request_id" validate:"required"`
	Timestamp    *string `json:"timestamp,omitempty"`
	Page         *int    `json:"page,omitempty" validate:"omitempty,min=0"`
	TotalPages   *int    `json:"total_pages,omitempty" validate:"omitempty,min=0"`
	TotalResults *int    `json:"total_results,omitempty" validate:"omitempty,min=0"`
}

// Usage reports the caller's daily quota consumption. When the API sends a
// usage object both counters must be present; zero is a valid value.
type Usage struct {
	RequestsToday *int `json:"requests_today" validate:"required,min=0"`
	Limit         *int `json:"limit" validate:"required,min=0"`
}

// Envelope is the {data, meta, usage} wrapper returned by every successful
// call. Data is kept raw; use Decode to obtain a typed Response.
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  Meta            `json:"meta"`
	Usage *Usage          `json:"usage,omitempty"`

	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int `json:"-"`
}

// Response is an Envelope whose data has been decoded into T.
type Response[T any] struct {
	Data  T
	Meta  Meta
	Usage *Usage
}

// Decode unmarshals env.Data into T. A missing or null data field decodes
// to T's zero value.
func Decode[T any](env *Envelope) (*Response[T], error) {
	var data T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode data as %T: %w", data, err)
		}
	}
	return &Response[T]{Data: data, Meta: env.Meta, Usage: env.Usage}, nil
}

// ErrorBody is the shape of a non-2xx response. Every field is decoded
// leniently so one badly typed value never hides the others.
type ErrorBody struct {
	Error      json.RawMessage `json:"error"`
	RequestID  Text            `json:"request_id"`
	RetryAfter json.RawMessage `json:"retry_after"`
}

// ErrorDetail is the nested "error" object of an ErrorBody.
type ErrorDetail struct {
	Code       Text            `json:"code"`
	Message    Text            `json:"message"`
	RequestID  Text            `json:"request_id"`
	RetryAfter json.RawMessage `json:"retry_after"`
}

// Detail returns the nested error. A bare string is taken as the message;
// anything else that is not an object yields nil.
func (b ErrorBody) Detail() *ErrorDetail {
	raw := bytes.TrimSpace(b.Error)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var msg Text
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil
		}
		return &ErrorDetail{Message: msg}
	}
	var d ErrorDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	return &d
}

// Text is a string field that also accepts numbers, booleans and other JSON
// values, keeping their literal text. null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*t = ""
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(strings.TrimSpace(string(raw)))
	}
	return nil
}
