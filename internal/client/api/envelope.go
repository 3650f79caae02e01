package api

import "encoding/json"

// Envelope is the uniform response wrapper used by every platform
// endpoint: {success, message, data?, errors?}. Data is kept raw so
// each caller can decode the payload shape it expects.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

// DecodeData unmarshals the envelope payload into v. If the envelope
// carries no payload, it returns a MissingData error — asserting the
// payload's presence is the caller's responsibility, not the
// transport's.
func (e *Envelope) DecodeData(v any, what string) error {
	if len(e.Data) == 0 {
		return MissingData(what)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return MissingData(what)
	}
	return nil
}
