package validation

import (
	"encoding/json"
	"fmt"

	"contesthub/internal/domain"
)

// Payload is a decoded JSON object. A key whose value is null or "" counts as absent.
type Payload map[string]any

// DecodePayload decodes a JSON object body. Anything other than an object is rejected.
func DecodePayload(raw []byte) (Payload, error) {
	if len(raw) == 0 {
		return Payload{}, nil
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", domain.ErrInvalidArgument)
	}
	if p == nil {
		return Payload{}, nil
	}
	return p, nil
}

func (p Payload) clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Result is either valid, carrying the normalized payload, or invalid, carrying every
// violation message.
type Result struct {
	Payload Payload
	Errors  []string
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns nil for a valid result and a *domain.ValidationError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	messages := make([]string, len(r.Errors))
	copy(messages, r.Errors)
	return &domain.ValidationError{Messages: messages}
}

func emptyBody() Result {
	return Result{Errors: []string{MsgEmptyRequestBody}}
}

func finish(p Payload, errs []string) Result {
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Payload: p}
}
