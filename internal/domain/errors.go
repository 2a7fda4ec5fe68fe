package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrInvalidCredential   = errors.New("invalid or expired credential")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrAccountNotFound     = errors.New("user account not found")
	ErrForbidden           = errors.New("unauthorized access")
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrEmptyBody           = errors.New("empty request body")
	ErrRateLimited         = errors.New("rate limit exceeded")
)

// ValidationError carries every violated rule of a payload, in rule order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NotFoundError names the missing resource so the message can be shown to the caller.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
