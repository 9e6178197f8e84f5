package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrUnknownRequester     = errors.New("requester profile not found")
	ErrSelfMatch            = errors.New("cannot score a profile against itself")
	ErrCannotMessageSelf    = errors.New("cannot message yourself")
	ErrEmptyMessage         = errors.New("message content is empty")
	ErrMessageTooLong       = errors.New("message content is too long")
	ErrInvalidCriteria      = errors.New("invalid criteria")
	ErrInvalidToken         = errors.New("invalid token")
)

// InvalidCriteriaError names the first field that failed validation.
type InvalidCriteriaError struct {
	Field  string
	Reason string
}

func NewInvalidCriteria(field, reason string) *InvalidCriteriaError {
	return &InvalidCriteriaError{Field: field, Reason: reason}
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("invalid criteria: %s: %s", e.Field, e.Reason)
}

func (e *InvalidCriteriaError) Unwrap() error {
	return ErrInvalidCriteria
}
