package domain

import (
	"errors"
	"fmt"
)

type validationError struct {
	Field   string
	Message string
}

func (e *validationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &validationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var target *validationError
	return errors.As(err, &target)
}

type conflictError struct {
	Resource string
	Message  string
}

func (e *conflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

func NewConflictError(resource, message string) error {
	return &conflictError{Resource: resource, Message: message}
}

func IsConflictError(err error) bool {
	var target *conflictError
	return errors.As(err, &target)
}

type invalidStateError struct {
	Current  string
	Expected string
}

func (e *invalidStateError) Error() string {
	return fmt.Sprintf("session is %s, expected %s", e.Current, e.Expected)
}

func NewInvalidStateError(current, expected string) error {
	return &invalidStateError{Current: current, Expected: expected}
}

func IsInvalidStateError(err error) bool {
	var target *invalidStateError
	return errors.As(err, &target)
}

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType, id string) error {
	return &notFoundError{EntityType: entityType, ID: id}
}

func IsNotFoundError(err error) bool {
	var target *notFoundError
	return errors.As(err, &target)
}
