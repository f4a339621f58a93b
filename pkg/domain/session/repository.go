package session

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=session_repository_mock.go --case=underscore --with-expecter

// Repository is the session store contract. Implementations must provide
// atomic read-modify-write per session: UpdateFromStatus only commits when
// the stored status still matches the one the caller observed.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	// GetOpenByDevice returns the device's non-terminal session, or a
	// not-found error when the device is free.
	GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*Session, error)
	Create(ctx context.Context, session *Session) error
	// UpdateFromStatus persists the session iff its stored status equals
	// from; returns an invalid-state error when another writer won.
	UpdateFromStatus(ctx context.Context, session *Session, from Status) error
	// ListExpirable returns all active sessions.
	ListExpirable(ctx context.Context) ([]*Session, error)
	List(ctx context.Context, filter ListFilter) ([]*Session, error)
}

// ListFilter narrows List results. Zero value lists everything.
type ListFilter struct {
	Status   *Status
	DeviceID *uuid.UUID
	OpenOnly bool
}
