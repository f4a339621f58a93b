package device

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=device_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Device, error)
	List(ctx context.Context) ([]*Device, error)
	Save(ctx context.Context, device *Device) error
	Update(ctx context.Context, device *Device) error
	Delete(ctx context.Context, id uuid.UUID) error
}
