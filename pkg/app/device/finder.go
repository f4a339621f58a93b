package device

import (
	"context"

	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/google/uuid"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=device_finder_mock.go --case=underscore --with-expecter

type Finder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domainDevice.Device, error)
	List(ctx context.Context) ([]*domainDevice.Device, error)
}

type finder struct {
	repo domainDevice.Repository
}

func NewFinder(repo domainDevice.Repository) Finder {
	return &finder{repo: repo}
}

func (f *finder) GetByID(ctx context.Context, id uuid.UUID) (*domainDevice.Device, error) {
	return f.repo.GetByID(ctx, id)
}

func (f *finder) List(ctx context.Context) ([]*domainDevice.Device, error) {
	return f.repo.List(ctx)
}
