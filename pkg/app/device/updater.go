package device

import (
	"context"

	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Updater --dir=. --output=./mocks --filename=device_updater_mock.go --case=underscore --with-expecter

type UpdateInput struct {
	Name     *string
	Kind     *domainDevice.Kind
	Status   *domainDevice.Status
	Location *string
}

type Updater interface {
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domainDevice.Device, error)
}

type updater struct {
	logger *logrus.Logger
	repo   domainDevice.Repository
}

func NewUpdater(logger *logrus.Logger, repo domainDevice.Repository) Updater {
	return &updater{
		logger: logger,
		repo:   repo,
	}
}

func (u *updater) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domainDevice.Device, error) {
	entity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		entity.Name = *input.Name
	}
	if input.Kind != nil {
		entity.Kind = *input.Kind
	}
	if input.Status != nil {
		entity.Status = *input.Status
	}
	if input.Location != nil {
		entity.Location = *input.Location
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
