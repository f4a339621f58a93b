package device

import (
	"context"
	"fmt"

	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=device_creator_mock.go --case=underscore --with-expecter

type CreateInput struct {
	Name     string
	Kind     domainDevice.Kind
	Status   domainDevice.Status
	Location string
}

type Creator interface {
	Create(ctx context.Context, input CreateInput) (*domainDevice.Device, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainDevice.Repository
}

func NewCreator(logger *logrus.Logger, repo domainDevice.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
	}
}

func (c *creator) Create(ctx context.Context, input CreateInput) (*domainDevice.Device, error) {
	id, err := uuid.NewV6()
	if err != nil {
		c.logger.WithError(err).Error("failed to generate UUID")
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	status := input.Status
	if status == "" {
		status = domainDevice.StatusOnline
	}

	entity := &domainDevice.Device{
		ID:       id,
		Name:     input.Name,
		Kind:     input.Kind,
		Status:   status,
		Location: input.Location,
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
