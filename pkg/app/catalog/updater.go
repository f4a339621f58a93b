package catalog

import (
	"context"

	domainCatalog "github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Updater --dir=. --output=./mocks --filename=package_updater_mock.go --case=underscore --with-expecter

type UpdateInput struct {
	Name            *string
	DurationMinutes *int
	Price           *decimal.Decimal
	Active          *bool
}

type Updater interface {
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domainCatalog.Package, error)
}

type updater struct {
	logger *logrus.Logger
	repo   domainCatalog.Repository
}

func NewUpdater(logger *logrus.Logger, repo domainCatalog.Repository) Updater {
	return &updater{
		logger: logger,
		repo:   repo,
	}
}

func (u *updater) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domainCatalog.Package, error) {
	entity, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		entity.Name = *input.Name
	}
	if input.DurationMinutes != nil {
		entity.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		entity.Price = *input.Price
	}
	if input.Active != nil {
		entity.Active = *input.Active
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
