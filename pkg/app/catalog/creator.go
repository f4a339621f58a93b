package catalog

import (
	"context"
	"fmt"

	domainCatalog "github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=package_creator_mock.go --case=underscore --with-expecter

type CreateInput struct {
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	Active          bool
}

type Creator interface {
	Create(ctx context.Context, input CreateInput) (*domainCatalog.Package, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainCatalog.Repository
}

func NewCreator(logger *logrus.Logger, repo domainCatalog.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
	}
}

func (c *creator) Create(ctx context.Context, input CreateInput) (*domainCatalog.Package, error) {
	id, err := uuid.NewV6()
	if err != nil {
		c.logger.WithError(err).Error("failed to generate UUID")
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	entity := &domainCatalog.Package{
		ID:              id,
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Active:          input.Active,
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
