package catalog

import (
	"context"

	domainCatalog "github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=package_deleter_mock.go --case=underscore --with-expecter

type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type deleter struct {
	logger *logrus.Logger
	repo   domainCatalog.Repository
}

func NewDeleter(logger *logrus.Logger, repo domainCatalog.Repository) Deleter {
	return &deleter{
		logger: logger,
		repo:   repo,
	}
}

func (d *deleter) Delete(ctx context.Context, id uuid.UUID) error {
	return d.repo.Delete(ctx, id)
}
