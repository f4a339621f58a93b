package catalog

import (
	"context"

	domainCatalog "github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/google/uuid"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=package_finder_mock.go --case=underscore --with-expecter

type Finder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domainCatalog.Package, error)
	List(ctx context.Context) ([]*domainCatalog.Package, error)
}

type finder struct {
	repo domainCatalog.Repository
}

func NewFinder(repo domainCatalog.Repository) Finder {
	return &finder{repo: repo}
}

func (f *finder) GetByID(ctx context.Context, id uuid.UUID) (*domainCatalog.Package, error) {
	return f.repo.GetByID(ctx, id)
}

func (f *finder) List(ctx context.Context) ([]*domainCatalog.Package, error) {
	return f.repo.List(ctx)
}
