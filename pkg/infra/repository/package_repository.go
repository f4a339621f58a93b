package repository

import (
	"context"
	"errors"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) catalog.Repository {
	return &packageRepository{
		db: db,
	}
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	var entity catalog.Package
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("package", id.String())
		}
		return nil, err
	}
	return &entity, nil
}

func (r *packageRepository) List(ctx context.Context) ([]*catalog.Package, error) {
	var packages []*catalog.Package
	if err := r.db.WithContext(ctx).Order("duration_minutes ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) Save(ctx context.Context, entity *catalog.Package) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *packageRepository) Update(ctx context.Context, entity *catalog.Package) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Package{}).
		Where("id = ?", entity.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("package", entity.ID.String())
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Package{}, "id = ?", id)
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && pqErr.Code == "23503" {
			return domain.NewConflictError("package", "package is referenced by sessions and cannot be deleted")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("package", id.String())
	}
	return nil
}
