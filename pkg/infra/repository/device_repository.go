package repository

import (
	"context"
	"errors"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) device.Repository {
	return &deviceRepository{
		db: db,
	}
}

func (r *deviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*device.Device, error) {
	var entity device.Device
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("device", id.String())
		}
		return nil, err
	}
	return &entity, nil
}

func (r *deviceRepository) List(ctx context.Context) ([]*device.Device, error) {
	var devices []*device.Device
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Save(ctx context.Context, entity *device.Device) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.NewConflictError("device", "device name already exists")
		}
		return err
	}
	return nil
}

func (r *deviceRepository) Update(ctx context.Context, entity *device.Device) error {
	result := r.db.WithContext(ctx).
		Model(&device.Device{}).
		Where("id = ?", entity.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(entity)
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && pqErr.Code == "23505" {
			return domain.NewConflictError("device", "device name already exists")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("device", entity.ID.String())
	}
	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&device.Device{}, "id = ?", id)
	if result.Error != nil {
		var pqErr *pq.Error
		// Foreign key from sessions keeps devices with history around.
		if errors.As(result.Error, &pqErr) && pqErr.Code == "23503" {
			return domain.NewConflictError("device", "device has session history and cannot be deleted")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("device", id.String())
	}
	return nil
}
