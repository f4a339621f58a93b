package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) session.Repository {
	return &sessionRepository{
		db: db,
	}
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var entity session.Session
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("session", id.String())
		}
		return nil, err
	}
	return &entity, nil
}

func (r *sessionRepository) GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*session.Session, error) {
	var entity session.Session
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND status IN ?", deviceID, openStatuses()).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("open session for device", deviceID.String())
		}
		return nil, err
	}
	return &entity, nil
}

func (r *sessionRepository) Create(ctx context.Context, entity *session.Session) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		var pqErr *pq.Error
		// 23505 on the partial open-session index means the device was
		// grabbed between the occupancy check and this insert.
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.NewConflictError("device", "device already has an open session")
		}
		return err
	}
	return nil
}

// UpdateFromStatus persists the session only if its stored status still
// matches from. Concurrent transitions (operator command vs expiry sweep)
// serialize on this compare-and-swap instead of a row lock.
func (r *sessionRepository) UpdateFromStatus(ctx context.Context, entity *session.Session, from session.Status) error {
	result := r.db.WithContext(ctx).
		Model(&session.Session{}).
		Where("id = ? AND status = ?", entity.ID, from).
		Select("*").
		Omit("id", "created_at").
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var current session.Session
		err := r.db.WithContext(ctx).Select("status").First(&current, "id = ?", entity.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("session", entity.ID.String())
			}
			return fmt.Errorf("failed to read session status after missed update: %w", err)
		}
		return domain.NewInvalidStateError(string(current.Status), string(from))
	}
	return nil
}

func (r *sessionRepository) ListExpirable(ctx context.Context) ([]*session.Session, error) {
	var sessions []*session.Session
	err := r.db.WithContext(ctx).
		Where("status = ?", session.StatusActive).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) List(ctx context.Context, filter session.ListFilter) ([]*session.Session, error) {
	query := r.db.WithContext(ctx).Model(&session.Session{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DeviceID != nil {
		query = query.Where("device_id = ?", *filter.DeviceID)
	}
	if filter.OpenOnly {
		query = query.Where("status IN ?", openStatuses())
	}

	var sessions []*session.Session
	if err := query.Order("start_time DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func openStatuses() []session.Status {
	return []session.Status{
		session.StatusActive,
		session.StatusPaused,
		session.StatusPendingPayment,
	}
}
