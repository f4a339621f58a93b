package device

import (
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	KindTV      Kind = "tv"
	KindConsole Kind = "console"
)

type Status string

const (
	StatusOnline      Status = "online"
	StatusOffline     Status = "offline"
	StatusMaintenance Status = "maintenance"
)

// Device is the billable resource a session occupies. At most one open
// session exists per device; the store enforces it.
type Device struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Kind      Kind      `json:"kind"`
	Status    Status    `json:"status"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Device) TableName() string {
	return "public.devices"
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	return d.Validate()
}

func (d *Device) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return d.Validate()
}

func (d *Device) Validate() error {
	if d.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if d.Kind != KindTV && d.Kind != KindConsole {
		return domain.NewValidationError("kind", "must be 'tv' or 'console'")
	}
	if d.Status == "" {
		d.Status = StatusOffline
	}
	return nil
}

// Available reports whether the device can host a new session.
func (d *Device) Available() bool {
	return d.Status == StatusOnline
}
