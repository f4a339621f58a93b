package catalog

import (
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Package is a billing package: a block of play time at a fixed price.
type Package struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string          `json:"name" gorm:"uniqueIndex"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (p *Package) TableName() string {
	return "public.packages"
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p.Validate()
}

func (p *Package) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *Package) Validate() error {
	if p.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if p.DurationMinutes <= 0 {
		return domain.NewValidationError("duration_minutes", "must be positive")
	}
	if p.Price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	return nil
}
