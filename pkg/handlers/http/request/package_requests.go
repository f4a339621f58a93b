package request

import (
	"strings"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/shopspring/decimal"
)

type CreatePackageRequest struct {
	Name            string          `json:"name" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Active          *bool           `json:"active,omitempty"`
}

func (r *CreatePackageRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if r.DurationMinutes <= 0 {
		return domain.NewValidationError("duration_minutes", "must be positive")
	}
	if r.Price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	return nil
}

type UpdatePackageRequest struct {
	Name            *string          `json:"name,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Active          *bool            `json:"active,omitempty"`
}
