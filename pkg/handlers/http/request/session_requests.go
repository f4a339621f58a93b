package request

import (
	"strings"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/shopspring/decimal"
)

type StartSessionRequest struct {
	DeviceID     string `json:"device_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	PackageID    string `json:"package_id,omitempty"`
	// Walk-in sessions without a package set both fields directly.
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	Amount          decimal.Decimal `json:"amount,omitempty"`
}

func (r *StartSessionRequest) Validate() error {
	if strings.TrimSpace(r.DeviceID) == "" {
		return domain.NewValidationError("device_id", "must not be empty")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		return domain.NewValidationError("customer_name", "must not be empty")
	}
	if r.PackageID == "" && r.DurationMinutes <= 0 {
		return domain.NewValidationError("duration_minutes", "must be positive when no package is given")
	}
	return nil
}

type PauseSessionRequest struct {
	Reason string  `json:"reason" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *PauseSessionRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return domain.NewValidationError("reason", "must not be empty")
	}
	return nil
}

type AddTimeRequest struct {
	AdditionalMinutes int             `json:"additional_minutes" binding:"required"`
	AdditionalAmount  decimal.Decimal `json:"additional_amount,omitempty"`
}

func (r *AddTimeRequest) Validate() error {
	if r.AdditionalMinutes <= 0 {
		return domain.NewValidationError("additional_minutes", "must be positive")
	}
	if r.AdditionalAmount.IsNegative() {
		return domain.NewValidationError("additional_amount", "must not be negative")
	}
	return nil
}

type ConfirmPaymentRequest struct {
	Notes *string `json:"notes,omitempty"`
}
