package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive         Status = "active"
	StatusPaused         Status = "paused"
	StatusPendingPayment Status = "pending_payment"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// Open reports whether the session still occupies its device.
func (s Status) Open() bool {
	return s == StatusActive || s == StatusPaused || s == StatusPendingPayment
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PauseReason string

const (
	PauseReasonPrayerTime      PauseReason = "prayer_time"
	PauseReasonPowerOutage     PauseReason = "power_outage"
	PauseReasonCustomerRequest PauseReason = "customer_request"
	PauseReasonOther           PauseReason = "other"
)

func (r PauseReason) Valid() bool {
	switch r {
	case PauseReasonPrayerTime, PauseReasonPowerOutage, PauseReasonCustomerRequest, PauseReasonOther:
		return true
	}
	return false
}

// Session is one billable occupancy of a device by a customer.
// Paused time is accumulated in TotalPausedSeconds at resume time only;
// while paused, elapsed time is frozen at PausedAt.
type Session struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	DeviceID           uuid.UUID       `json:"device_id" gorm:"type:uuid;index"`
	CustomerName       string          `json:"customer_name"`
	PackageID          *uuid.UUID      `json:"package_id,omitempty" gorm:"type:uuid"`
	DurationMinutes    int             `json:"duration_minutes"`
	AmountPaid         decimal.Decimal `json:"amount_paid" gorm:"type:numeric(12,2)"`
	StartTime          time.Time       `json:"start_time"`
	PausedAt           *time.Time      `json:"paused_at,omitempty"`
	TotalPausedSeconds int64           `json:"total_paused_seconds"`
	PauseReason        *PauseReason    `json:"pause_reason,omitempty"`
	PauseNotes         *string         `json:"pause_notes,omitempty"`
	Status             Status          `json:"status" gorm:"index"`
	PaymentNotes       *string         `json:"payment_notes,omitempty"`
	EndTime            *time.Time      `json:"end_time,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (s *Session) TableName() string {
	return "public.sessions"
}

// Duration is the total purchased play time.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// EffectiveElapsed is the billable time consumed so far: wall time since
// StartTime minus all paused time. While paused, the reference instant is
// PausedAt, so the value does not grow.
func (s *Session) EffectiveElapsed(now time.Time) time.Duration {
	ref := now
	if s.Status == StatusPaused && s.PausedAt != nil {
		ref = *s.PausedAt
	}
	elapsed := ref.Sub(s.StartTime) - time.Duration(s.TotalPausedSeconds)*time.Second
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// Remaining is the billable time left, floored at zero for display.
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := s.Duration() - s.EffectiveElapsed(now)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func (s *Session) RemainingMinutes(now time.Time) float64 {
	return s.Remaining(now).Minutes()
}

// Overdue is how far past its purchased duration the session has run.
func (s *Session) Overdue(now time.Time) time.Duration {
	overdue := s.EffectiveElapsed(now) - s.Duration()
	if overdue < 0 {
		overdue = 0
	}
	return overdue
}

// Expired reports whether the session should transition to pending_payment.
// Paused sessions never expire.
func (s *Session) Expired(now time.Time) bool {
	return s.Status == StatusActive && s.EffectiveElapsed(now) >= s.Duration()
}
