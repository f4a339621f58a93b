package request

import (
	"strings"

	"github.com/NeonArcade/PlayBill/pkg/domain"
)

type CreateDeviceRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Status   string `json:"status,omitempty"`
	Location string `json:"location,omitempty"`
}

func (r *CreateDeviceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(r.Kind) == "" {
		return domain.NewValidationError("kind", "must not be empty")
	}
	return nil
}

type UpdateDeviceRequest struct {
	Name     *string `json:"name,omitempty"`
	Kind     *string `json:"kind,omitempty"`
	Status   *string `json:"status,omitempty"`
	Location *string `json:"location,omitempty"`
}
