package device

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=device_deleter_mock.go --case=underscore --with-expecter

type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type deleter struct {
	logger      *logrus.Logger
	repo        domainDevice.Repository
	sessionRepo domainSession.Repository
}

func NewDeleter(logger *logrus.Logger, repo domainDevice.Repository, sessionRepo domainSession.Repository) Deleter {
	return &deleter{
		logger:      logger,
		repo:        repo,
		sessionRepo: sessionRepo,
	}
}

func (d *deleter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := d.sessionRepo.GetOpenByDevice(ctx, id); err == nil {
		return domain.NewConflictError("device", "device has an open session")
	} else if !domain.IsNotFoundError(err) {
		return err
	}
	return d.repo.Delete(ctx, id)
}
