package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/NeonArcade/PlayBill/pkg/domain/device"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Starter --dir=. --output=./mocks --filename=session_starter_mock.go --case=underscore --with-expecter

type StartInput struct {
	DeviceID     uuid.UUID
	CustomerName string
	PackageID    *uuid.UUID
	// Walk-in sessions without a package set duration and amount directly.
	DurationMinutes int
	Amount          decimal.Decimal
}

type Starter interface {
	Start(ctx context.Context, input StartInput) (*domainSession.Session, error)
}

type starter struct {
	logger      *logrus.Logger
	repo        domainSession.Repository
	deviceRepo  device.Repository
	packageRepo catalog.Repository
	publisher   events.EventPublisher
	cache       LiveSessionCache
	clock       clock.Clock
}

func NewStarter(
	logger *logrus.Logger,
	repo domainSession.Repository,
	deviceRepo device.Repository,
	packageRepo catalog.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) Starter {
	return &starter{
		logger:      logger,
		repo:        repo,
		deviceRepo:  deviceRepo,
		packageRepo: packageRepo,
		publisher:   publisher,
		cache:       cache,
		clock:       clock,
	}
}

func (s *starter) Start(ctx context.Context, input StartInput) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("start", err) }()

	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, domain.NewValidationError("customer_name", "must not be empty")
	}

	dev, err := s.deviceRepo.GetByID(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}
	if !dev.Available() {
		return nil, domain.NewConflictError("device", fmt.Sprintf("device %s is %s", dev.Name, dev.Status))
	}

	if _, err := s.repo.GetOpenByDevice(ctx, input.DeviceID); err == nil {
		return nil, domain.NewConflictError("device", "device already has an open session")
	} else if !domain.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check device occupancy: %w", err)
	}

	durationMinutes := input.DurationMinutes
	amount := input.Amount
	if input.PackageID != nil {
		pkg, err := s.packageRepo.GetByID(ctx, *input.PackageID)
		if err != nil {
			return nil, err
		}
		if !pkg.Active {
			return nil, domain.NewValidationError("package_id", "package is not active")
		}
		durationMinutes = pkg.DurationMinutes
		amount = pkg.Price
	}
	if durationMinutes <= 0 {
		return nil, domain.NewValidationError("duration_minutes", "must be positive")
	}
	if amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}

	id, err := uuid.NewV6()
	if err != nil {
		s.logger.WithError(err).Error("failed to generate UUID")
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	now := s.clock.Now()
	entity := &domainSession.Session{
		ID:              id,
		DeviceID:        input.DeviceID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		PackageID:       input.PackageID,
		DurationMinutes: durationMinutes,
		AmountPaid:      amount,
		StartTime:       now,
		Status:          domainSession.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		if domain.IsConflictError(err) {
			return nil, err
		}
		s.logger.WithError(err).Error("failed to create session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.publisher.Publish(ctx, event.SessionStartedEvent{
		SessionID:       entity.ID.String(),
		DeviceID:        entity.DeviceID.String(),
		CustomerName:    entity.CustomerName,
		DurationMinutes: entity.DurationMinutes,
		StartTime:       entity.StartTime,
	}); err != nil {
		s.logger.WithError(err).Error("failed to publish session_started event")
	}

	if err := s.cache.SaveLiveSession(ctx, entity); err != nil {
		s.logger.WithError(err).Error("failed to cache live session")
	}

	prometheus.SessionsActive.Inc()
	prometheus.MinutesBilledTotal.Add(float64(entity.DurationMinutes))

	return entity, nil
}
