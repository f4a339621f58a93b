package session

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=TimeAdder --dir=. --output=./mocks --filename=session_time_adder_mock.go --case=underscore --with-expecter

type TimeAdder interface {
	AddTime(ctx context.Context, sessionID uuid.UUID, additionalMinutes int, additionalAmount decimal.Decimal) (*domainSession.Session, error)
}

type timeAdder struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
	clock     clock.Clock
}

func NewTimeAdder(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) TimeAdder {
	return &timeAdder{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		clock:     clock,
	}
}

func (t *timeAdder) AddTime(
	ctx context.Context,
	sessionID uuid.UUID,
	additionalMinutes int,
	additionalAmount decimal.Decimal,
) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("add_time", err) }()

	if additionalMinutes <= 0 {
		return nil, domain.NewValidationError("additional_minutes", "must be positive")
	}
	if additionalAmount.IsNegative() {
		return nil, domain.NewValidationError("additional_amount", "must not be negative")
	}

	sess, err = t.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != domainSession.StatusActive && sess.Status != domainSession.StatusPaused {
		return nil, domain.NewInvalidStateError(string(sess.Status), "active or paused")
	}

	// The CAS below resolves the race against the expiry ticker: if the
	// ticker already flipped this session to pending_payment, the update
	// misses and the operator gets an invalid-state error instead of a
	// silent resurrection.
	observed := sess.Status
	sess.DurationMinutes += additionalMinutes
	sess.AmountPaid = sess.AmountPaid.Add(additionalAmount)
	sess.UpdatedAt = t.clock.Now()

	if err := t.repo.UpdateFromStatus(ctx, sess, observed); err != nil {
		return nil, err
	}

	if err := t.publisher.Publish(ctx, event.TimeAddedEvent{
		SessionID:          sess.ID.String(),
		AdditionalMinutes:  additionalMinutes,
		AdditionalAmount:   additionalAmount.String(),
		NewDurationMinutes: sess.DurationMinutes,
	}); err != nil {
		t.logger.WithError(err).Error("failed to publish time_added event")
	}

	if err := t.cache.SaveLiveSession(ctx, sess); err != nil {
		t.logger.WithError(err).Error("failed to cache live session")
	}

	prometheus.MinutesBilledTotal.Add(float64(additionalMinutes))

	return sess, nil
}
