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
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PaymentConfirmer --dir=. --output=./mocks --filename=payment_confirmer_mock.go --case=underscore --with-expecter

type PaymentConfirmer interface {
	Confirm(ctx context.Context, sessionID uuid.UUID, notes *string) (*domainSession.Session, error)
}

type paymentConfirmer struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
	clock     clock.Clock
}

func NewPaymentConfirmer(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) PaymentConfirmer {
	return &paymentConfirmer{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		clock:     clock,
	}
}

func (p *paymentConfirmer) Confirm(
	ctx context.Context,
	sessionID uuid.UUID,
	notes *string,
) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("confirm_payment", err) }()

	sess, err = p.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != domainSession.StatusPendingPayment {
		return nil, domain.NewInvalidStateError(string(sess.Status), string(domainSession.StatusPendingPayment))
	}

	sess.Status = domainSession.StatusCompleted
	sess.PaymentNotes = notes
	sess.UpdatedAt = p.clock.Now()

	if err := p.repo.UpdateFromStatus(ctx, sess, domainSession.StatusPendingPayment); err != nil {
		return nil, err
	}

	if err := p.publisher.Publish(ctx, event.PaymentConfirmedEvent{
		SessionID:   sess.ID.String(),
		TotalAmount: sess.AmountPaid.String(),
	}); err != nil {
		p.logger.WithError(err).Error("failed to publish payment_confirmed event")
	}

	if err := p.cache.DeleteLiveSession(ctx, sess.DeviceID); err != nil {
		p.logger.WithError(err).Error("failed to evict live session from cache")
	}

	prometheus.SessionsActive.Dec()

	return sess, nil
}
