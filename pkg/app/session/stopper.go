package session

import (
	"context"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Stopper --dir=. --output=./mocks --filename=session_stopper_mock.go --case=underscore --with-expecter

type Stopper interface {
	Stop(ctx context.Context, sessionID uuid.UUID) (*domainSession.Session, error)
}

type stopper struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
	clock     clock.Clock
}

func NewStopper(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) Stopper {
	return &stopper{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		clock:     clock,
	}
}

func (s *stopper) Stop(ctx context.Context, sessionID uuid.UUID) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("stop", err) }()

	sess, err = s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status.Terminal() {
		return nil, domain.NewInvalidStateError(string(sess.Status), "active, paused or pending_payment")
	}

	now := s.clock.Now()
	observed := sess.Status

	// A session stopped before a whole billable minute elapsed is a
	// cancellation, not a completed rental.
	final := domainSession.StatusCompleted
	if sess.EffectiveElapsed(now) < time.Minute {
		final = domainSession.StatusCancelled
	}

	sess.Status = final
	if sess.EndTime == nil {
		sess.EndTime = &now
	}
	sess.UpdatedAt = now

	if err := s.repo.UpdateFromStatus(ctx, sess, observed); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, event.SessionStoppedEvent{
		SessionID: sess.ID.String(),
		DeviceID:  sess.DeviceID.String(),
		Reason:    string(final),
	}); err != nil {
		s.logger.WithError(err).Error("failed to publish session_stopped event")
	}

	if err := s.cache.DeleteLiveSession(ctx, sess.DeviceID); err != nil {
		s.logger.WithError(err).Error("failed to evict live session from cache")
	}

	prometheus.SessionsActive.Dec()

	return sess, nil
}
