package session

import (
	"context"
	"fmt"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=ExpiryChecker --dir=. --output=./mocks --filename=expiry_checker_mock.go --case=underscore --with-expecter

// ExpiryChecker moves overrun active sessions to pending_payment.
// Paused sessions are never listed as expirable, so they cannot expire.
type ExpiryChecker interface {
	// Check transitions every active session whose remaining time
	// reached zero at now. It returns the number of sessions expired;
	// a per-session failure is logged and does not abort the batch.
	Check(ctx context.Context, now time.Time) (int, error)
}

type expiryChecker struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
}

func NewExpiryChecker(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
) ExpiryChecker {
	return &expiryChecker{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
	}
}

func (c *expiryChecker) Check(ctx context.Context, now time.Time) (int, error) {
	sessions, err := c.repo.ListExpirable(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expirable sessions: %w", err)
	}

	expired := 0
	for _, sess := range sessions {
		if !sess.Expired(now) {
			continue
		}
		if err := c.expire(ctx, sess, now); err != nil {
			// Already pending_payment means another tick or node won
			// the CAS; anything else must not block the rest of the batch.
			if domain.IsInvalidStateError(err) {
				continue
			}
			c.logger.WithError(err).WithField("session_id", sess.ID).Error("failed to expire session")
			continue
		}
		expired++
	}
	return expired, nil
}

func (c *expiryChecker) expire(ctx context.Context, sess *domainSession.Session, now time.Time) error {
	overdue := sess.Overdue(now)

	sess.Status = domainSession.StatusPendingPayment
	sess.EndTime = &now
	sess.UpdatedAt = now

	if err := c.repo.UpdateFromStatus(ctx, sess, domainSession.StatusActive); err != nil {
		return err
	}

	if err := c.publisher.Publish(ctx, event.SessionExpiredEvent{
		SessionID:      sess.ID.String(),
		DeviceID:       sess.DeviceID.String(),
		OverdueMinutes: overdue.Minutes(),
	}); err != nil {
		c.logger.WithError(err).Error("failed to publish session_expired event")
	}

	if err := c.cache.SaveLiveSession(ctx, sess); err != nil {
		c.logger.WithError(err).Error("failed to cache live session")
	}

	prometheus.SessionsExpiredTotal.Inc()
	return nil
}
