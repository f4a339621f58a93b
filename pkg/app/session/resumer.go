package session

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Resumer --dir=. --output=./mocks --filename=session_resumer_mock.go --case=underscore --with-expecter

type Resumer interface {
	Resume(ctx context.Context, sessionID uuid.UUID) (*domainSession.Session, error)
}

type resumer struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
	clock     clock.Clock
}

func NewResumer(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) Resumer {
	return &resumer{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		clock:     clock,
	}
}

func (r *resumer) Resume(ctx context.Context, sessionID uuid.UUID) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("resume", err) }()

	sess, err = r.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != domainSession.StatusPaused || sess.PausedAt == nil {
		return nil, domain.NewInvalidStateError(string(sess.Status), string(domainSession.StatusPaused))
	}

	now := r.clock.Now()
	pauseDuration := now.Sub(*sess.PausedAt)
	if pauseDuration < 0 {
		pauseDuration = 0
	}

	// Paused time is credited atomically here, never accrued while paused.
	sess.TotalPausedSeconds += int64(pauseDuration.Seconds())
	sess.PausedAt = nil
	sess.PauseReason = nil
	sess.PauseNotes = nil
	sess.Status = domainSession.StatusActive
	sess.UpdatedAt = now

	if err := r.repo.UpdateFromStatus(ctx, sess, domainSession.StatusPaused); err != nil {
		return nil, err
	}

	if err := r.publisher.Publish(ctx, event.SessionResumedEvent{
		SessionID:            sess.ID.String(),
		PauseDurationMinutes: pauseDuration.Minutes(),
	}); err != nil {
		r.logger.WithError(err).Error("failed to publish session_resumed event")
	}

	if err := r.cache.SaveLiveSession(ctx, sess); err != nil {
		r.logger.WithError(err).Error("failed to cache live session")
	}

	return sess, nil
}
