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

//go:generate mockery --name=Pauser --dir=. --output=./mocks --filename=session_pauser_mock.go --case=underscore --with-expecter

type Pauser interface {
	Pause(ctx context.Context, sessionID uuid.UUID, reason domainSession.PauseReason, notes *string) (*domainSession.Session, error)
}

type pauser struct {
	logger    *logrus.Logger
	repo      domainSession.Repository
	publisher events.EventPublisher
	cache     LiveSessionCache
	clock     clock.Clock
}

func NewPauser(
	logger *logrus.Logger,
	repo domainSession.Repository,
	publisher events.EventPublisher,
	cache LiveSessionCache,
	clock clock.Clock,
) Pauser {
	return &pauser{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		clock:     clock,
	}
}

func (p *pauser) Pause(
	ctx context.Context,
	sessionID uuid.UUID,
	reason domainSession.PauseReason,
	notes *string,
) (sess *domainSession.Session, err error) {
	defer func() { observeCommand("pause", err) }()

	if !reason.Valid() {
		return nil, domain.NewValidationError("reason", "unknown pause reason")
	}

	sess, err = p.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != domainSession.StatusActive {
		return nil, domain.NewInvalidStateError(string(sess.Status), string(domainSession.StatusActive))
	}

	now := p.clock.Now()
	sess.Status = domainSession.StatusPaused
	sess.PausedAt = &now
	sess.PauseReason = &reason
	sess.PauseNotes = notes
	sess.UpdatedAt = now

	if err := p.repo.UpdateFromStatus(ctx, sess, domainSession.StatusActive); err != nil {
		return nil, err
	}

	if err := p.publisher.Publish(ctx, event.SessionPausedEvent{
		SessionID:   sess.ID.String(),
		PauseReason: string(reason),
		PausedAt:    now,
	}); err != nil {
		p.logger.WithError(err).Error("failed to publish session_paused event")
	}

	if err := p.cache.SaveLiveSession(ctx, sess); err != nil {
		p.logger.WithError(err).Error("failed to cache live session")
	}

	return sess, nil
}
