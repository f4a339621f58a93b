package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExpiryChecker_Check_ExpiresOverrunSessions(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	checker := NewExpiryChecker(testLogger(), repo, publisher, liveCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Minute)

	overrun := activeSession(start)
	overrun.DurationMinutes = 5
	fresh := activeSession(start)
	fresh.DurationMinutes = 60
	ctx := context.Background()

	repo.On("ListExpirable", ctx).Return([]*domainSession.Session{overrun, fresh}, nil)
	repo.On("UpdateFromStatus", ctx, overrun, domainSession.StatusActive).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionExpiredEvent")).Return(nil)
	liveCache.On("SaveLiveSession", ctx, overrun).Return(nil)

	expired, err := checker.Check(ctx, now)

	assert.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, domainSession.StatusPendingPayment, overrun.Status)
	assert.Equal(t, now, *overrun.EndTime)
	assert.Equal(t, domainSession.StatusActive, fresh.Status)
	repo.AssertExpectations(t)
}

func TestExpiryChecker_Check_Idempotent(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	checker := NewExpiryChecker(testLogger(), repo, publisher, liveCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Minute)

	overrun := activeSession(start)
	overrun.DurationMinutes = 5
	ctx := context.Background()

	// Another node already flipped the session; the CAS misses and the
	// sweep carries on without counting or publishing.
	repo.On("ListExpirable", ctx).Return([]*domainSession.Session{overrun}, nil)
	repo.On("UpdateFromStatus", ctx, overrun, domainSession.StatusActive).
		Return(domain.NewInvalidStateError("pending_payment", "active"))

	expired, err := checker.Check(ctx, now)

	assert.NoError(t, err)
	assert.Equal(t, 0, expired)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestExpiryChecker_Check_FailureDoesNotAbortBatch(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	checker := NewExpiryChecker(testLogger(), repo, publisher, liveCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Minute)

	failing := activeSession(start)
	failing.DurationMinutes = 5
	healthy := activeSession(start)
	healthy.DurationMinutes = 5
	ctx := context.Background()

	repo.On("ListExpirable", ctx).Return([]*domainSession.Session{failing, healthy}, nil)
	repo.On("UpdateFromStatus", ctx, failing, domainSession.StatusActive).Return(errors.New("connection reset"))
	repo.On("UpdateFromStatus", ctx, healthy, domainSession.StatusActive).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionExpiredEvent")).Return(nil)
	liveCache.On("SaveLiveSession", ctx, healthy).Return(nil)

	expired, err := checker.Check(ctx, now)

	assert.NoError(t, err)
	assert.Equal(t, 1, expired)
	repo.AssertExpectations(t)
}

func TestExpiryChecker_Check_ListFailure(t *testing.T) {
	repo := new(mockSessionRepository)
	checker := NewExpiryChecker(testLogger(), repo, new(mockEventPublisher), new(mockLiveSessionCache))

	ctx := context.Background()
	repo.On("ListExpirable", ctx).Return(nil, errors.New("db down"))

	_, err := checker.Check(ctx, time.Now())

	assert.Error(t, err)
}
