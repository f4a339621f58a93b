package session

import (
	"context"
	"testing"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStopper_Stop_CompletesUsedSession(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start.Add(45 * time.Minute))

	stopper := NewStopper(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(start)
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusActive).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionStoppedEvent")).Return(nil)
	liveCache.On("DeleteLiveSession", ctx, sess.DeviceID).Return(nil)

	result, err := stopper.Stop(ctx, sess.ID)

	assert.NoError(t, err)
	assert.Equal(t, domainSession.StatusCompleted, result.Status)
	assert.NotNil(t, result.EndTime)
	assert.Equal(t, clk.Now(), *result.EndTime)
	repo.AssertExpectations(t)
	liveCache.AssertExpectations(t)
}

// Stopping before a billable minute elapsed is treated as a mistake and
// recorded as cancelled.
func TestStopper_Stop_CancelsImmediateStop(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start.Add(20 * time.Second))

	stopper := NewStopper(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(start)
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusActive).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionStoppedEvent")).Return(nil)
	liveCache.On("DeleteLiveSession", ctx, sess.DeviceID).Return(nil)

	result, err := stopper.Stop(ctx, sess.ID)

	assert.NoError(t, err)
	assert.Equal(t, domainSession.StatusCancelled, result.Status)
}

func TestStopper_Stop_PendingPaymentKeepsEndTime(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	expiredAt := start.Add(60 * time.Minute)
	clk := clock.NewFake(start.Add(70 * time.Minute))

	stopper := NewStopper(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(start)
	sess.Status = domainSession.StatusPendingPayment
	sess.EndTime = &expiredAt
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusPendingPayment).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionStoppedEvent")).Return(nil)
	liveCache.On("DeleteLiveSession", ctx, sess.DeviceID).Return(nil)

	result, err := stopper.Stop(ctx, sess.ID)

	assert.NoError(t, err)
	assert.Equal(t, domainSession.StatusCompleted, result.Status)
	// EndTime was stamped at expiry, not at the stop.
	assert.Equal(t, expiredAt, *result.EndTime)
}

func TestStopper_Stop_AlreadyTerminal(t *testing.T) {
	repo := new(mockSessionRepository)
	stopper := NewStopper(testLogger(), repo, new(mockEventPublisher), new(mockLiveSessionCache), clock.NewFake(time.Now()))

	sess := activeSession(time.Now())
	sess.Status = domainSession.StatusCancelled
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)

	_, err := stopper.Stop(ctx, sess.ID)

	assert.True(t, domain.IsInvalidStateError(err))
	repo.AssertNotCalled(t, "UpdateFromStatus", mock.Anything, mock.Anything, mock.Anything)
}
