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

func TestResumer_Resume_CreditsPausedTime(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	pausedAt := start.Add(2 * time.Minute)
	clk := clock.NewFake(start.Add(7 * time.Minute))

	resumer := NewResumer(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(start)
	sess.DurationMinutes = 10
	sess.Status = domainSession.StatusPaused
	sess.PausedAt = &pausedAt
	reason := domainSession.PauseReasonPowerOutage
	sess.PauseReason = &reason
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusPaused).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionResumedEvent")).Return(nil)
	liveCache.On("SaveLiveSession", ctx, sess).Return(nil)

	result, err := resumer.Resume(ctx, sess.ID)

	assert.NoError(t, err)
	assert.Equal(t, domainSession.StatusActive, result.Status)
	assert.Nil(t, result.PausedAt)
	assert.Nil(t, result.PauseReason)
	assert.Nil(t, result.PauseNotes)
	assert.Equal(t, int64(300), result.TotalPausedSeconds)

	// 2 consumed before the pause, so 8 remain at the resume instant.
	assert.Equal(t, 8*time.Minute, result.Remaining(clk.Now()))
	repo.AssertExpectations(t)
}

func TestResumer_Resume_AccumulatesAcrossPauses(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	pausedAt := start.Add(30 * time.Minute)
	clk := clock.NewFake(start.Add(40 * time.Minute))

	resumer := NewResumer(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(start)
	sess.Status = domainSession.StatusPaused
	sess.PausedAt = &pausedAt
	sess.TotalPausedSeconds = 120
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusPaused).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.SessionResumedEvent")).Return(nil)
	liveCache.On("SaveLiveSession", ctx, sess).Return(nil)

	result, err := resumer.Resume(ctx, sess.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(120+600), result.TotalPausedSeconds)
}

func TestResumer_Resume_NotPaused(t *testing.T) {
	repo := new(mockSessionRepository)
	resumer := NewResumer(testLogger(), repo, new(mockEventPublisher), new(mockLiveSessionCache), clock.NewFake(time.Now()))

	sess := activeSession(time.Now())
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)

	_, err := resumer.Resume(ctx, sess.ID)

	assert.True(t, domain.IsInvalidStateError(err))
}
