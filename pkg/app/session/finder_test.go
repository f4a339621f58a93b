package session

import (
	"context"
	"testing"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFinder_GetOpenByDevice_CacheHit(t *testing.T) {
	repo := new(mockSessionRepository)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start.Add(10 * time.Minute))
	finder := NewFinder(repo, liveCache, clk)

	sess := activeSession(start)
	ctx := context.Background()

	liveCache.On("GetLiveSession", ctx, sess.DeviceID).Return(sess, nil)

	view, err := finder.GetOpenByDevice(ctx, sess.DeviceID)

	assert.NoError(t, err)
	assert.Equal(t, 10.0, view.ElapsedMinutes)
	assert.Equal(t, 50.0, view.RemainingMinutes)
	repo.AssertNotCalled(t, "GetOpenByDevice", mock.Anything, mock.Anything)
}

func TestFinder_GetOpenByDevice_CacheMissFallsBack(t *testing.T) {
	repo := new(mockSessionRepository)
	liveCache := new(mockLiveSessionCache)

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	clk := clock.NewFake(start.Add(10 * time.Minute))
	finder := NewFinder(repo, liveCache, clk)

	sess := activeSession(start)
	ctx := context.Background()

	liveCache.On("GetLiveSession", ctx, sess.DeviceID).Return(nil, nil)
	repo.On("GetOpenByDevice", ctx, sess.DeviceID).Return(sess, nil)

	view, err := finder.GetOpenByDevice(ctx, sess.DeviceID)

	assert.NoError(t, err)
	assert.Equal(t, sess.ID, view.ID)
	repo.AssertExpectations(t)
}

func TestFinder_GetOpenByDevice_NoOpenSession(t *testing.T) {
	repo := new(mockSessionRepository)
	liveCache := new(mockLiveSessionCache)
	finder := NewFinder(repo, liveCache, clock.NewFake(time.Now()))

	deviceID := uuid.New()
	ctx := context.Background()

	liveCache.On("GetLiveSession", ctx, deviceID).Return(nil, nil)
	repo.On("GetOpenByDevice", ctx, deviceID).
		Return(nil, domain.NewNotFoundError("session", deviceID.String()))

	_, err := finder.GetOpenByDevice(ctx, deviceID)

	assert.True(t, domain.IsNotFoundError(err))
}
