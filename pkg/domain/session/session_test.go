package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newActiveSession(start time.Time, durationMinutes int) *Session {
	return &Session{
		ID:              uuid.New(),
		DeviceID:        uuid.New(),
		CustomerName:    "Walk-in",
		DurationMinutes: durationMinutes,
		StartTime:       start,
		Status:          StatusActive,
	}
}

func TestEffectiveElapsed_Active(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 60)

	assert.Equal(t, 10*time.Minute, sess.EffectiveElapsed(start.Add(10*time.Minute)))
}

func TestEffectiveElapsed_DiscountsPausedTime(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 60)
	sess.TotalPausedSeconds = 300

	assert.Equal(t, 5*time.Minute, sess.EffectiveElapsed(start.Add(10*time.Minute)))
}

func TestEffectiveElapsed_FrozenWhilePaused(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	pausedAt := start.Add(3 * time.Minute)
	sess := newActiveSession(start, 60)
	sess.Status = StatusPaused
	sess.PausedAt = &pausedAt

	// The clock stops at PausedAt no matter how far now advances.
	assert.Equal(t, 3*time.Minute, sess.EffectiveElapsed(start.Add(2*time.Hour)))
}

func TestEffectiveElapsed_NeverNegative(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 60)
	sess.TotalPausedSeconds = 3600

	assert.Equal(t, time.Duration(0), sess.EffectiveElapsed(start.Add(10*time.Minute)))
	assert.Equal(t, time.Duration(0), sess.EffectiveElapsed(start.Add(-time.Minute)))
}

func TestRemaining_FlooredAtZero(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 5)

	assert.Equal(t, 5*time.Minute, sess.Remaining(start))
	assert.Equal(t, 2*time.Minute, sess.Remaining(start.Add(3*time.Minute)))
	assert.Equal(t, time.Duration(0), sess.Remaining(start.Add(10*time.Minute)))
	assert.Equal(t, 5*time.Minute, sess.Overdue(start.Add(10*time.Minute)))
}

func TestExpired(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 5)

	assert.False(t, sess.Expired(start.Add(4*time.Minute+59*time.Second)))
	assert.True(t, sess.Expired(start.Add(5*time.Minute)))
	assert.True(t, sess.Expired(start.Add(6*time.Minute)))
}

func TestExpired_PausedSessionNeverExpires(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	pausedAt := start.Add(4 * time.Minute)
	sess := newActiveSession(start, 5)
	sess.Status = StatusPaused
	sess.PausedAt = &pausedAt

	assert.False(t, sess.Expired(start.Add(time.Hour)))
}

// A 10-minute session paused at minute 2 and resumed at minute 7 has
// consumed 2 minutes at the resume instant and keeps running from there.
func TestPauseResumeAccounting(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	sess := newActiveSession(start, 10)

	pausedAt := start.Add(2 * time.Minute)
	sess.Status = StatusPaused
	sess.PausedAt = &pausedAt

	// 5 minutes into the pause nothing has been consumed since.
	assert.Equal(t, 2*time.Minute, sess.EffectiveElapsed(start.Add(7*time.Minute)))

	// Resume at minute 7: credit the 5 paused minutes.
	sess.Status = StatusActive
	sess.PausedAt = nil
	sess.TotalPausedSeconds = 300

	assert.Equal(t, 8*time.Minute, sess.Remaining(start.Add(7*time.Minute)))
	assert.Equal(t, 5*time.Minute, sess.Remaining(start.Add(10*time.Minute)))
	assert.True(t, sess.Expired(start.Add(15*time.Minute)))
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusActive.Open())
	assert.True(t, StatusPaused.Open())
	assert.True(t, StatusPendingPayment.Open())
	assert.False(t, StatusCompleted.Open())
	assert.False(t, StatusCancelled.Open())

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPendingPayment.Terminal())
}

func TestPauseReasonValid(t *testing.T) {
	assert.True(t, PauseReasonPrayerTime.Valid())
	assert.True(t, PauseReasonPowerOutage.Valid())
	assert.True(t, PauseReasonCustomerRequest.Valid())
	assert.True(t, PauseReasonOther.Valid())
	assert.False(t, PauseReason("coffee_break").Valid())
}
