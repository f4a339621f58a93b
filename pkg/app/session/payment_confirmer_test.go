package session

import (
	"context"
	"testing"
	"time"

	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentConfirmer_Confirm(t *testing.T) {
	repo := new(mockSessionRepository)
	publisher := new(mockEventPublisher)
	liveCache := new(mockLiveSessionCache)
	clk := clock.NewFake(time.Now())

	confirmer := NewPaymentConfirmer(testLogger(), repo, publisher, liveCache, clk)

	sess := activeSession(time.Now().Add(-time.Hour))
	sess.Status = domainSession.StatusPendingPayment
	sess.AmountPaid = decimal.NewFromInt(50)
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)
	repo.On("UpdateFromStatus", ctx, sess, domainSession.StatusPendingPayment).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("event.PaymentConfirmedEvent")).Return(nil)
	liveCache.On("DeleteLiveSession", ctx, sess.DeviceID).Return(nil)

	notes := "paid cash"
	result, err := confirmer.Confirm(ctx, sess.ID, &notes)

	assert.NoError(t, err)
	assert.Equal(t, domainSession.StatusCompleted, result.Status)
	assert.Equal(t, &notes, result.PaymentNotes)
	repo.AssertExpectations(t)
	liveCache.AssertExpectations(t)
}

func TestPaymentConfirmer_Confirm_NotPendingPayment(t *testing.T) {
	repo := new(mockSessionRepository)
	confirmer := NewPaymentConfirmer(testLogger(), repo, new(mockEventPublisher),
		new(mockLiveSessionCache), clock.NewFake(time.Now()))

	sess := activeSession(time.Now())
	ctx := context.Background()

	repo.On("GetByID", ctx, sess.ID).Return(sess, nil)

	_, err := confirmer.Confirm(ctx, sess.ID, nil)

	assert.True(t, domain.IsInvalidStateError(err))
	repo.AssertNotCalled(t, "UpdateFromStatus", mock.Anything, mock.Anything, mock.Anything)
}
