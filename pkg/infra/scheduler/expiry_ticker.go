package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type ExpiryTicker interface {
	Start()
	Shutdown()
}

type expiryTicker struct {
	logger   *logrus.Logger
	checker  appSession.ExpiryChecker
	clock    clock.Clock
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	running  atomic.Bool
	wg       sync.WaitGroup
}

func NewExpiryTicker(
	logger *logrus.Logger,
	checker appSession.ExpiryChecker,
	clk clock.Clock,
	interval time.Duration,
) ExpiryTicker {
	ctx, cancel := context.WithCancel(context.Background())
	return &expiryTicker{
		logger:   logger,
		checker:  checker,
		clock:    clk,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (t *expiryTicker) Start() {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		t.logger.WithField("interval", t.interval.String()).Info("starting session expiry ticker")
		for {
			select {
			case <-ticker.C:
				t.wg.Add(1)
				go func() {
					defer t.wg.Done()
					t.tick()
				}()
			case <-t.ctx.Done():
				return
			}
		}
	}()
}

func (t *expiryTicker) Shutdown() {
	t.cancel()
	t.wg.Wait()
	t.logger.Info("session expiry ticker stopped")
}

// tick runs one expiry sweep. If the previous sweep is still in flight
// the tick is skipped, never queued, so slow sweeps cannot pile up.
func (t *expiryTicker) tick() {
	if !t.running.CompareAndSwap(false, true) {
		t.logger.Warn("previous expiry sweep still running, skipping tick")
		return
	}
	defer t.running.Store(false)

	start := time.Now()
	expired, err := t.checker.Check(t.ctx, t.clock.Now())
	prometheus.ExpiryTickDuration.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		t.logger.WithError(err).Error("expiry sweep failed")
		return
	}
	if expired > 0 {
		t.logger.WithField("expired", expired).Info("sessions moved to pending_payment")
	}
}
