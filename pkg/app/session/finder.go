package session

import (
	"context"

	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/google/uuid"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=session_finder_mock.go --case=underscore --with-expecter

// View is a session enriched with the timing fields the admin panel
// renders, computed at read time.
type View struct {
	*domainSession.Session
	ElapsedMinutes   float64 `json:"elapsed_minutes"`
	RemainingMinutes float64 `json:"remaining_minutes"`
	OverdueMinutes   float64 `json:"overdue_minutes"`
}

type Finder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*View, error)
	GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*View, error)
	List(ctx context.Context, filter domainSession.ListFilter) ([]*View, error)
}

type finder struct {
	repo  domainSession.Repository
	cache LiveSessionCache
	clock clock.Clock
}

func NewFinder(repo domainSession.Repository, cache LiveSessionCache, clk clock.Clock) Finder {
	return &finder{
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

func (f *finder) GetByID(ctx context.Context, id uuid.UUID) (*View, error) {
	sess, err := f.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.toView(sess), nil
}

// GetOpenByDevice serves the device grid. The cached snapshot is
// preferred; postgres is only hit on a cache miss.
func (f *finder) GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*View, error) {
	if sess, err := f.cache.GetLiveSession(ctx, deviceID); err == nil && sess != nil {
		return f.toView(sess), nil
	}
	sess, err := f.repo.GetOpenByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	return f.toView(sess), nil
}

func (f *finder) List(ctx context.Context, filter domainSession.ListFilter) ([]*View, error) {
	sessions, err := f.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]*View, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, f.toView(sess))
	}
	return views, nil
}

func (f *finder) toView(sess *domainSession.Session) *View {
	now := f.clock.Now()
	return &View{
		Session:          sess,
		ElapsedMinutes:   sess.EffectiveElapsed(now).Minutes(),
		RemainingMinutes: sess.RemainingMinutes(now),
		OverdueMinutes:   sess.Overdue(now).Minutes(),
	}
}
