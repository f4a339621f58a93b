package session

import (
	"context"

	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/google/uuid"
)

//go:generate mockery --name=LiveSessionCache --dir=. --output=./mocks --filename=live_session_cache_mock.go --case=underscore --with-expecter

// LiveSessionCache is the slice of pkg/cache the session use cases need:
// keeping the per-device snapshot the admin panel reads in sync.
type LiveSessionCache interface {
	SaveLiveSession(ctx context.Context, sess *domainSession.Session) error
	GetLiveSession(ctx context.Context, deviceID uuid.UUID) (*domainSession.Session, error)
	DeleteLiveSession(ctx context.Context, deviceID uuid.UUID) error
}
