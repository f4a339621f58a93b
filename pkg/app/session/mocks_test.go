package session

import (
	"context"

	"github.com/NeonArcade/PlayBill/pkg/domain/catalog"
	"github.com/NeonArcade/PlayBill/pkg/domain/device"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domainSession.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*domainSession.Session, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) Create(ctx context.Context, sess *domainSession.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockSessionRepository) UpdateFromStatus(ctx context.Context, sess *domainSession.Session, from domainSession.Status) error {
	args := m.Called(ctx, sess, from)
	return args.Error(0)
}

func (m *mockSessionRepository) ListExpirable(ctx context.Context) ([]*domainSession.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainSession.Session), args.Error(1)
}

func (m *mockSessionRepository) List(ctx context.Context, filter domainSession.ListFilter) ([]*domainSession.Session, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainSession.Session), args.Error(1)
}

type mockDeviceRepository struct {
	mock.Mock
}

func (m *mockDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*device.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*device.Device), args.Error(1)
}

func (m *mockDeviceRepository) List(ctx context.Context) ([]*device.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*device.Device), args.Error(1)
}

func (m *mockDeviceRepository) Save(ctx context.Context, d *device.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDeviceRepository) Update(ctx context.Context, d *device.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPackageRepository struct {
	mock.Mock
}

func (m *mockPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *mockPackageRepository) List(ctx context.Context) ([]*catalog.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Package), args.Error(1)
}

func (m *mockPackageRepository) Save(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPackageRepository) Update(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, ev event.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type mockLiveSessionCache struct {
	mock.Mock
}

func (m *mockLiveSessionCache) SaveLiveSession(ctx context.Context, sess *domainSession.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockLiveSessionCache) GetLiveSession(ctx context.Context, deviceID uuid.UUID) (*domainSession.Session, error) {
	args := m.Called(ctx, deviceID)
	if sess, ok := args.Get(0).(*domainSession.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLiveSessionCache) DeleteLiveSession(ctx context.Context, deviceID uuid.UUID) error {
	args := m.Called(ctx, deviceID)
	return args.Error(0)
}
