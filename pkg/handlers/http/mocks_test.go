package http

import (
	"context"

	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type starterMock struct {
	mock.Mock
}

func (m *starterMock) Start(ctx context.Context, input appSession.StartInput) (*domainSession.Session, error) {
	args := m.Called(ctx, input)
	if sess, ok := args.Get(0).(*domainSession.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

type finderMock struct {
	mock.Mock
}

func (m *finderMock) GetByID(ctx context.Context, id uuid.UUID) (*appSession.View, error) {
	args := m.Called(ctx, id)
	if view, ok := args.Get(0).(*appSession.View); ok {
		return view, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *finderMock) GetOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*appSession.View, error) {
	args := m.Called(ctx, deviceID)
	if view, ok := args.Get(0).(*appSession.View); ok {
		return view, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *finderMock) List(ctx context.Context, filter domainSession.ListFilter) ([]*appSession.View, error) {
	args := m.Called(ctx, filter)
	if views, ok := args.Get(0).([]*appSession.View); ok {
		return views, args.Error(1)
	}
	return nil, args.Error(1)
}
