package cache

import (
	"context"

	"github.com/siddhityagi17/event-manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventCacheMock struct {
	mock.Mock
}

func NewEventCacheMock() *EventCacheMock {
	return &EventCacheMock{}
}

func (m *EventCacheMock) GetEvents(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventCacheMock) SetEvents(ctx context.Context, events []*model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *EventCacheMock) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
