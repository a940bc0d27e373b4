package service

import (
	"context"

	"github.com/fridok/fridok/internal/events"
	"github.com/fridok/fridok/internal/settings"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockHaptics mocks the Haptics interface
type MockHaptics struct {
	mock.Mock
}

func (m *MockHaptics) Trigger(ctx context.Context, kind HapticKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}

// MockSettingsStore mocks the settings.Store interface
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) Load(ctx context.Context) (settings.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Settings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, s settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e *events.Event) bool {
		return e.Type == eventType
	})
}
