package notify

import (
	"context"
	"sync"
)

// MockSender records every Send call and returns a configurable error.
type MockSender struct {
	mu sync.Mutex

	SendError error
	SendFunc  func(context.Context, Notification) error
	available bool

	Calls []Notification
}

// NewMockSender creates a new mock sender with default behavior (available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{available: true}
}

// WithSendError configures the mock to return an error on Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// WithSendFunc configures a custom send function
func (m *MockSender) WithSendFunc(fn func(context.Context, Notification) error) *MockSender {
	m.SendFunc = fn
	return m
}

// WithAvailable configures whether the mock reports itself available
func (m *MockSender) WithAvailable(available bool) *MockSender {
	m.available = available
	return m
}

func (m *MockSender) Name() string { return "mock" }

func (m *MockSender) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// Send records the call and returns the configured error
func (m *MockSender) Send(ctx context.Context, n Notification) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, n)
	fn, err := m.SendFunc, m.SendError
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, n)
	}
	return err
}

// CallCount returns the number of Send calls
func (m *MockSender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
