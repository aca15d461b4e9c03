// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"sync"
)

// MockInvoker is a test helper that records every request it receives.
// It can be used to verify composition behavior without starting processes.
type MockInvoker struct {
	// Err is the error to return from Invoke (if non-nil).
	Err error
	// Result is the result every returned handle yields (nil means success).
	Result *Result

	mu       sync.Mutex
	requests []Request
}

// Name returns the invoker name.
func (m *MockInvoker) Name() string {
	return "mock"
}

// Available always returns true.
func (m *MockInvoker) Available() bool {
	return true
}

// Invoke records the request and returns a handle yielding the configured
// result, or the configured error.
func (m *MockInvoker) Invoke(_ context.Context, req Request) (*Handle, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	result := m.Result
	if result == nil {
		result = NewSuccessResult()
	}
	return NewHandle(req.Target, 0, func() *Result { return result }), nil
}

// Requests returns a copy of the recorded requests in invocation order.
func (m *MockInvoker) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Targets returns the target names of the recorded requests in order.
func (m *MockInvoker) Targets() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	targets := make([]string, len(m.requests))
	for i, req := range m.requests {
		targets[i] = req.Target
	}
	return targets
}
