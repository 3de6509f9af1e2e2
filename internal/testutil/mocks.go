package testutil

import (
	"context"
	"sync"
	"time"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// MockTranslator mocks the translation backend
type MockTranslator struct {
	// Output is returned for every call unless Outputs has an entry
	// for the source text.
	Output  string
	Outputs map[string]string
	// Err is returned for every call; Errs overrides per source text.
	Err  error
	Errs map[string]error
	// Delay simulates network latency before the result is returned.
	Delay time.Duration

	mu    sync.Mutex
	Calls []string
}

// Translate records the call and returns the configured result
func (m *MockTranslator) Translate(ctx context.Context, req prompt.Request) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req.SourceText)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if err, ok := m.Errs[req.SourceText]; ok {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if out, ok := m.Outputs[req.SourceText]; ok {
		return out, nil
	}
	return m.Output, nil
}

// CallCount returns how many times Translate was invoked
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockStorage mocks the keyed history storage backend
type MockStorage struct {
	Data      map[string][]byte
	GetErr    error
	SetErr    error
	RemoveErr error

	mu    sync.Mutex
	Calls []string
}

func (m *MockStorage) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, op)
}

func (m *MockStorage) Get(key string) ([]byte, bool, error) {
	m.record("Get " + key)
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	value, ok := m.Data[key]
	return value, ok, nil
}

func (m *MockStorage) Set(key string, value []byte) error {
	m.record("Set " + key)
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Data == nil {
		m.Data = make(map[string][]byte)
	}
	m.Data[key] = value
	return nil
}

func (m *MockStorage) Remove(key string) error {
	m.record("Remove " + key)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Data, key)
	return nil
}
