package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockIPAProvider mocks a phonetic provider
type MockIPAProvider struct {
	Responses map[string]string
	Errors    map[string]error

	mu    sync.Mutex
	Calls []string
}

// FetchIPA returns the canned response for word
func (m *MockIPAProvider) FetchIPA(ctx context.Context, word, language string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s (%s)", word, language))
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if ipa, ok := m.Responses[word]; ok {
		return ipa, nil
	}
	return "", fmt.Errorf("no pronunciation for %q", word)
}

// Name returns the provider name
func (m *MockIPAProvider) Name() string {
	return "mock"
}

// CallCount returns the number of FetchIPA calls
func (m *MockIPAProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
