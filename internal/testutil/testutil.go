// Package testutil provides shared test doubles.
package testutil

import (
	"context"

	"coingen/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc  func(ctx context.Context) (string, error)
	SourceFunc func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (string, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return "", nil
}

// Source implements the Fetcher interface
func (m *MockFetcher) Source() string {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return "mock:source"
}

// NewMockFetcher creates a simple mock fetcher with a fixed document and error
func NewMockFetcher(source, document string, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (string, error) {
			return document, err
		},
		SourceFunc: func() string {
			return source
		},
	}
}
