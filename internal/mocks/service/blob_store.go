// Package service contains testify doubles for the domain service
// interfaces, used by usecase and component tests.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBlobStore is a testify double for service.BlobStore.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, key string, payload []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, payload, contentType)

	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) OwnsURL(publicURL string) bool {
	args := m.Called(publicURL)

	return args.Bool(0)
}

func (m *MockBlobStore) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	args := m.Called(ctx, publicURL)

	return args.Error(0)
}
