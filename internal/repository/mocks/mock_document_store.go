package mocks

import (
	"context"
	"io"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Search(ctx context.Context, q catalog.SerializedQuery) ([]model.DocumentRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentRecord), args.Error(1)
}

func (m *MockDocumentStore) Upload(ctx context.Context, r io.Reader, file model.FileInfo, meta model.UploadMetadata) error {
	args := m.Called(ctx, r, file, meta)
	return args.Error(0)
}

func (m *MockDocumentStore) Tags(ctx context.Context, term string) ([]string, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
