package mocks

import (
	"context"

	"docvault/internal/catalog"
	"docvault/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Create(ctx context.Context, doc *repository.StoredDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockCatalogRepository) Search(ctx context.Context, q catalog.SerializedQuery) ([]repository.StoredDocument, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoredDocument), args.Error(1)
}

func (m *MockCatalogRepository) Tags(ctx context.Context, term string, limit int) ([]string, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
