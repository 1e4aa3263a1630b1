package mocks

import (
	"context"
	"io"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Search(ctx context.Context, criteria catalog.SearchCriteria) ([]catalog.Entry, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Entry), args.Error(1)
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, form catalog.UploadForm) (model.UploadMetadata, error) {
	args := m.Called(ctx, r, form)
	return args.Get(0).(model.UploadMetadata), args.Error(1)
}

func (m *MockDocumentService) Suggestions(ctx context.Context, term string) []string {
	args := m.Called(ctx, term)
	return args.Get(0).([]string)
}

func (m *MockDocumentService) Categories() []service.CategoryView {
	args := m.Called()
	return args.Get(0).([]service.CategoryView)
}

func (m *MockDocumentService) Preview(fileURL, declaredType, fileName string) catalog.PreviewState {
	args := m.Called(fileURL, declaredType, fileName)
	return args.Get(0).(catalog.PreviewState)
}

func (m *MockDocumentService) Download(fileURL, fileName string) catalog.DownloadOutcome {
	args := m.Called(fileURL, fileName)
	return args.Get(0).(catalog.DownloadOutcome)
}
