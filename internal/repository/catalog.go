package repository

import (
	"context"
	"time"

	"docvault/internal/catalog"
)

// CatalogRepository persists document metadata for the local store using SQL only.
// No business logic here, only persistence operations.
type CatalogRepository interface {
	// Create inserts a document and its tags atomically.
	Create(ctx context.Context, doc *StoredDocument) error

	// Search returns documents matching q. Empty filter fields do not filter.
	Search(ctx context.Context, q catalog.SerializedQuery) ([]StoredDocument, error)

	// Tags returns up to limit distinct tag names containing term, most used first.
	Tags(ctx context.Context, term string, limit int) ([]string, error)
}

// StoredDocument is a document row together with its tags in insertion order.
type StoredDocument struct {
	ID           string
	FileName     string
	ContentType  string
	StoragePath  string
	Size         int64
	MajorHead    string
	MinorHead    string
	DocumentDate time.Time
	Remarks      string
	UploadedBy   string
	Tags         []string
	CreatedAt    time.Time
}
