package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"docvault/internal/catalog"
	"docvault/internal/model"
)

// DocumentStore is the document store collaborator: it executes searches, accepts uploads
// and offers tag suggestions. Implementations live in subpackages (local, remote).
type DocumentStore interface {
	// Search runs a fully populated query and returns matching records in store order.
	Search(ctx context.Context, q catalog.SerializedQuery) ([]model.DocumentRecord, error)

	// Upload stores the blob together with its validated metadata.
	Upload(ctx context.Context, r io.Reader, file model.FileInfo, meta model.UploadMetadata) error

	// Tags returns known tag labels matching term (all when empty), most relevant first.
	Tags(ctx context.Context, term string) ([]string, error)
}

// ErrInvalidPage is returned by stores that cannot serve a negative start or length.
var ErrInvalidPage = errors.New("start and length must not be negative")

// UpstreamError is a failure reported by the document store. Message is meant for users
// and is surfaced verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("document store: status %d: %s", e.StatusCode, e.Message)
}
