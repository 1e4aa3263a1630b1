package local

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docvault/internal/catalog"
	"docvault/internal/model"
	"docvault/internal/repository"
	"docvault/internal/storage"
)

const (
	objectPrefix  = "documents"
	tagQueryLimit = 50
	displayLayout = "02-01-2006"
)

// Store is a self-hosted document store: metadata in a CatalogRepository, blobs in object storage.
// Search results carry pre-signed URLs valid for the configured expiry.
type Store struct {
	repo          repository.CatalogRepository
	objects       storage.Storage
	presignExpiry time.Duration
	now           func() time.Time
}

// New constructs a Store.
func New(repo repository.CatalogRepository, objects storage.Storage, presignExpiry time.Duration) *Store {
	return &Store{repo: repo, objects: objects, presignExpiry: presignExpiry, now: time.Now}
}

var _ repository.DocumentStore = (*Store)(nil)

// Search runs q against the catalog and resolves each document to a pre-signed URL.
// A negative page window is refused with repository.ErrInvalidPage before any query runs.
func (s *Store) Search(ctx context.Context, q catalog.SerializedQuery) ([]model.DocumentRecord, error) {
	if q.Start < 0 || q.Length < 0 {
		return nil, repository.ErrInvalidPage
	}
	docs, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]model.DocumentRecord, 0, len(docs))
	for _, d := range docs {
		u, err := s.objects.PresignGet(ctx, d.StoragePath, s.presignExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", d.StoragePath, err)
		}
		out = append(out, toRecord(d, u))
	}
	return out, nil
}

// Upload streams the blob to object storage, then saves metadata. If saving fails the
// object is deleted again.
// The object key is a fresh UUID plus the original extension.
func (s *Store) Upload(ctx context.Context, r io.Reader, file model.FileInfo, meta model.UploadMetadata) error {
	docDate, err := catalog.ParseUploadDate(meta.DocumentDate)
	if err != nil {
		return fmt.Errorf("parse document date: %w", err)
	}

	id := uuid.New().String()
	key := filepath.ToSlash(filepath.Join(objectPrefix, id+strings.ToLower(filepath.Ext(file.Name))))

	objInfo, err := s.objects.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        file.Size,
		ContentType: file.ContentType,
		Metadata: map[string]string{
			"original-filename": file.Name,
		},
	})
	if err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}

	tags := make([]string, 0, len(meta.Tags))
	for _, t := range meta.Tags {
		tags = append(tags, t.Name)
	}
	doc := &repository.StoredDocument{
		ID:           id,
		FileName:     file.Name,
		ContentType:  file.ContentType,
		StoragePath:  objInfo.Key,
		Size:         objInfo.Size,
		MajorHead:    meta.MajorHead,
		MinorHead:    meta.MinorHead,
		DocumentDate: docDate,
		Remarks:      meta.DocumentRemarks,
		UploadedBy:   meta.UserID,
		Tags:         tags,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return fmt.Errorf("db save failed: %w", err)
	}
	return nil
}

// Tags returns the most used tags containing term.
func (s *Store) Tags(ctx context.Context, term string) ([]string, error) {
	return s.repo.Tags(ctx, strings.TrimSpace(term), tagQueryLimit)
}

func toRecord(d repository.StoredDocument, fileURL string) model.DocumentRecord {
	tags := make([]model.Tag, 0, len(d.Tags))
	for _, t := range d.Tags {
		tags = append(tags, model.Tag{Name: t})
	}
	return model.DocumentRecord{
		ID:           d.ID,
		FileURL:      fileURL,
		FileName:     d.FileName,
		FileType:     d.ContentType,
		MajorHead:    d.MajorHead,
		MinorHead:    d.MinorHead,
		DocumentDate: d.DocumentDate.Format(displayLayout),
		UploadedBy:   d.UploadedBy,
		UploadTime:   d.CreatedAt.UTC().Format(time.RFC3339),
		Remarks:      d.Remarks,
		Tags:         tags,
		StoragePath:  d.StoragePath,
	}
}
