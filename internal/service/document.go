package service

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"docvault/internal/catalog"
	"docvault/internal/config"
	"docvault/internal/model"
	"docvault/internal/repository"
)

const DefaultSuggestionLimit = 5

var ErrReaderNil = errors.New("reader is nil")

var tracer = otel.Tracer("docvault/internal/service")

// CategoryView is one selectable category with its subcategory choices.
type CategoryView struct {
	Name          model.Category `json:"name"`
	Subcategories []string       `json:"subcategories"`
}

// DocumentService defines the use cases of the document client.
type DocumentService interface {
	// Search builds the query from criteria, runs it against the store and decorates each
	// result with its display name and classification. Store failures are returned as is.
	Search(ctx context.Context, criteria catalog.SearchCriteria) ([]catalog.Entry, error)

	// Upload validates the form and, only when valid, hands blob and metadata to the store.
	Upload(ctx context.Context, r io.Reader, form catalog.UploadForm) (model.UploadMetadata, error)

	// Suggestions returns at most the configured number of tag labels for term.
	// It never fails: store errors are logged and yield an empty list.
	Suggestions(ctx context.Context, term string) []string

	// Categories lists categories in display order with their subcategory choices.
	Categories() []CategoryView

	// Preview decides how a file is shown. Unsupported files still open, with a message.
	Preview(fileURL, declaredType, fileName string) catalog.PreviewState

	// Download returns either a directive for the file or a refusal with a warning.
	Download(fileURL, fileName string) catalog.DownloadOutcome
}

type documentService struct {
	store           repository.DocumentStore
	categories      config.CategoryOptions
	suggestionLimit int
	log             zerolog.Logger
}

// NewDocumentService constructs a new DocumentService. A non-positive suggestionLimit
// falls back to DefaultSuggestionLimit.
func NewDocumentService(store repository.DocumentStore, categories config.CategoryOptions, suggestionLimit int, log zerolog.Logger) DocumentService {
	if suggestionLimit <= 0 {
		suggestionLimit = DefaultSuggestionLimit
	}
	if categories == nil {
		categories = config.DefaultCategories()
	}
	return &documentService{
		store:           store,
		categories:      categories,
		suggestionLimit: suggestionLimit,
		log:             log,
	}
}

func (s *documentService) Search(ctx context.Context, criteria catalog.SearchCriteria) ([]catalog.Entry, error) {
	q := catalog.Build(criteria)

	ctx, span := tracer.Start(ctx, "DocumentService.Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("docvault.major_head", q.MajorHead),
		attribute.Int("docvault.tags", len(q.Tags)),
		attribute.Int("docvault.start", q.Start),
		attribute.Int("docvault.length", q.Length),
	)

	recs, err := s.store.Search(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("docvault.results", len(recs)))
	return catalog.Decorate(recs), nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, form catalog.UploadForm) (model.UploadMetadata, error) {
	meta, err := catalog.PrepareUpload(form)
	if err != nil {
		return model.UploadMetadata{}, err
	}
	if r == nil {
		return model.UploadMetadata{}, ErrReaderNil
	}

	ctx, span := tracer.Start(ctx, "DocumentService.Upload")
	defer span.End()
	span.SetAttributes(
		attribute.String("docvault.file_type", form.File.ContentType),
		attribute.Int64("docvault.file_size", form.File.Size),
		attribute.String("docvault.major_head", meta.MajorHead),
	)

	if err := s.store.Upload(ctx, r, *form.File, meta); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
		return model.UploadMetadata{}, err
	}
	return meta, nil
}

func (s *documentService) Suggestions(ctx context.Context, term string) []string {
	ctx, span := tracer.Start(ctx, "DocumentService.Suggestions")
	defer span.End()

	labels, err := s.store.Tags(ctx, term)
	if err != nil {
		span.RecordError(err)
		s.log.Warn().Err(err).Str("term", term).Msg("tag_suggestions_failed")
		return []string{}
	}
	if len(labels) > s.suggestionLimit {
		labels = labels[:s.suggestionLimit]
	}
	if labels == nil {
		labels = []string{}
	}
	return labels
}

func (s *documentService) Categories() []CategoryView {
	out := make([]CategoryView, 0, len(model.Categories))
	for _, c := range model.Categories {
		subs := append([]string{}, s.categories[c]...)
		out = append(out, CategoryView{Name: c, Subcategories: subs})
	}
	return out
}

// Preview and Download each use a fresh orchestrator: one request is one session.

func (s *documentService) Preview(fileURL, declaredType, fileName string) catalog.PreviewState {
	var o catalog.Orchestrator
	return o.RequestPreview(fileURL, declaredType, fileName)
}

func (s *documentService) Download(fileURL, fileName string) catalog.DownloadOutcome {
	var o catalog.Orchestrator
	return o.RequestDownload(fileURL, fileName)
}
