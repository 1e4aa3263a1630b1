package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"docvault/internal/catalog"
	"docvault/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.CatalogRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.CatalogRepository = (*DocumentPostgres)(nil)

// Create inserts the document row and its tags in one transaction.
func (r *DocumentPostgres) Create(ctx context.Context, doc *repository.StoredDocument) (err error) {
	const qDoc = `
		INSERT INTO documents (id, file_name, content_type, storage_path, size, major_head, minor_head,
		                       document_date, remarks, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	const qTag = `INSERT INTO document_tags (document_id, position, tag_name) VALUES ($1, $2, $3)`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, qDoc,
		doc.ID,
		doc.FileName,
		doc.ContentType,
		doc.StoragePath,
		doc.Size,
		doc.MajorHead,
		doc.MinorHead,
		doc.DocumentDate,
		doc.Remarks,
		doc.UploadedBy,
		doc.CreatedAt,
	); err != nil {
		return err
	}
	for i, tag := range doc.Tags {
		if _, err = tx.ExecContext(ctx, qTag, doc.ID, i, tag); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Search filters documents by the query's fields; an empty field matches everything.
// Documents match the tag filter when they carry at least one of the requested tags.
func (r *DocumentPostgres) Search(ctx context.Context, q catalog.SerializedQuery) ([]repository.StoredDocument, error) {
	const qSearch = `
		SELECT d.id, d.file_name, d.content_type, d.storage_path, d.size, d.major_head, d.minor_head,
		       d.document_date, d.remarks, d.uploaded_by, d.created_at,
		       COALESCE((SELECT json_agg(t.tag_name ORDER BY t.position)
		                 FROM document_tags t WHERE t.document_id = d.id), '[]')::text
		FROM documents d
		WHERE ($1 = '' OR d.major_head = $1)
		  AND ($2 = '' OR d.minor_head ILIKE '%' || $2 || '%')
		  AND (NULLIF($3, '') IS NULL OR d.document_date >= NULLIF($3, '')::date)
		  AND (NULLIF($4, '') IS NULL OR d.document_date <= NULLIF($4, '')::date)
		  AND ($5 = '' OR d.uploaded_by = $5)
		  AND ($6::jsonb = '[]'::jsonb OR EXISTS (
		        SELECT 1 FROM document_tags f
		        WHERE f.document_id = d.id
		          AND f.tag_name IN (SELECT jsonb_array_elements_text($6::jsonb))))
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $7 OFFSET $8
	`
	tags, err := json.Marshal(q.TagNames())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, qSearch,
		q.MajorHead,
		q.MinorHead,
		q.FromDate,
		q.ToDate,
		q.UploadedBy,
		string(tags),
		q.Length,
		q.Start,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]repository.StoredDocument, 0)
	for rows.Next() {
		var (
			d        repository.StoredDocument
			tagsJSON string
		)
		if err := rows.Scan(
			&d.ID,
			&d.FileName,
			&d.ContentType,
			&d.StoragePath,
			&d.Size,
			&d.MajorHead,
			&d.MinorHead,
			&d.DocumentDate,
			&d.Remarks,
			&d.UploadedBy,
			&d.CreatedAt,
			&tagsJSON,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tagsJSON), &d.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %s: %w", d.ID, err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Tags returns distinct tag names ordered by how many documents use them.
func (r *DocumentPostgres) Tags(ctx context.Context, term string, limit int) ([]string, error) {
	const q = `
		SELECT tag_name
		FROM document_tags
		WHERE ($1 = '' OR tag_name ILIKE '%' || $1 || '%')
		GROUP BY tag_name
		ORDER BY COUNT(*) DESC, tag_name
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
