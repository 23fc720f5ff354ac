package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docindex.DocumentService = (*DocumentService)(nil)

// DocumentService implements docindex.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// ReplaceDocuments deletes every stored document and inserts docs in a
// single transaction. Nil documents are skipped; a document without a URL
// fails the whole replacement with EINVALID.
func (s *DocumentService) ReplaceDocuments(ctx context.Context, docs []*docindex.Document) (*docindex.Build, error) {
	for _, doc := range docs {
		if doc != nil && doc.URL == "" {
			return nil, docindex.Errorf(docindex.EINVALID, "document URL required")
		}
	}

	build := &docindex.Build{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, doc := range docs {
		if doc != nil {
			build.DocumentCount++
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return nil, fmt.Errorf("failed to delete previous documents: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM builds`); err != nil {
		return nil, fmt.Errorf("failed to delete previous builds: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, document_count, created_at)
		VALUES (?, ?, ?)
	`, build.ID, build.DocumentCount, build.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to insert build: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO documents (url, build_id, title, text, component, version, sections, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare document insert: %w", err)
	}
	defer stmt.Close()

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		sections, err := marshalSections(doc.Sections)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, doc.URL, build.ID, doc.Title, doc.Text,
			doc.Component, doc.Version, sections, hashContent(doc.Text)); err != nil {
			return nil, fmt.Errorf("failed to insert document %q: %w", doc.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return build, nil
}

// FindLatestBuild retrieves the build that produced the stored documents.
func (s *DocumentService) FindLatestBuild(ctx context.Context) (*docindex.Build, error) {
	var build docindex.Build
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, document_count, created_at
		FROM builds
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&build.ID, &build.DocumentCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "no build exported")
	}
	if err != nil {
		return nil, err
	}

	build.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// FindDocumentByURL retrieves a document by its resolved URL.
func (s *DocumentService) FindDocumentByURL(ctx context.Context, url string) (*docindex.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT url, title, text, component, version, sections
		FROM documents
		WHERE url = ?
	`, url)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, ordered by URL.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docindex.DocumentFilter) ([]*docindex.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT url, title, text, component, version, sections FROM documents WHERE 1=1")

	if filter.Component != nil {
		query.WriteString(" AND component = ?")
		args = append(args, *filter.Component)
	}
	if filter.Version != nil {
		query.WriteString(" AND version = ?")
		args = append(args, *filter.Version)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docindex.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*docindex.Document, error) {
	var doc docindex.Document
	var sections string

	if err := row.Scan(&doc.URL, &doc.Title, &doc.Text, &doc.Component, &doc.Version, &sections); err != nil {
		return nil, err
	}
	if sections != "" && sections != "[]" {
		if err := json.Unmarshal([]byte(sections), &doc.Sections); err != nil {
			return nil, fmt.Errorf("failed to parse sections of %q: %w", doc.URL, err)
		}
	}
	return &doc, nil
}

func marshalSections(sections []docindex.Section) (string, error) {
	if len(sections) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("failed to encode sections: %w", err)
	}
	return string(b), nil
}
