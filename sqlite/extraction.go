package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ clipper.ExtractionLogService = (*ExtractionLogService)(nil)

// ExtractionLogService implements clipper.ExtractionLogService using SQLite.
type ExtractionLogService struct {
	db *DB

	// Max is the number of entries kept. Defaults to
	// clipper.MaxExtractionLogEntries.
	Max int
}

// NewExtractionLogService creates a new ExtractionLogService.
func NewExtractionLogService(db *DB) *ExtractionLogService {
	return &ExtractionLogService{db: db, Max: clipper.MaxExtractionLogEntries}
}

// RecordExtraction appends an entry and discards all but the newest Max entries.
func (s *ExtractionLogService) RecordExtraction(ctx context.Context, entry *clipper.ExtractionLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	if entry.ExtractedAt.IsZero() {
		entry.ExtractedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO extractions (id, url, title, word_count, has_images, has_links, method, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.URL, entry.Title, entry.WordCount, entry.HasImages, entry.HasLinks,
		string(entry.Method), entry.ContentHash, entry.ExtractedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	max := s.Max
	if max <= 0 {
		max = clipper.MaxExtractionLogEntries
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM extractions
		WHERE seq NOT IN (SELECT seq FROM extractions ORDER BY seq DESC LIMIT ?)
	`, max); err != nil {
		return err
	}

	return tx.Commit()
}

// FindExtractions retrieves entries matching the filter, newest first.
func (s *ExtractionLogService) FindExtractions(ctx context.Context, filter clipper.ExtractionLogFilter) ([]*clipper.ExtractionLogEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, title, word_count, has_images, has_links, method, content_hash, extracted_at
		FROM extractions WHERE 1=1`)

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY seq DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*clipper.ExtractionLogEntry
	for rows.Next() {
		var entry clipper.ExtractionLogEntry
		var method, extractedAt string

		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.WordCount, &entry.HasImages,
			&entry.HasLinks, &method, &entry.ContentHash, &extractedAt); err != nil {
			return nil, err
		}
		entry.Method = clipper.Method(method)

		entry.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
