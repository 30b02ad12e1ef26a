// Package exports renders stored survey data as wide CSV and archives
// the files to blob storage.
package exports

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/assessor/pkg/formatting"
	"github.com/JaimeStill/assessor/pkg/storage"
)

// ArchivePrefix is the blob key prefix every archived export lives under.
const ArchivePrefix = "exports/"

const contentType = "text/csv"

// Archive describes an export written to blob storage.
type Archive struct {
	Key       string    `json:"key"`
	Dataset   string    `json:"dataset"`
	Rows      int       `json:"rows"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// System defines the public contract for CSV exports.
type System interface {
	Handler() *Handler

	// Write streams the dataset as CSV to w and returns the number of data rows.
	Write(ctx context.Context, dataset string, w io.Writer) (int, error)

	// Archive writes the dataset to blob storage at exports/<dataset>/<timestamp>.csv.
	Archive(ctx context.Context, dataset string) (*Archive, error)

	ListArchives(ctx context.Context, dataset, marker string, maxResults int32) (*storage.BlobList, error)
	OpenArchive(ctx context.Context, key string) (*storage.BlobResult, error)
	DeleteArchive(ctx context.Context, key string) error
}

type exporter struct {
	db          *sql.DB
	store       storage.System
	logger      *slog.Logger
	maxListSize int32
}

// New creates an export system. store may be nil, in which case archive
// operations return ErrStorageDisabled.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	maxListSize int32,
) System {
	return &exporter{
		db:          db,
		store:       store,
		logger:      logger.With("system", "exports"),
		maxListSize: maxListSize,
	}
}

func (e *exporter) Handler() *Handler {
	return NewHandler(e, e.logger, e.maxListSize)
}

func (e *exporter) Write(ctx context.Context, dataset string, w io.Writer) (int, error) {
	d, err := Lookup(dataset)
	if err != nil {
		return 0, err
	}

	rows, err := e.db.QueryContext(ctx, d.query())
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", d.Name, err)
	}
	defer rows.Close()

	cw := csv.NewWriter(w)
	if err := cw.Write(d.Header); err != nil {
		return 0, err
	}

	values := make([]sql.NullString, len(d.Header))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(values))

	n := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return n, fmt.Errorf("scan %s row: %w", d.Name, err)
		}
		for i, v := range values {
			record[i] = v.String
		}
		if err := cw.Write(record); err != nil {
			return n, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("iterate %s: %w", d.Name, err)
	}

	cw.Flush()
	return n, cw.Error()
}

func (e *exporter) Archive(ctx context.Context, dataset string) (*Archive, error) {
	if e.store == nil {
		return nil, ErrStorageDisabled
	}

	var buf bytes.Buffer
	n, err := e.Write(ctx, dataset, &buf)
	if err != nil {
		return nil, err
	}

	size := int64(buf.Len())
	now := time.Now().UTC()
	key := fmt.Sprintf("%s%s/%s.csv", ArchivePrefix, dataset, now.Format("20060102T150405Z"))

	if err := e.store.Upload(ctx, key, &buf, contentType); err != nil {
		return nil, err
	}

	e.logger.Info("export archived", "dataset", dataset, "key", key, "rows", n, "size", formatting.FormatBytes(size, 1))

	return &Archive{
		Key:       key,
		Dataset:   dataset,
		Rows:      n,
		Size:      size,
		CreatedAt: now,
	}, nil
}

func (e *exporter) ListArchives(ctx context.Context, dataset, marker string, maxResults int32) (*storage.BlobList, error) {
	if e.store == nil {
		return nil, ErrStorageDisabled
	}

	prefix := ArchivePrefix
	if dataset != "" {
		if _, err := Lookup(dataset); err != nil {
			return nil, err
		}
		prefix += dataset + "/"
	}

	return e.store.List(ctx, prefix, marker, maxResults)
}

func (e *exporter) OpenArchive(ctx context.Context, key string) (*storage.BlobResult, error) {
	if e.store == nil {
		return nil, ErrStorageDisabled
	}
	if !strings.HasPrefix(key, ArchivePrefix) {
		return nil, ErrNotArchive
	}
	return e.store.Download(ctx, key)
}

func (e *exporter) DeleteArchive(ctx context.Context, key string) error {
	if e.store == nil {
		return ErrStorageDisabled
	}
	if !strings.HasPrefix(key, ArchivePrefix) {
		return ErrNotArchive
	}
	if err := e.store.Delete(ctx, key); err != nil {
		return err
	}
	e.logger.Info("export archive deleted", "key", key)
	return nil
}
