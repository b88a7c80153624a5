// Package bundle assembles an applicant's stored documents into a single
// downloadable zip archive.
package bundle

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/storage"
)

// Build writes a zip archive of the given documents to w. Entry names are
// prefixed with the document type to avoid collisions. A document whose blob
// is missing is skipped; it never fails the export. Zero documents produce a
// valid empty archive.
func Build(ctx context.Context, w io.Writer, store storage.BlobStorage, docs []domain.ApplicationDocument) error {
	zw := zip.NewWriter(w)

	seen := make(map[string]int)
	for _, doc := range docs {
		rc, err := store.Open(ctx, doc.StorageKey)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotExist) {
				logger.Warn("Skipping document with missing blob", "document_id", doc.ID, "key", doc.StorageKey)
				continue
			}
			zw.Close()
			return fmt.Errorf("failed to open blob %s: %w", doc.StorageKey, err)
		}

		name := entryName(seen, doc)
		entry, err := zw.Create(name)
		if err != nil {
			rc.Close()
			zw.Close()
			return fmt.Errorf("failed to create archive entry %s: %w", name, err)
		}
		if _, err := io.Copy(entry, rc); err != nil {
			rc.Close()
			zw.Close()
			return fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
		rc.Close()
	}

	return zw.Close()
}

// entryName yields `{type}_{original name}`, suffixed with a counter when the
// same name would repeat within one archive.
func entryName(seen map[string]int, doc domain.ApplicationDocument) string {
	name := fmt.Sprintf("%s_%s", doc.DocumentType, doc.FileName)
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%d_%s", n+1, name)
}
