// Package catalog declares, per job posting, the required document types an
// applicant must submit and the acceptance rules for each.
package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// ErrUnavailable is returned when no requirement set can be resolved for a
// posting. A submission cannot proceed without a catalog.
var ErrUnavailable = errors.New("document requirement catalog unavailable")

// DocumentRequirement is one catalog entry. FieldKey is the multipart form
// field the applicant's file arrives under, derived from TypeName.
type DocumentRequirement struct {
	TypeName           string
	AcceptedExtensions []string
	MaxSizeBytes       int64
	FieldKey           string
}

// Accepts reports whether the lowercased extension (without dot) is allowed.
func (r DocumentRequirement) Accepts(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range r.AcceptedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Catalog resolves the ordered requirement list for a posting.
type Catalog interface {
	Requirements(ctx context.Context, jobID int32) ([]DocumentRequirement, error)
}

var fieldKeyRuns = regexp.MustCompile(`[^a-z0-9]+`)

// FieldKey derives the form field name for a document type: lowercase, with
// every run of non-alphanumeric characters collapsed to a single underscore.
// "CS Form No. 9 Annex P" becomes "cs_form_no_9_annex_p".
func FieldKey(typeName string) string {
	key := fieldKeyRuns.ReplaceAllString(strings.ToLower(typeName), "_")
	return strings.Trim(key, "_")
}

// StaticCatalog serves the same ordered requirement list for every posting.
// Requirement sets come from configuration; per-posting overrides would slot
// in behind the same interface.
type StaticCatalog struct {
	requirements []DocumentRequirement
}

// Entry is the configuration shape for one requirement.
type Entry struct {
	TypeName     string
	Extensions   []string
	MaxSizeBytes int64
}

// NewStaticCatalog builds a catalog from configured entries. Entries keep
// their configured order; the derived field keys must be unique.
func NewStaticCatalog(entries []Entry) (*StaticCatalog, error) {
	if len(entries) == 0 {
		return nil, ErrUnavailable
	}
	seen := make(map[string]bool, len(entries))
	reqs := make([]DocumentRequirement, 0, len(entries))
	for _, e := range entries {
		key := FieldKey(e.TypeName)
		if key == "" {
			return nil, errors.New("catalog entry has empty type name")
		}
		if seen[key] {
			return nil, errors.New("catalog entries derive duplicate field key: " + key)
		}
		seen[key] = true

		exts := make([]string, 0, len(e.Extensions))
		for _, ext := range e.Extensions {
			exts = append(exts, strings.ToLower(strings.TrimPrefix(ext, ".")))
		}
		reqs = append(reqs, DocumentRequirement{
			TypeName:           e.TypeName,
			AcceptedExtensions: exts,
			MaxSizeBytes:       e.MaxSizeBytes,
			FieldKey:           key,
		})
	}
	return &StaticCatalog{requirements: reqs}, nil
}

func (c *StaticCatalog) Requirements(ctx context.Context, jobID int32) ([]DocumentRequirement, error) {
	if len(c.requirements) == 0 {
		return nil, ErrUnavailable
	}
	out := make([]DocumentRequirement, len(c.requirements))
	copy(out, c.requirements)
	return out, nil
}
