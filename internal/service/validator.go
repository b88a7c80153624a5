package service

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"jobportal-backend/internal/catalog"
)

type ValidationKind string

const (
	InvalidField        ValidationKind = "invalid_field"
	MissingDocument     ValidationKind = "missing_document"
	UnsupportedFileType ValidationKind = "unsupported_file_type"
	FileSizeExceeded    ValidationKind = "file_size_exceeded"
)

// ValidationError names one offending field or document type. Subject is the
// personal-field name or the catalog type name.
type ValidationError struct {
	Kind    ValidationKind `json:"kind"`
	Subject string         `json:"subject"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the complete ordered list for one submission. The
// validator never stops at the first problem; callers surface all entries in
// a single response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// DocumentUpload is one candidate file from the multipart form. Open defers
// reading the part until the coordinator actually uploads it.
type DocumentUpload struct {
	FileName string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// SubmissionInput is the typed submission payload. Documents are keyed by the
// catalog-derived form field key; untyped request data never crosses this
// boundary.
type SubmissionInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	Documents   map[string]*DocumentUpload
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateSubmission checks every personal field and every catalog entry and
// returns the full error list. It has no side effects; nothing is written
// while any error is present.
func validateSubmission(input *SubmissionInput, reqs []catalog.DocumentRequirement) ValidationErrors {
	var errs ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"full_name", input.FullName},
		{"email", input.Email},
		{"phone_number", input.PhoneNumber},
		{"address", input.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, ValidationError{
				Kind:    InvalidField,
				Subject: f.name,
				Message: fmt.Sprintf("%s is required", f.name),
			})
		}
	}
	if strings.TrimSpace(input.Email) != "" && !emailShape.MatchString(input.Email) {
		errs = append(errs, ValidationError{
			Kind:    InvalidField,
			Subject: "email",
			Message: "email must be a valid email address",
		})
	}

	for _, req := range reqs {
		upload, ok := input.Documents[req.FieldKey]
		if !ok || upload == nil || upload.Size == 0 {
			errs = append(errs, ValidationError{
				Kind:    MissingDocument,
				Subject: req.TypeName,
				Message: fmt.Sprintf("%s is required", req.TypeName),
			})
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.FileName), "."))
		if !req.Accepts(ext) {
			errs = append(errs, ValidationError{
				Kind:    UnsupportedFileType,
				Subject: req.TypeName,
				Message: fmt.Sprintf("%s must be one of: %s (got %q)", req.TypeName, strings.Join(req.AcceptedExtensions, ", "), ext),
			})
			continue
		}

		if upload.Size > req.MaxSizeBytes {
			errs = append(errs, ValidationError{
				Kind:    FileSizeExceeded,
				Subject: req.TypeName,
				Message: fmt.Sprintf("%s exceeds maximum file size (%d bytes > %d bytes)", req.TypeName, upload.Size, req.MaxSizeBytes),
			})
		}
	}

	return errs
}
