package domain

import "time"

// ApplicationDocument is the metadata row for one stored applicant file.
// StorageKey follows the `{application_id}/{token}_{type}.{ext}` convention;
// the blob itself lives in the configured blob store.
type ApplicationDocument struct {
	ID            int32     `json:"id"`
	ApplicationID int32     `json:"application_id"`
	DocumentType  string    `json:"document_type"`
	StorageKey    string    `json:"storage_key"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
