package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *domain.ApplicationDocument) error {
	query := `INSERT INTO application_documents (application_id, document_type, storage_key, file_name, file_size, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	d.UploadedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, d.ApplicationID, d.DocumentType, d.StorageKey, d.FileName, d.FileSize, d.UploadedAt).Scan(&d.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.ApplicationDocument, error) {
	d := &domain.ApplicationDocument{}
	query := `SELECT id, application_id, document_type, storage_key, file_name, file_size, uploaded_at
	          FROM application_documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.ApplicationID, &d.DocumentType, &d.StorageKey, &d.FileName, &d.FileSize, &d.UploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) ListByApplication(ctx context.Context, applicationID int32) ([]domain.ApplicationDocument, error) {
	query := `SELECT id, application_id, document_type, storage_key, file_name, file_size, uploaded_at
	          FROM application_documents WHERE application_id = $1 ORDER BY document_type`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.ApplicationDocument
	for rows.Next() {
		var d domain.ApplicationDocument
		if err := rows.Scan(&d.ID, &d.ApplicationID, &d.DocumentType, &d.StorageKey, &d.FileName, &d.FileSize, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
