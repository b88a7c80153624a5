package postgres

import (
	"database/sql"

	"jobportal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.JobRepository
	repository.ApplicationRepository
	repository.DocumentRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		AdminRepository:       NewAdminRepository(db),
	}
}
