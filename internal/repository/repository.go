package repository

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int32) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	UpdateStatus(ctx context.Context, id int32, status domain.JobStatus) error
	List(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error)

	// CloseExpired demotes Open postings whose deadline has passed.
	// Invoked at read time, not from a background job.
	CloseExpired(ctx context.Context, now time.Time) error

	CountAll(ctx context.Context) (int32, error)
	CountByStatus(ctx context.Context, status domain.JobStatus) (int32, error)
}

// ApplicationFilter narrows the admin listing. Zero values mean "no filter".
type ApplicationFilter struct {
	Status   domain.ApplicationStatus
	JobID    int32
	Search   string // matches name, email, position title
	Page     int32
	PageSize int32
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	Exists(ctx context.Context, id int32) (bool, error)

	// UpdateStatus is an unconditional last-write-wins single-row update.
	UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error

	// MarkViewedIfUnread fires the one-time Unread->Viewed transition.
	// Returns true only for the write that actually flipped the row.
	MarkViewedIfUnread(ctx context.Context, id int32) (bool, error)

	// Delete hard-deletes the row; document rows go with it via FK cascade.
	// Zero rows affected maps to domain.ErrNotFound.
	Delete(ctx context.Context, id int32) error

	List(ctx context.Context, filter ApplicationFilter) ([]domain.ApplicationSummary, int32, error)

	CountAll(ctx context.Context) (int32, error)
	CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int32, error)
	CountSubmittedSince(ctx context.Context, since time.Time) (int32, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.ApplicationDocument) error
	GetByID(ctx context.Context, id int32) (*domain.ApplicationDocument, error)
	ListByApplication(ctx context.Context, applicationID int32) ([]domain.ApplicationDocument, error)
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}
