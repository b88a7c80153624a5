package service

import (
	"context"
	"io"

	"jobportal-backend/internal/catalog"
	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

type SubmissionService interface {
	// Requirements exposes the catalog for rendering the application form.
	Requirements(ctx context.Context, jobID int32) ([]catalog.DocumentRequirement, error)

	// Submit validates the payload as a unit and, if clean, runs the
	// two-store persistence saga. Validation failures come back as
	// ValidationErrors; a mid-saga storage failure comes back as
	// ErrPartialSubmission after compensating rollback.
	Submit(ctx context.Context, jobID int32, input *SubmissionInput) (*domain.Application, error)
}

type ApplicationService interface {
	// Get returns the application and its documents, firing the one-time
	// Unread->Viewed transition on first open.
	Get(ctx context.Context, id int32) (*domain.Application, []domain.ApplicationDocument, error)

	List(ctx context.Context, filter repository.ApplicationFilter) ([]domain.ApplicationSummary, int32, error)

	// UpdateStatus applies an administrator-chosen transition. Setting the
	// current status again is a successful no-op.
	UpdateStatus(ctx context.Context, id int32, target domain.ApplicationStatus) (*domain.Application, error)

	// Delete purges the application, its document rows, and (best-effort)
	// their blobs. Irreversible.
	Delete(ctx context.Context, id int32) error

	// ExportArchive streams a zip of the application's documents to w and
	// returns the applicant name for the download filename. Missing blobs
	// are skipped, not errors.
	ExportArchive(ctx context.Context, id int32, w io.Writer) (string, error)

	// OpenDocument returns one stored document's metadata and blob reader.
	OpenDocument(ctx context.Context, documentID int32) (*domain.ApplicationDocument, io.ReadCloser, error)
}

type JobService interface {
	ListOpen(ctx context.Context, page, pageSize int32) ([]domain.Job, int32, error)
	Get(ctx context.Context, id int32) (*domain.Job, error)

	// Admin surface
	ListAll(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Archive(ctx context.Context, id int32) error
	Restore(ctx context.Context, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
}

type DashboardStats struct {
	TotalJobs             int32 `json:"total_jobs"`
	OpenJobs              int32 `json:"open_jobs"`
	TotalApplications     int32 `json:"total_applications"`
	UnreadApplications    int32 `json:"unread_applications"`
	ApplicationsThisWeek  int32 `json:"applications_this_week"`
	ApplicationsThisMonth int32 `json:"applications_this_month"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type EmailService interface {
	// SendApplicationReceived confirms a successful submission to the
	// applicant. Callers treat failures as log-only.
	SendApplicationReceived(ctx context.Context, email, name, positionTitle string) error
}
