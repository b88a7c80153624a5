package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"jobportal-backend/internal/catalog"
	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/storage"

	"github.com/google/uuid"
)

var (
	// ErrJobNotOpen rejects submissions against closed, archived, or
	// expired postings.
	ErrJobNotOpen = errors.New("job posting is not accepting applications")

	// ErrPartialSubmission is the single flattened failure reported when
	// any upload or metadata insert fails mid-saga. The specific cause is
	// logged, not exposed; the compensating rollback has already run, but
	// blob deletion is best-effort only.
	ErrPartialSubmission = errors.New("application could not be saved completely, please try again")
)

type submissionService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
	docRepo repository.DocumentRepository
	blobs   storage.BlobStorage
	catalog catalog.Catalog
	email   EmailService
}

func NewSubmissionService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	docRepo repository.DocumentRepository,
	blobs storage.BlobStorage,
	cat catalog.Catalog,
	email EmailService,
) SubmissionService {
	return &submissionService{
		jobRepo: jobRepo,
		appRepo: appRepo,
		docRepo: docRepo,
		blobs:   blobs,
		catalog: cat,
		email:   email,
	}
}

func (s *submissionService) Requirements(ctx context.Context, jobID int32) ([]catalog.DocumentRequirement, error) {
	return s.catalog.Requirements(ctx, jobID)
}

func (s *submissionService) Submit(ctx context.Context, jobID int32, input *SubmissionInput) (*domain.Application, error) {
	// Expired postings are demoted before the status check so a stale Open
	// row cannot accept a late submission.
	if err := s.jobRepo.CloseExpired(ctx, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to refresh posting statuses: %w", err)
	}
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.AcceptsApplications(time.Now()) {
		return nil, ErrJobNotOpen
	}

	reqs, err := s.catalog.Requirements(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("cannot accept submissions: %w", err)
	}

	if errs := validateSubmission(input, reqs); len(errs) > 0 {
		return nil, errs
	}

	app := &domain.Application{
		JobID:       jobID,
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Status:      domain.ApplicationStatusUnread,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if err := s.storeDocuments(ctx, app.ID, input, reqs); err != nil {
		logger.Error("Submission saga failed, rolled back", "application_id", app.ID, "job_id", jobID, "error", err)
		return nil, ErrPartialSubmission
	}

	logger.Info("Application submitted", "application_id", app.ID, "job_id", jobID, "documents", len(reqs))

	if s.email != nil {
		if err := s.email.SendApplicationReceived(ctx, app.Email, app.FullName, job.PositionTitle); err != nil {
			logger.Warn("Failed to send confirmation email", "application_id", app.ID, "error", err)
		}
	}

	return app, nil
}

// storeDocuments fans out one upload+insert per required document and waits
// for all of them. On any failure it deletes the application row (document
// rows cascade) and issues best-effort deletes for blobs already uploaded.
func (s *submissionService) storeDocuments(ctx context.Context, appID int32, input *SubmissionInput, reqs []catalog.DocumentRequirement) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		uploaded []string
		firstErr error
	)

	for _, req := range reqs {
		upload := input.Documents[req.FieldKey]

		wg.Add(1)
		go func(req catalog.DocumentRequirement, upload *DocumentUpload) {
			defer wg.Done()

			key, err := s.storeOne(ctx, appID, req, upload)

			mu.Lock()
			defer mu.Unlock()
			if key != "" {
				uploaded = append(uploaded, key)
			}
			if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", req.TypeName, err)
			}
		}(req, upload)
	}
	wg.Wait()

	if firstErr == nil {
		return nil
	}

	// Compensating rollback. The row delete cascades to document rows; blob
	// deletes are best-effort and orphans are reclaimed by the sweep job.
	if err := s.appRepo.Delete(ctx, appID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error("Rollback failed to delete application row", "application_id", appID, "error", err)
	}
	for _, key := range uploaded {
		if err := s.blobs.Delete(ctx, key); err != nil {
			logger.Warn("Rollback failed to delete blob", "key", key, "error", err)
		}
	}
	return firstErr
}

// storeOne uploads a single document and inserts its metadata row. It returns
// the storage key as soon as the blob exists so the caller can compensate
// even when the metadata insert is what failed.
func (s *submissionService) storeOne(ctx context.Context, appID int32, req catalog.DocumentRequirement, upload *DocumentUpload) (string, error) {
	rc, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer rc.Close()

	key := documentStorageKey(appID, req.TypeName, upload.FileName)
	if err := s.blobs.Save(ctx, key, rc); err != nil {
		return "", fmt.Errorf("failed to store blob: %w", err)
	}

	doc := &domain.ApplicationDocument{
		ApplicationID: appID,
		DocumentType:  req.TypeName,
		StorageKey:    key,
		FileName:      upload.FileName,
		FileSize:      upload.Size,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return key, fmt.Errorf("failed to insert document metadata: %w", err)
	}
	return key, nil
}

var typeSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// documentStorageKey builds `{application_id}/{token}_{type}.{ext}`. The uuid
// token keeps retried uploads for the same type from colliding.
func documentStorageKey(appID int32, typeName, fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	sanitized := typeSanitizer.ReplaceAllString(typeName, "")
	return fmt.Sprintf("%d/%s_%s.%s", appID, uuid.New().String(), sanitized, ext)
}
