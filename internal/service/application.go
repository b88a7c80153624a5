package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"jobportal-backend/internal/bundle"
	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/storage"
)

var (
	ErrInvalidStatus     = errors.New("unknown application status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

type applicationService struct {
	appRepo repository.ApplicationRepository
	docRepo repository.DocumentRepository
	blobs   storage.BlobStorage
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	docRepo repository.DocumentRepository,
	blobs storage.BlobStorage,
) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		docRepo: docRepo,
		blobs:   blobs,
	}
}

func (s *applicationService) Get(ctx context.Context, id int32) (*domain.Application, []domain.ApplicationDocument, error) {
	// The view-once transition is a conditional single-row update, so
	// concurrent opens flip the row at most once.
	flipped, err := s.appRepo.MarkViewedIfUnread(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if flipped {
		logger.Debug("Application marked viewed", "application_id", id)
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	docs, err := s.docRepo.ListByApplication(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return app, docs, nil
}

func (s *applicationService) List(ctx context.Context, filter repository.ApplicationFilter) ([]domain.ApplicationSummary, int32, error) {
	if filter.Status != "" && !domain.ValidApplicationStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.appRepo.List(ctx, filter)
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int32, target domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(target) {
		return nil, ErrInvalidStatus
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Idempotent: re-setting the current status succeeds without a write.
	if app.Status == target {
		return app, nil
	}

	if !domain.CanTransition(app.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, target)
	}

	// Unconditional last-write-wins update; concurrent admins race and the
	// later write wins silently.
	if err := s.appRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	app.Status = target
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, id int32) error {
	docs, err := s.docRepo.ListByApplication(ctx, id)
	if err != nil {
		return err
	}

	// Row first: once it is gone the purge is committed, blob cleanup is
	// best-effort and the sweep job reclaims anything missed here.
	if err := s.appRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, doc := range docs {
		if err := s.blobs.Delete(ctx, doc.StorageKey); err != nil {
			logger.Warn("Failed to delete blob during purge", "key", doc.StorageKey, "error", err)
		}
	}
	logger.Info("Application purged", "application_id", id, "documents", len(docs))
	return nil
}

func (s *applicationService) ExportArchive(ctx context.Context, id int32, w io.Writer) (string, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	docs, err := s.docRepo.ListByApplication(ctx, id)
	if err != nil {
		return "", err
	}
	if err := bundle.Build(ctx, w, s.blobs, docs); err != nil {
		return "", fmt.Errorf("failed to build archive: %w", err)
	}
	return app.FullName, nil
}

func (s *applicationService) OpenDocument(ctx context.Context, documentID int32) (*domain.ApplicationDocument, io.ReadCloser, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}
	return doc, rc, nil
}
