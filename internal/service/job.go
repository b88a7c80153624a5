package service

import (
	"context"
	"errors"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

var ErrJobNotArchived = errors.New("job posting is not archived")

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListOpen(ctx context.Context, page, pageSize int32) ([]domain.Job, int32, error) {
	if err := s.jobRepo.CloseExpired(ctx, time.Now()); err != nil {
		return nil, 0, err
	}
	return s.jobRepo.List(ctx, domain.JobStatusOpen, page, pageSize)
}

func (s *jobService) Get(ctx context.Context, id int32) (*domain.Job, error) {
	if err := s.jobRepo.CloseExpired(ctx, time.Now()); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListAll(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error) {
	return s.jobRepo.List(ctx, status, page, pageSize)
}

func (s *jobService) Create(ctx context.Context, job *domain.Job) error {
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	return s.jobRepo.Create(ctx, job)
}

func (s *jobService) Update(ctx context.Context, job *domain.Job) error {
	return s.jobRepo.Update(ctx, job)
}

func (s *jobService) Archive(ctx context.Context, id int32) error {
	return s.jobRepo.UpdateStatus(ctx, id, domain.JobStatusArchived)
}

// Restore brings an archived posting back to Open, the fixed restore target
// for jobs. Read-time expiry demotes it straight to Closed when the deadline
// has already passed.
func (s *jobService) Restore(ctx context.Context, id int32) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job.Status != domain.JobStatusArchived {
		return ErrJobNotArchived
	}
	return s.jobRepo.UpdateStatus(ctx, id, domain.JobStatusOpen)
}
