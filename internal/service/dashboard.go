package service

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

type dashboardService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
}

func NewDashboardService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) DashboardService {
	return &dashboardService{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalJobs, err = s.jobRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.OpenJobs, err = s.jobRepo.CountByStatus(ctx, domain.JobStatusOpen); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.appRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.UnreadApplications, err = s.appRepo.CountByStatus(ctx, domain.ApplicationStatusUnread); err != nil {
		return nil, err
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	if stats.ApplicationsThisWeek, err = s.appRepo.CountSubmittedSince(ctx, weekAgo); err != nil {
		return nil, err
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.ApplicationsThisMonth, err = s.appRepo.CountSubmittedSince(ctx, startOfMonth); err != nil {
		return nil, err
	}

	return stats, nil
}
