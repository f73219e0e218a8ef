package service

import (
	"context"

	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/repository"
)

// DashboardStats is the summary block shown on the back-office landing page.
type DashboardStats struct {
	Services            int `json:"services"`
	Projects            int `json:"projects"`
	OpenJobs            int `json:"openJobs"`
	PendingApplications int `json:"pendingApplications"`
}

type StatsService struct {
	serviceRepo repository.ServiceRepository
	projectRepo repository.ProjectRepository
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
}

func NewStatsService(
	serviceRepo repository.ServiceRepository,
	projectRepo repository.ProjectRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
) *StatsService {
	return &StatsService{
		serviceRepo: serviceRepo,
		projectRepo: projectRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
	}
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	services, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.appRepo.CountByStatus(ctx, model.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Services:            services,
		Projects:            projects,
		OpenJobs:            jobs,
		PendingApplications: pending,
	}, nil
}
