package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/repository"
	"github.com/kms-sarl/site-server-go/internal/storage"
	"github.com/kms-sarl/site-server-go/internal/util"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrMissingField  = errors.New("missing required field")
	ErrJobNotOpen    = errors.New("job posting is not open")
	ErrInvalidStatus = errors.New("invalid application status")
)

// SubmitApplicationParams is the public application form plus an optional
// resume file.
type SubmitApplicationParams struct {
	JobID       string
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	ResumeName  string
	Resume      io.Reader
}

// CareersService covers job postings and the public application flow.
type CareersService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
	uploads storage.Store
}

func NewCareersService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	uploads storage.Store,
) *CareersService {
	return &CareersService{
		jobRepo: jobRepo,
		appRepo: appRepo,
		uploads: uploads,
	}
}

// Job postings

func (s *CareersService) ListJobs(ctx context.Context) ([]model.JobPosting, error) {
	return s.jobRepo.FindAll(ctx)
}

func (s *CareersService) ListOpenJobs(ctx context.Context) ([]model.JobPosting, error) {
	return s.jobRepo.FindActive(ctx)
}

func (s *CareersService) GetJob(ctx context.Context, id string) (*model.JobPosting, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *CareersService) CreateJob(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug
	return s.jobRepo.Create(ctx, params)
}

func (s *CareersService) UpdateJob(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug

	job, err := s.jobRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *CareersService) DeleteJob(ctx context.Context, id string) error {
	return s.jobRepo.Delete(ctx, id)
}

// Applications

// SubmitApplication records an application from the public site. The job
// reference is optional; a spontaneous application carries no job id. When a
// job id is present it must name an active posting. The job title is copied
// onto the application so the record survives deletion of the posting.
func (s *CareersService) SubmitApplication(ctx context.Context, params SubmitApplicationParams) (*model.JobApplication, error) {
	fullName := strings.TrimSpace(params.FullName)
	email := strings.TrimSpace(params.Email)
	if fullName == "" || email == "" {
		return nil, ErrMissingField
	}
	if !util.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	create := model.CreateApplicationParams{
		FullName: fullName,
		Email:    email,
	}
	if phone := strings.TrimSpace(params.Phone); phone != "" {
		create.Phone = &phone
	}
	if letter := strings.TrimSpace(params.CoverLetter); letter != "" {
		create.CoverLetter = &letter
	}

	if params.JobID != "" {
		if !util.IsValidUUID(params.JobID) {
			return nil, ErrJobNotOpen
		}
		job, err := s.jobRepo.FindByID(ctx, params.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil || !job.IsActive {
			return nil, ErrJobNotOpen
		}
		create.JobID = &job.ID
		create.JobTitle = &job.Title
	}

	if params.Resume != nil {
		url, err := s.uploads.Save(params.ResumeName, params.Resume)
		if err != nil {
			return nil, err
		}
		create.ResumeURL = &url
	}

	app, err := s.appRepo.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	log.Info().Str("applicationId", app.ID).Msg("job application received")

	return app, nil
}

func (s *CareersService) ListApplications(ctx context.Context, limit, offset int) ([]model.JobApplication, error) {
	return s.appRepo.FindAll(ctx, limit, offset)
}

func (s *CareersService) GetApplication(ctx context.Context, id string) (*model.JobApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

func (s *CareersService) UpdateApplicationStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error) {
	switch status {
	case model.ApplicationStatusPending, model.ApplicationStatusReviewed,
		model.ApplicationStatusRejected, model.ApplicationStatusHired:
	default:
		return nil, ErrInvalidStatus
	}

	app, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

func (s *CareersService) DeleteApplication(ctx context.Context, id string) error {
	return s.appRepo.Delete(ctx, id)
}
