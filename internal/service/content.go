package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/repository"
	"github.com/kms-sarl/site-server-go/internal/util"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidSlug = errors.New("invalid slug")
)

// ContentService covers the publishable site content: services, projects,
// news articles, partners and team members. Public reads only see active or
// published rows; the back-office sees everything.
type ContentService struct {
	serviceRepo repository.ServiceRepository
	projectRepo repository.ProjectRepository
	newsRepo    repository.NewsRepository
	partnerRepo repository.PartnerRepository
	teamRepo    repository.TeamRepository
	now         func() time.Time
}

func NewContentService(
	serviceRepo repository.ServiceRepository,
	projectRepo repository.ProjectRepository,
	newsRepo repository.NewsRepository,
	partnerRepo repository.PartnerRepository,
	teamRepo repository.TeamRepository,
) *ContentService {
	return &ContentService{
		serviceRepo: serviceRepo,
		projectRepo: projectRepo,
		newsRepo:    newsRepo,
		partnerRepo: partnerRepo,
		teamRepo:    teamRepo,
		now:         time.Now,
	}
}

// resolveSlug derives a slug from title when none was given and validates the
// result either way.
func resolveSlug(slug, title string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = util.Slugify(title)
	}
	if !util.IsValidSlug(slug) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

// Services

func (s *ContentService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.serviceRepo.FindAll(ctx)
}

func (s *ContentService) ListActiveServices(ctx context.Context) ([]model.Service, error) {
	return s.serviceRepo.FindActive(ctx)
}

func (s *ContentService) GetService(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *ContentService) CreateService(ctx context.Context, params model.ServiceParams) (*model.Service, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug
	return s.serviceRepo.Create(ctx, params)
}

func (s *ContentService) UpdateService(ctx context.Context, id string, params model.ServiceParams) (*model.Service, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug

	svc, err := s.serviceRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.serviceRepo.Delete(ctx, id)
}

// Projects

func (s *ContentService) ListProjects(ctx context.Context, limit, offset int) ([]model.Project, error) {
	return s.projectRepo.FindAll(ctx, limit, offset)
}

func (s *ContentService) ListPublishedProjects(ctx context.Context) ([]model.Project, error) {
	return s.projectRepo.FindPublished(ctx)
}

func (s *ContentService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *ContentService) CreateProject(ctx context.Context, params model.ProjectParams) (*model.Project, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug
	if params.Status == "" {
		params.Status = model.ProjectStatusPlanned
	}
	return s.projectRepo.Create(ctx, params)
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, params model.ProjectParams) (*model.Project, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug

	project, err := s.projectRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// News

func (s *ContentService) ListNews(ctx context.Context, limit, offset int) ([]model.NewsArticle, error) {
	return s.newsRepo.FindAll(ctx, limit, offset)
}

func (s *ContentService) ListPublishedNews(ctx context.Context) ([]model.NewsArticle, error) {
	return s.newsRepo.FindPublished(ctx)
}

func (s *ContentService) GetNewsArticle(ctx context.Context, id string) (*model.NewsArticle, error) {
	article, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// CreateNewsArticle stamps published_at on first publication.
func (s *ContentService) CreateNewsArticle(ctx context.Context, params model.NewsArticleParams) (*model.NewsArticle, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug
	if params.IsPublished && params.PublishedAt == nil {
		now := s.now()
		params.PublishedAt = &now
	}
	return s.newsRepo.Create(ctx, params)
}

func (s *ContentService) UpdateNewsArticle(ctx context.Context, id string, params model.NewsArticleParams) (*model.NewsArticle, error) {
	slug, err := resolveSlug(params.Slug, params.Title)
	if err != nil {
		return nil, err
	}
	params.Slug = slug
	if params.IsPublished && params.PublishedAt == nil {
		now := s.now()
		params.PublishedAt = &now
	}

	article, err := s.newsRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *ContentService) DeleteNewsArticle(ctx context.Context, id string) error {
	return s.newsRepo.Delete(ctx, id)
}

// Partners

func (s *ContentService) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return s.partnerRepo.FindAll(ctx)
}

func (s *ContentService) ListActivePartners(ctx context.Context) ([]model.Partner, error) {
	return s.partnerRepo.FindActive(ctx)
}

func (s *ContentService) CreatePartner(ctx context.Context, params model.PartnerParams) (*model.Partner, error) {
	return s.partnerRepo.Create(ctx, params)
}

func (s *ContentService) UpdatePartner(ctx context.Context, id string, params model.PartnerParams) (*model.Partner, error) {
	partner, err := s.partnerRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrNotFound
	}
	return partner, nil
}

func (s *ContentService) DeletePartner(ctx context.Context, id string) error {
	return s.partnerRepo.Delete(ctx, id)
}

// Team

func (s *ContentService) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.teamRepo.FindAll(ctx)
}

func (s *ContentService) ListActiveTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.teamRepo.FindActive(ctx)
}

func (s *ContentService) CreateTeamMember(ctx context.Context, params model.TeamMemberParams) (*model.TeamMember, error) {
	return s.teamRepo.Create(ctx, params)
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, params model.TeamMemberParams) (*model.TeamMember, error) {
	member, err := s.teamRepo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	return member, nil
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	return s.teamRepo.Delete(ctx, id)
}
