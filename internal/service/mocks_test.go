package service

import (
	"context"
	"io"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type mockAdminUserRepo struct {
	findByIDFunc      func(ctx context.Context, id string) (*model.AdminUser, error)
	findByEmailFunc   func(ctx context.Context, email string) (*model.AdminUser, error)
	createFunc        func(ctx context.Context, params model.CreateAdminUserParams) (*model.AdminUser, error)
	updateProfileFunc func(ctx context.Context, id string, params model.UpdateAdminProfileParams) (*model.AdminUser, error)
	countFunc         func(ctx context.Context) (int, error)
}

func (m *mockAdminUserRepo) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAdminUserRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAdminUserRepo) Create(ctx context.Context, params model.CreateAdminUserParams) (*model.AdminUser, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockAdminUserRepo) UpdateProfile(ctx context.Context, id string, params model.UpdateAdminProfileParams) (*model.AdminUser, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockAdminUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	findByTokenHashFunc   func(ctx context.Context, tokenHash string) (*model.Session, error)
	createFunc            func(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	deleteFunc            func(ctx context.Context, id string) error
	deleteByTokenHashFunc func(ctx context.Context, tokenHash string) error
	deleteExpiredFunc     func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	if m.findByTokenHashFunc != nil {
		return m.findByTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockSessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Session{
		ID:        "session-1",
		UserID:    params.UserID,
		TokenHash: params.TokenHash,
		ExpiresAt: params.ExpiresAt,
	}, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if m.deleteByTokenHashFunc != nil {
		return m.deleteByTokenHashFunc(ctx, tokenHash)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return 0, nil
}

type mockServiceRepo struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.Service, error)
	findAllFunc    func(ctx context.Context) ([]model.Service, error)
	findActiveFunc func(ctx context.Context) ([]model.Service, error)
	createFunc     func(ctx context.Context, params model.ServiceParams) (*model.Service, error)
	updateFunc     func(ctx context.Context, id string, params model.ServiceParams) (*model.Service, error)
	deleteFunc     func(ctx context.Context, id string) error
	countFunc      func(ctx context.Context) (int, error)
}

func (m *mockServiceRepo) FindByID(ctx context.Context, id string) (*model.Service, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceRepo) FindAll(ctx context.Context) ([]model.Service, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockServiceRepo) FindActive(ctx context.Context) ([]model.Service, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockServiceRepo) Create(ctx context.Context, params model.ServiceParams) (*model.Service, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Service{ID: "service-1", Title: params.Title, Slug: params.Slug}, nil
}

func (m *mockServiceRepo) Update(ctx context.Context, id string, params model.ServiceParams) (*model.Service, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockServiceRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockProjectRepo struct {
	findByIDFunc      func(ctx context.Context, id string) (*model.Project, error)
	findAllFunc       func(ctx context.Context, limit, offset int) ([]model.Project, error)
	findPublishedFunc func(ctx context.Context) ([]model.Project, error)
	createFunc        func(ctx context.Context, params model.ProjectParams) (*model.Project, error)
	updateFunc        func(ctx context.Context, id string, params model.ProjectParams) (*model.Project, error)
	deleteFunc        func(ctx context.Context, id string) error
	countFunc         func(ctx context.Context) (int, error)
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindAll(ctx context.Context, limit, offset int) ([]model.Project, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindPublished(ctx context.Context) ([]model.Project, error) {
	if m.findPublishedFunc != nil {
		return m.findPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) Create(ctx context.Context, params model.ProjectParams) (*model.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Project{ID: "project-1", Title: params.Title, Slug: params.Slug, Status: params.Status}, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, id string, params model.ProjectParams) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockNewsRepo struct {
	findByIDFunc      func(ctx context.Context, id string) (*model.NewsArticle, error)
	findAllFunc       func(ctx context.Context, limit, offset int) ([]model.NewsArticle, error)
	findPublishedFunc func(ctx context.Context) ([]model.NewsArticle, error)
	createFunc        func(ctx context.Context, params model.NewsArticleParams) (*model.NewsArticle, error)
	updateFunc        func(ctx context.Context, id string, params model.NewsArticleParams) (*model.NewsArticle, error)
	deleteFunc        func(ctx context.Context, id string) error
}

func (m *mockNewsRepo) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsRepo) FindAll(ctx context.Context, limit, offset int) ([]model.NewsArticle, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockNewsRepo) FindPublished(ctx context.Context) ([]model.NewsArticle, error) {
	if m.findPublishedFunc != nil {
		return m.findPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockNewsRepo) Create(ctx context.Context, params model.NewsArticleParams) (*model.NewsArticle, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.NewsArticle{ID: "news-1", Title: params.Title, Slug: params.Slug, PublishedAt: params.PublishedAt}, nil
}

func (m *mockNewsRepo) Update(ctx context.Context, id string, params model.NewsArticleParams) (*model.NewsArticle, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockNewsRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockPartnerRepo struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.Partner, error)
	findAllFunc    func(ctx context.Context) ([]model.Partner, error)
	findActiveFunc func(ctx context.Context) ([]model.Partner, error)
	createFunc     func(ctx context.Context, params model.PartnerParams) (*model.Partner, error)
	updateFunc     func(ctx context.Context, id string, params model.PartnerParams) (*model.Partner, error)
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockPartnerRepo) FindByID(ctx context.Context, id string) (*model.Partner, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartnerRepo) FindAll(ctx context.Context) ([]model.Partner, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPartnerRepo) FindActive(ctx context.Context) ([]model.Partner, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockPartnerRepo) Create(ctx context.Context, params model.PartnerParams) (*model.Partner, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Partner{ID: "partner-1", Name: params.Name}, nil
}

func (m *mockPartnerRepo) Update(ctx context.Context, id string, params model.PartnerParams) (*model.Partner, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockPartnerRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockTeamRepo struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.TeamMember, error)
	findAllFunc    func(ctx context.Context) ([]model.TeamMember, error)
	findActiveFunc func(ctx context.Context) ([]model.TeamMember, error)
	createFunc     func(ctx context.Context, params model.TeamMemberParams) (*model.TeamMember, error)
	updateFunc     func(ctx context.Context, id string, params model.TeamMemberParams) (*model.TeamMember, error)
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockTeamRepo) FindByID(ctx context.Context, id string) (*model.TeamMember, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepo) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamRepo) FindActive(ctx context.Context) ([]model.TeamMember, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamRepo) Create(ctx context.Context, params model.TeamMemberParams) (*model.TeamMember, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.TeamMember{ID: "member-1", FullName: params.FullName}, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, id string, params model.TeamMemberParams) (*model.TeamMember, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockJobRepo struct {
	findByIDFunc    func(ctx context.Context, id string) (*model.JobPosting, error)
	findAllFunc     func(ctx context.Context) ([]model.JobPosting, error)
	findActiveFunc  func(ctx context.Context) ([]model.JobPosting, error)
	createFunc      func(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error)
	updateFunc      func(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error)
	deleteFunc      func(ctx context.Context, id string) error
	countActiveFunc func(ctx context.Context) (int, error)
}

func (m *mockJobRepo) FindByID(ctx context.Context, id string) (*model.JobPosting, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobRepo) FindAll(ctx context.Context) ([]model.JobPosting, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockJobRepo) FindActive(ctx context.Context) ([]model.JobPosting, error) {
	if m.findActiveFunc != nil {
		return m.findActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockJobRepo) Create(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.JobPosting{ID: "job-1", Title: params.Title, Slug: params.Slug}, nil
}

func (m *mockJobRepo) Update(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *mockJobRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockJobRepo) CountActive(ctx context.Context) (int, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

type mockApplicationRepo struct {
	findByIDFunc      func(ctx context.Context, id string) (*model.JobApplication, error)
	findAllFunc       func(ctx context.Context, limit, offset int) ([]model.JobApplication, error)
	createFunc        func(ctx context.Context, params model.CreateApplicationParams) (*model.JobApplication, error)
	updateStatusFunc  func(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error)
	deleteFunc        func(ctx context.Context, id string) error
	countByStatusFunc func(ctx context.Context, status model.ApplicationStatus) (int, error)
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindAll(ctx context.Context, limit, offset int) ([]model.JobApplication, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockApplicationRepo) Create(ctx context.Context, params model.CreateApplicationParams) (*model.JobApplication, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.JobApplication{
		ID:          "application-1",
		JobID:       params.JobID,
		JobTitle:    params.JobTitle,
		FullName:    params.FullName,
		Email:       params.Email,
		Phone:       params.Phone,
		CoverLetter: params.CoverLetter,
		ResumeURL:   params.ResumeURL,
		Status:      model.ApplicationStatusPending,
	}, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockApplicationRepo) CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error) {
	if m.countByStatusFunc != nil {
		return m.countByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockSettingsRepo struct {
	findAllFunc    func(ctx context.Context) ([]model.SiteSetting, error)
	upsertManyFunc func(ctx context.Context, settings map[string]string) error
}

func (m *mockSettingsRepo) FindAll(ctx context.Context) ([]model.SiteSetting, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingsRepo) UpsertMany(ctx context.Context, settings map[string]string) error {
	if m.upsertManyFunc != nil {
		return m.upsertManyFunc(ctx, settings)
	}
	return nil
}

type mockUploadStore struct {
	saveFunc func(filename string, r io.Reader) (string, error)
}

func (m *mockUploadStore) Save(filename string, r io.Reader) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(filename, r)
	}
	return "/uploads/mock-file", nil
}
