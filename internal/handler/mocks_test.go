package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type mockAdminUserRepo struct {
	mock.Mock
}

func (m *mockAdminUserRepo) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) Create(ctx context.Context, params model.CreateAdminUserParams) (*model.AdminUser, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) UpdateProfile(ctx context.Context, id string, params model.UpdateAdminProfileParams) (*model.AdminUser, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *mockAdminUserRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) FindByID(ctx context.Context, id string) (*model.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobPosting), args.Error(1)
}

func (m *mockJobRepo) FindAll(ctx context.Context) ([]model.JobPosting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.JobPosting), args.Error(1)
}

func (m *mockJobRepo) FindActive(ctx context.Context) ([]model.JobPosting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.JobPosting), args.Error(1)
}

func (m *mockJobRepo) Create(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobPosting), args.Error(1)
}

func (m *mockJobRepo) Update(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobPosting), args.Error(1)
}

func (m *mockJobRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockJobRepo) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockApplicationRepo struct {
	mock.Mock
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) FindAll(ctx context.Context, limit, offset int) ([]model.JobApplication, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]model.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) Create(ctx context.Context, params model.CreateApplicationParams) (*model.JobApplication, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockApplicationRepo) CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}
