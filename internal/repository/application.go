package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type ApplicationRepository interface {
	FindByID(ctx context.Context, id string) (*model.JobApplication, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.JobApplication, error)
	Create(ctx context.Context, params model.CreateApplicationParams) (*model.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error)
}

type applicationRepo struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.GetContext(ctx, &app, `SELECT * FROM job_applications WHERE id = $1`, id)
	return HandleNotFound(&app, err)
}

func (r *applicationRepo) FindAll(ctx context.Context, limit, offset int) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	err := r.db.SelectContext(ctx, &apps, `
		SELECT * FROM job_applications ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return apps, err
}

func (r *applicationRepo) Create(ctx context.Context, params model.CreateApplicationParams) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.GetContext(ctx, &app, `
		INSERT INTO job_applications (
			id, job_id, job_title, full_name, email, phone, cover_letter, resume_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING *
	`, uuid.NewString(), params.JobID, params.JobTitle, params.FullName,
		params.Email, params.Phone, params.CoverLetter, params.ResumeURL)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.GetContext(ctx, &app, `
		UPDATE job_applications SET status = $2 WHERE id = $1 RETURNING *
	`, id, status)
	return HandleNotFound(&app, err)
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	return err
}

func (r *applicationRepo) CountByStatus(ctx context.Context, status model.ApplicationStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM job_applications WHERE status = $1
	`, status)
	return count, err
}
