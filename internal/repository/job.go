package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*model.JobPosting, error)
	FindAll(ctx context.Context) ([]model.JobPosting, error)
	FindActive(ctx context.Context) ([]model.JobPosting, error)
	Create(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error)
	Update(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error)
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

type jobRepo struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.db.GetContext(ctx, &job, `SELECT * FROM job_postings WHERE id = $1`, id)
	return HandleNotFound(&job, err)
}

func (r *jobRepo) FindAll(ctx context.Context) ([]model.JobPosting, error) {
	jobs := []model.JobPosting{}
	err := r.db.SelectContext(ctx, &jobs, `
		SELECT * FROM job_postings ORDER BY created_at DESC
	`)
	return jobs, err
}

func (r *jobRepo) FindActive(ctx context.Context) ([]model.JobPosting, error) {
	jobs := []model.JobPosting{}
	err := r.db.SelectContext(ctx, &jobs, `
		SELECT * FROM job_postings WHERE is_active = TRUE ORDER BY created_at DESC
	`)
	return jobs, err
}

func (r *jobRepo) Create(ctx context.Context, params model.JobPostingParams) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.db.GetContext(ctx, &job, `
		INSERT INTO job_postings (
			id, title, slug, department, location, employment_type,
			experience_level, salary_range, description, requirements,
			responsibilities, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING *
	`, uuid.NewString(), params.Title, params.Slug, params.Department,
		params.Location, params.EmploymentType, params.ExperienceLevel,
		params.SalaryRange, params.Description, params.Requirements,
		params.Responsibilities, params.IsActive)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Update(ctx context.Context, id string, params model.JobPostingParams) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.db.GetContext(ctx, &job, `
		UPDATE job_postings SET
			title = $2,
			slug = $3,
			department = $4,
			location = $5,
			employment_type = $6,
			experience_level = $7,
			salary_range = $8,
			description = $9,
			requirements = $10,
			responsibilities = $11,
			is_active = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Slug, params.Department, params.Location,
		params.EmploymentType, params.ExperienceLevel, params.SalaryRange,
		params.Description, params.Requirements, params.Responsibilities,
		params.IsActive)
	return HandleNotFound(&job, err)
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	return err
}

func (r *jobRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM job_postings WHERE is_active = TRUE`)
	return count, err
}
