package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*model.Project, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.Project, error)
	FindPublished(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, params model.ProjectParams) (*model.Project, error)
	Update(ctx context.Context, id string, params model.ProjectParams) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type projectRepo struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.GetContext(ctx, &project, `SELECT * FROM projects WHERE id = $1`, id)
	return HandleNotFound(&project, err)
}

func (r *projectRepo) FindAll(ctx context.Context, limit, offset int) ([]model.Project, error) {
	projects := []model.Project{}
	err := r.db.SelectContext(ctx, &projects, `
		SELECT * FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return projects, err
}

func (r *projectRepo) FindPublished(ctx context.Context) ([]model.Project, error) {
	projects := []model.Project{}
	err := r.db.SelectContext(ctx, &projects, `
		SELECT * FROM projects WHERE is_published = TRUE ORDER BY created_at DESC
	`)
	return projects, err
}

func (r *projectRepo) Create(ctx context.Context, params model.ProjectParams) (*model.Project, error) {
	var project model.Project
	err := r.db.GetContext(ctx, &project, `
		INSERT INTO projects (
			id, title, slug, description, full_description, category, client,
			location, start_date, end_date, status, featured_image,
			is_featured, is_published, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING *
	`, uuid.NewString(), params.Title, params.Slug, params.Description,
		params.FullDescription, params.Category, params.Client, params.Location,
		params.StartDate, params.EndDate, params.Status, params.FeaturedImage,
		params.IsFeatured, params.IsPublished, params.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) Update(ctx context.Context, id string, params model.ProjectParams) (*model.Project, error) {
	var project model.Project
	err := r.db.GetContext(ctx, &project, `
		UPDATE projects SET
			title = $2,
			slug = $3,
			description = $4,
			full_description = $5,
			category = $6,
			client = $7,
			location = $8,
			start_date = $9,
			end_date = $10,
			status = $11,
			featured_image = $12,
			is_featured = $13,
			is_published = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Slug, params.Description, params.FullDescription,
		params.Category, params.Client, params.Location, params.StartDate,
		params.EndDate, params.Status, params.FeaturedImage,
		params.IsFeatured, params.IsPublished)
	return HandleNotFound(&project, err)
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *projectRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects`)
	return count, err
}
