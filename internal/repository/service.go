package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type ServiceRepository interface {
	FindByID(ctx context.Context, id string) (*model.Service, error)
	FindAll(ctx context.Context) ([]model.Service, error)
	FindActive(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, params model.ServiceParams) (*model.Service, error)
	Update(ctx context.Context, id string, params model.ServiceParams) (*model.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type serviceRepo struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) FindByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, `SELECT * FROM services WHERE id = $1`, id)
	return HandleNotFound(&svc, err)
}

func (r *serviceRepo) FindAll(ctx context.Context) ([]model.Service, error) {
	services := []model.Service{}
	err := r.db.SelectContext(ctx, &services, `
		SELECT * FROM services ORDER BY sort_order ASC, created_at ASC
	`)
	return services, err
}

func (r *serviceRepo) FindActive(ctx context.Context) ([]model.Service, error) {
	services := []model.Service{}
	err := r.db.SelectContext(ctx, &services, `
		SELECT * FROM services WHERE is_active = TRUE ORDER BY sort_order ASC
	`)
	return services, err
}

func (r *serviceRepo) Create(ctx context.Context, params model.ServiceParams) (*model.Service, error) {
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, `
		INSERT INTO services (id, title, slug, short_description, full_description, icon, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING *
	`, uuid.NewString(), params.Title, params.Slug, params.ShortDescription,
		params.FullDescription, params.Icon, params.SortOrder, params.IsActive)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) Update(ctx context.Context, id string, params model.ServiceParams) (*model.Service, error) {
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, `
		UPDATE services SET
			title = $2,
			slug = $3,
			short_description = $4,
			full_description = $5,
			icon = $6,
			sort_order = $7,
			is_active = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Slug, params.ShortDescription,
		params.FullDescription, params.Icon, params.SortOrder, params.IsActive)
	return HandleNotFound(&svc, err)
}

func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}

func (r *serviceRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM services`)
	return count, err
}
