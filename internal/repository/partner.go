package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type PartnerRepository interface {
	FindByID(ctx context.Context, id string) (*model.Partner, error)
	FindAll(ctx context.Context) ([]model.Partner, error)
	FindActive(ctx context.Context) ([]model.Partner, error)
	Create(ctx context.Context, params model.PartnerParams) (*model.Partner, error)
	Update(ctx context.Context, id string, params model.PartnerParams) (*model.Partner, error)
	Delete(ctx context.Context, id string) error
}

type partnerRepo struct {
	db *sqlx.DB
}

func NewPartnerRepository(db *sqlx.DB) PartnerRepository {
	return &partnerRepo{db: db}
}

func (r *partnerRepo) FindByID(ctx context.Context, id string) (*model.Partner, error) {
	var partner model.Partner
	err := r.db.GetContext(ctx, &partner, `SELECT * FROM partners WHERE id = $1`, id)
	return HandleNotFound(&partner, err)
}

func (r *partnerRepo) FindAll(ctx context.Context) ([]model.Partner, error) {
	partners := []model.Partner{}
	err := r.db.SelectContext(ctx, &partners, `
		SELECT * FROM partners ORDER BY sort_order ASC, name ASC
	`)
	return partners, err
}

func (r *partnerRepo) FindActive(ctx context.Context) ([]model.Partner, error) {
	partners := []model.Partner{}
	err := r.db.SelectContext(ctx, &partners, `
		SELECT * FROM partners WHERE is_active = TRUE ORDER BY sort_order ASC
	`)
	return partners, err
}

func (r *partnerRepo) Create(ctx context.Context, params model.PartnerParams) (*model.Partner, error) {
	var partner model.Partner
	err := r.db.GetContext(ctx, &partner, `
		INSERT INTO partners (id, name, logo_url, website_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, uuid.NewString(), params.Name, params.LogoURL, params.WebsiteURL,
		params.SortOrder, params.IsActive)
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepo) Update(ctx context.Context, id string, params model.PartnerParams) (*model.Partner, error) {
	var partner model.Partner
	err := r.db.GetContext(ctx, &partner, `
		UPDATE partners SET
			name = $2,
			logo_url = $3,
			website_url = $4,
			sort_order = $5,
			is_active = $6
		WHERE id = $1
		RETURNING *
	`, id, params.Name, params.LogoURL, params.WebsiteURL, params.SortOrder, params.IsActive)
	return HandleNotFound(&partner, err)
}

func (r *partnerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	return err
}
