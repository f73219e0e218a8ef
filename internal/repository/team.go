package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*model.TeamMember, error)
	FindAll(ctx context.Context) ([]model.TeamMember, error)
	FindActive(ctx context.Context) ([]model.TeamMember, error)
	Create(ctx context.Context, params model.TeamMemberParams) (*model.TeamMember, error)
	Update(ctx context.Context, id string, params model.TeamMemberParams) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type teamRepo struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) FindByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.GetContext(ctx, &member, `SELECT * FROM team_members WHERE id = $1`, id)
	return HandleNotFound(&member, err)
}

func (r *teamRepo) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	members := []model.TeamMember{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT * FROM team_members ORDER BY sort_order ASC, full_name ASC
	`)
	return members, err
}

func (r *teamRepo) FindActive(ctx context.Context) ([]model.TeamMember, error) {
	members := []model.TeamMember{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT * FROM team_members WHERE is_active = TRUE ORDER BY sort_order ASC
	`)
	return members, err
}

func (r *teamRepo) Create(ctx context.Context, params model.TeamMemberParams) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.GetContext(ctx, &member, `
		INSERT INTO team_members (id, full_name, title, bio, photo_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *
	`, uuid.NewString(), params.FullName, params.Title, params.Bio,
		params.PhotoURL, params.SortOrder, params.IsActive)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepo) Update(ctx context.Context, id string, params model.TeamMemberParams) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.GetContext(ctx, &member, `
		UPDATE team_members SET
			full_name = $2,
			title = $3,
			bio = $4,
			photo_url = $5,
			sort_order = $6,
			is_active = $7
		WHERE id = $1
		RETURNING *
	`, id, params.FullName, params.Title, params.Bio, params.PhotoURL,
		params.SortOrder, params.IsActive)
	return HandleNotFound(&member, err)
}

func (r *teamRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}
