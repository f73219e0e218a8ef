package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type AdminUserRepository interface {
	FindByID(ctx context.Context, id string) (*model.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, params model.CreateAdminUserParams) (*model.AdminUser, error)
	UpdateProfile(ctx context.Context, id string, params model.UpdateAdminProfileParams) (*model.AdminUser, error)
	Count(ctx context.Context) (int, error)
}

type adminUserRepo struct {
	db *sqlx.DB
}

func NewAdminUserRepository(db *sqlx.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

func (r *adminUserRepo) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM admin_users WHERE id = $1
	`, id)
	return HandleNotFound(&user, err)
}

// FindByEmail matches the address exactly as stored; provisioning is the
// place where addresses get lowercased.
func (r *adminUserRepo) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM admin_users WHERE email = $1
	`, email)
	return HandleNotFound(&user, err)
}

func (r *adminUserRepo) Create(ctx context.Context, params model.CreateAdminUserParams) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.GetContext(ctx, &user, `
		INSERT INTO admin_users (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, uuid.NewString(), params.Email, params.PasswordHash, params.FullName, params.Role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepo) UpdateProfile(ctx context.Context, id string, params model.UpdateAdminProfileParams) (*model.AdminUser, error) {
	var user model.AdminUser
	var err error
	if params.PasswordHash != nil {
		err = r.db.GetContext(ctx, &user, `
			UPDATE admin_users SET
				full_name = $2,
				email = $3,
				password_hash = $4,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		`, id, params.FullName, params.Email, *params.PasswordHash)
	} else {
		err = r.db.GetContext(ctx, &user, `
			UPDATE admin_users SET
				full_name = $2,
				email = $3,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		`, id, params.FullName, params.Email)
	}
	return HandleNotFound(&user, err)
}

func (r *adminUserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admin_users`)
	return count, err
}
