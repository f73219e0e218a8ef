package model

import (
	"time"
)

// RoleAdmin is currently the only effective role; the column exists so
// finer-grained roles can be added without a schema change.
const RoleAdmin = "admin"

type AdminUser struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateAdminUserParams struct {
	Email        string
	PasswordHash string
	FullName     string
	Role         string
}

type UpdateAdminProfileParams struct {
	FullName     string
	Email        string
	PasswordHash *string
}
