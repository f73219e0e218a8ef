package model

import (
	"time"
)

// Session is one authenticated browser session. The client holds only the
// opaque token string; the row stores an HMAC of it, never the token itself.
// A row is valid iff ExpiresAt is in the future, re-checked on every use.
type Session struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	TokenHash string    `db:"token_hash" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateSessionParams struct {
	UserID    string
	TokenHash string
	ExpiresAt time.Time
}
