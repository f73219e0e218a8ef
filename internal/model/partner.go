package model

import (
	"time"
)

type Partner struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	LogoURL    *string   `db:"logo_url" json:"logoUrl,omitempty"`
	WebsiteURL *string   `db:"website_url" json:"websiteUrl,omitempty"`
	SortOrder  int       `db:"sort_order" json:"sortOrder"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type PartnerParams struct {
	Name       string
	LogoURL    *string
	WebsiteURL *string
	SortOrder  int
	IsActive   bool
}

type TeamMember struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"fullName"`
	Title     string    `db:"title" json:"title"`
	Bio       *string   `db:"bio" json:"bio,omitempty"`
	PhotoURL  *string   `db:"photo_url" json:"photoUrl,omitempty"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type TeamMemberParams struct {
	FullName  string
	Title     string
	Bio       *string
	PhotoURL  *string
	SortOrder int
	IsActive  bool
}
