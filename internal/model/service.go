package model

import (
	"time"
)

type Service struct {
	ID               string    `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Slug             string    `db:"slug" json:"slug"`
	ShortDescription string    `db:"short_description" json:"shortDescription"`
	FullDescription  string    `db:"full_description" json:"fullDescription"`
	Icon             string    `db:"icon" json:"icon"`
	SortOrder        int       `db:"sort_order" json:"sortOrder"`
	IsActive         bool      `db:"is_active" json:"isActive"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type ServiceParams struct {
	Title            string
	Slug             string
	ShortDescription string
	FullDescription  string
	Icon             string
	SortOrder        int
	IsActive         bool
}
