package model

import (
	"time"
)

type Project struct {
	ID              string        `db:"id" json:"id"`
	Title           string        `db:"title" json:"title"`
	Slug            string        `db:"slug" json:"slug"`
	Description     string        `db:"description" json:"description"`
	FullDescription string        `db:"full_description" json:"fullDescription"`
	Category        string        `db:"category" json:"category"`
	Client          string        `db:"client" json:"client"`
	Location        string        `db:"location" json:"location"`
	StartDate       *time.Time    `db:"start_date" json:"startDate,omitempty"`
	EndDate         *time.Time    `db:"end_date" json:"endDate,omitempty"`
	Status          ProjectStatus `db:"status" json:"status"`
	FeaturedImage   *string       `db:"featured_image" json:"featuredImage,omitempty"`
	IsFeatured      bool          `db:"is_featured" json:"isFeatured"`
	IsPublished     bool          `db:"is_published" json:"isPublished"`
	CreatedBy       *string       `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updatedAt"`
}

type ProjectParams struct {
	Title           string
	Slug            string
	Description     string
	FullDescription string
	Category        string
	Client          string
	Location        string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          ProjectStatus
	FeaturedImage   *string
	IsFeatured      bool
	IsPublished     bool
	CreatedBy       *string
}
