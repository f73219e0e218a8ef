package model

import (
	"time"
)

type NewsArticle struct {
	ID            string     `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Slug          string     `db:"slug" json:"slug"`
	Excerpt       string     `db:"excerpt" json:"excerpt"`
	Content       string     `db:"content" json:"content"`
	Category      string     `db:"category" json:"category"`
	FeaturedImage *string    `db:"featured_image" json:"featuredImage,omitempty"`
	AuthorID      *string    `db:"author_id" json:"authorId,omitempty"`
	AuthorName    string     `db:"author_name" json:"authorName"`
	IsFeatured    bool       `db:"is_featured" json:"isFeatured"`
	IsPublished   bool       `db:"is_published" json:"isPublished"`
	PublishedAt   *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

type NewsArticleParams struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Category      string
	FeaturedImage *string
	AuthorID      *string
	AuthorName    string
	IsFeatured    bool
	IsPublished   bool
	PublishedAt   *time.Time
}
