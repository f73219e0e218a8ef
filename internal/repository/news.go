package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type NewsRepository interface {
	FindByID(ctx context.Context, id string) (*model.NewsArticle, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.NewsArticle, error)
	FindPublished(ctx context.Context) ([]model.NewsArticle, error)
	Create(ctx context.Context, params model.NewsArticleParams) (*model.NewsArticle, error)
	Update(ctx context.Context, id string, params model.NewsArticleParams) (*model.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type newsRepo struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) FindByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := r.db.GetContext(ctx, &article, `SELECT * FROM news WHERE id = $1`, id)
	return HandleNotFound(&article, err)
}

func (r *newsRepo) FindAll(ctx context.Context, limit, offset int) ([]model.NewsArticle, error) {
	articles := []model.NewsArticle{}
	err := r.db.SelectContext(ctx, &articles, `
		SELECT * FROM news ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return articles, err
}

func (r *newsRepo) FindPublished(ctx context.Context) ([]model.NewsArticle, error) {
	articles := []model.NewsArticle{}
	err := r.db.SelectContext(ctx, &articles, `
		SELECT * FROM news
		WHERE is_published = TRUE
		ORDER BY published_at DESC NULLS LAST, created_at DESC
	`)
	return articles, err
}

func (r *newsRepo) Create(ctx context.Context, params model.NewsArticleParams) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := r.db.GetContext(ctx, &article, `
		INSERT INTO news (
			id, title, slug, excerpt, content, category, featured_image,
			author_id, author_name, is_featured, is_published, published_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING *
	`, uuid.NewString(), params.Title, params.Slug, params.Excerpt,
		params.Content, params.Category, params.FeaturedImage, params.AuthorID,
		params.AuthorName, params.IsFeatured, params.IsPublished, params.PublishedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *newsRepo) Update(ctx context.Context, id string, params model.NewsArticleParams) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := r.db.GetContext(ctx, &article, `
		UPDATE news SET
			title = $2,
			slug = $3,
			excerpt = $4,
			content = $5,
			category = $6,
			featured_image = $7,
			author_name = $8,
			is_featured = $9,
			is_published = $10,
			published_at = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Slug, params.Excerpt, params.Content,
		params.Category, params.FeaturedImage, params.AuthorName,
		params.IsFeatured, params.IsPublished, params.PublishedAt)
	return HandleNotFound(&article, err)
}

func (r *newsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	return err
}
