package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrNotFound is returned when no post matches the id or slug.
var ErrNotFound = errors.New("blog post not found")

// Patch holds the column values of a partial update. Nil fields are left
// untouched; Slug is set alongside Title by the handler.
type Patch struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	FeaturedImage *string
	Category      *string
	Tags          *[]string
	Published     *bool
}

// Repository persists blog posts.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]BlogPostSummary, int, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	IncrementViews(ctx context.Context, id string) error
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

type pgRepository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed blog repository.
func NewRepository(db *sqlx.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) List(ctx context.Context, filter ListFilter) ([]BlogPostSummary, int, error) {
	where := []string{}
	args := []interface{}{}
	n := 1

	if filter.PublishedOnly {
		where = append(where, "published = TRUE")
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", n))
		args = append(args, filter.Category)
		n++
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM blog_posts"+clause, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, title, slug, excerpt, author, featured_image, category, tags,
		       published, views, created_at, updated_at
		FROM blog_posts%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, clause, n, n+1)
	args = append(args, filter.Limit, offset)

	posts := []BlogPostSummary{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *pgRepository) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	var post BlogPost
	// Slug uniqueness is not enforced; the newest post wins on collision.
	err := r.db.GetContext(ctx, &post, `
		SELECT id, title, slug, excerpt, content, author, featured_image, category,
		       tags, published, views, created_at, updated_at
		FROM blog_posts
		WHERE slug = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		slug,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *pgRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE blog_posts SET views = views + 1 WHERE id = $1", id)
	return err
}

func (r *pgRepository) Create(ctx context.Context, post *BlogPost) error {
	now := time.Now().UTC()
	post.ID = uuid.New().String()
	post.Views = 0
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blog_posts
			(id, title, slug, excerpt, content, author, featured_image, category,
			 tags, published, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.Author,
		post.FeaturedImage, post.Category, post.Tags, post.Published,
		post.Views, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *pgRepository) Update(ctx context.Context, id string, patch Patch) error {
	set := []string{}
	args := []interface{}{}
	n := 1

	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.FeaturedImage != nil {
		add("featured_image", *patch.FeaturedImage)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Tags != nil {
		add("tags", pq.StringArray(*patch.Tags))
	}
	if patch.Published != nil {
		add("published", *patch.Published)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE blog_posts SET %s WHERE id = $%d",
		strings.Join(set, ", "), n)
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
