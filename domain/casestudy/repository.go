package casestudy

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

// ErrNotFound is returned when no case study matches the id or slug.
var ErrNotFound = errors.New("case study not found")

// Patch holds the column values of a partial update. Slug is set alongside
// Title by the handler.
type Patch struct {
	Title         *string
	Slug          *string
	ClientName    *string
	ClientLogo    *string
	Industry      *string
	Challenge     *string
	Solution      *string
	Results       *string
	Technologies  *[]string
	FeaturedImage *string
	GalleryImages *[]string
	Published     *bool
}

// Repository persists case studies.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]CaseStudy, int, error)
	GetBySlug(ctx context.Context, slug string) (*CaseStudy, error)
	Create(ctx context.Context, cs *CaseStudy) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

type pgRepository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed case-study repository.
func NewRepository(db *sqlx.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) List(ctx context.Context, filter ListFilter) ([]CaseStudy, int, error) {
	where := []string{}
	args := []interface{}{}
	n := 1

	if filter.PublishedOnly {
		where = append(where, "published = TRUE")
	}
	if filter.Industry != "" {
		where = append(where, fmt.Sprintf("industry = $%d", n))
		args = append(args, filter.Industry)
		n++
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM case_studies"+clause, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, title, slug, client_name, client_logo, industry, challenge,
		       solution, results, technologies, featured_image, gallery_images,
		       published, created_at, updated_at
		FROM case_studies%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, clause, n, n+1)
	args = append(args, filter.Limit, offset)

	items := []CaseStudy{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *pgRepository) GetBySlug(ctx context.Context, slug string) (*CaseStudy, error) {
	var cs CaseStudy
	// Slug uniqueness is not enforced; the newest case study wins on collision.
	err := r.db.GetContext(ctx, &cs, `
		SELECT id, title, slug, client_name, client_logo, industry, challenge,
		       solution, results, technologies, featured_image, gallery_images,
		       published, created_at, updated_at
		FROM case_studies
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
	return &cs, nil
}

func (r *pgRepository) Create(ctx context.Context, cs *CaseStudy) error {
	now := time.Now().UTC()
	cs.ID = uuid.New().String()
	cs.CreatedAt = now
	cs.UpdatedAt = now
	if cs.Technologies == nil {
		cs.Technologies = pq.StringArray{}
	}
	if cs.GalleryImages == nil {
		cs.GalleryImages = pq.StringArray{}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO case_studies
			(id, title, slug, client_name, client_logo, industry, challenge,
			 solution, results, technologies, featured_image, gallery_images,
			 published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		cs.ID, cs.Title, cs.Slug, cs.ClientName, cs.ClientLogo, cs.Industry,
		cs.Challenge, cs.Solution, cs.Results, cs.Technologies, cs.FeaturedImage,
		cs.GalleryImages, cs.Published, cs.CreatedAt, cs.UpdatedAt,
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
	if patch.ClientName != nil {
		add("client_name", *patch.ClientName)
	}
	if patch.ClientLogo != nil {
		add("client_logo", *patch.ClientLogo)
	}
	if patch.Industry != nil {
		add("industry", *patch.Industry)
	}
	if patch.Challenge != nil {
		add("challenge", *patch.Challenge)
	}
	if patch.Solution != nil {
		add("solution", *patch.Solution)
	}
	if patch.Results != nil {
		add("results", *patch.Results)
	}
	if patch.Technologies != nil {
		add("technologies", pq.StringArray(*patch.Technologies))
	}
	if patch.FeaturedImage != nil {
		add("featured_image", *patch.FeaturedImage)
	}
	if patch.GalleryImages != nil {
		add("gallery_images", pq.StringArray(*patch.GalleryImages))
	}
	if patch.Published != nil {
		add("published", *patch.Published)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE case_studies SET %s WHERE id = $%d",
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
	result, err := r.db.ExecContext(ctx, "DELETE FROM case_studies WHERE id = $1", id)
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
