package testimonial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no testimonial matches the id.
var ErrNotFound = errors.New("testimonial not found")

// Patch holds the column values of a partial update.
type Patch struct {
	ClientName      *string
	ClientPosition  *string
	ClientCompany   *string
	ClientImage     *string
	TestimonialText *string
	Rating          *int
	Featured        *bool
	Published       *bool
}

// Repository persists testimonials.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Testimonial, int, error)
	Create(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

type pgRepository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed testimonial repository.
func NewRepository(db *sqlx.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) List(ctx context.Context, filter ListFilter) ([]Testimonial, int, error) {
	where := []string{}
	if filter.PublishedOnly {
		where = append(where, "published = TRUE")
	}
	if filter.FeaturedOnly {
		where = append(where, "featured = TRUE")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM testimonials"+clause); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, client_name, client_position, client_company, client_image,
		       testimonial_text, rating, featured, published, created_at, updated_at
		FROM testimonials%s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, clause)

	items := []Testimonial{}
	if err := r.db.SelectContext(ctx, &items, query, filter.Limit, offset); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *pgRepository) Create(ctx context.Context, t *Testimonial) error {
	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO testimonials
			(id, client_name, client_position, client_company, client_image,
			 testimonial_text, rating, featured, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.ClientName, t.ClientPosition, t.ClientCompany, t.ClientImage,
		t.TestimonialText, t.Rating, t.Featured, t.Published, t.CreatedAt, t.UpdatedAt,
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

	if patch.ClientName != nil {
		add("client_name", *patch.ClientName)
	}
	if patch.ClientPosition != nil {
		add("client_position", *patch.ClientPosition)
	}
	if patch.ClientCompany != nil {
		add("client_company", *patch.ClientCompany)
	}
	if patch.ClientImage != nil {
		add("client_image", *patch.ClientImage)
	}
	if patch.TestimonialText != nil {
		add("testimonial_text", *patch.TestimonialText)
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Featured != nil {
		add("featured", *patch.Featured)
	}
	if patch.Published != nil {
		add("published", *patch.Published)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE testimonials SET %s WHERE id = $%d",
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
	result, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", id)
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
