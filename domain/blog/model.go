package blog

import (
	"time"

	"github.com/lib/pq"

	"marketing-platform/pkg/apperrors"
)

// BlogPost is a stored blog post.
type BlogPost struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	Excerpt       string         `db:"excerpt" json:"excerpt"`
	Content       string         `db:"content" json:"content"`
	Author        string         `db:"author" json:"author"`
	FeaturedImage *string        `db:"featured_image" json:"featured_image"`
	Category      string         `db:"category" json:"category"`
	Tags          pq.StringArray `db:"tags" json:"tags"`
	Published     bool           `db:"published" json:"published"`
	Views         int64          `db:"views" json:"views"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// BlogPostSummary is the list projection: everything except the full content.
type BlogPostSummary struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	Excerpt       string         `db:"excerpt" json:"excerpt"`
	Author        string         `db:"author" json:"author"`
	FeaturedImage *string        `db:"featured_image" json:"featured_image"`
	Category      string         `db:"category" json:"category"`
	Tags          pq.StringArray `db:"tags" json:"tags"`
	Published     bool           `db:"published" json:"published"`
	Views         int64          `db:"views" json:"views"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the admin create payload.
type CreateRequest struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	FeaturedImage *string  `json:"featured_image"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
}

func (r *CreateRequest) Validate() *apperrors.AppError {
	if len(r.Title) < 5 || len(r.Title) > 200 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Title must be between 5 and 200 characters.")
	}
	if len(r.Excerpt) > 500 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Excerpt must be at most 500 characters.")
	}
	if len(r.Content) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Content must be at least 50 characters.")
	}
	if r.Author == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Author is required.")
	}
	if r.Category == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Category is required.")
	}
	return nil
}

// UpdateRequest is a partial update: only non-nil fields are applied.
// A JSON null is indistinguishable from an omitted field, so fields cannot
// be cleared through this payload.
type UpdateRequest struct {
	Title         *string   `json:"title"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featured_image"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	Published     *bool     `json:"published"`
}

func (r *UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Excerpt == nil && r.Content == nil &&
		r.FeaturedImage == nil && r.Category == nil && r.Tags == nil &&
		r.Published == nil
}

func (r *UpdateRequest) Validate() *apperrors.AppError {
	if r.Title != nil && (len(*r.Title) < 5 || len(*r.Title) > 200) {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Title must be between 5 and 200 characters.")
	}
	if r.Excerpt != nil && len(*r.Excerpt) > 500 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Excerpt must be at most 500 characters.")
	}
	if r.Content != nil && len(*r.Content) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Content must be at least 50 characters.")
	}
	return nil
}

// ListFilter narrows and paginates the blog listing.
type ListFilter struct {
	PublishedOnly bool
	Category      string
	Page          int
	Limit         int
}

// ListResponse is the paginated listing envelope.
type ListResponse struct {
	Success bool              `json:"success"`
	Data    []BlogPostSummary `json:"data"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Pages   int               `json:"pages"`
}

// MutationResponse acknowledges an admin write.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  string `json:"post_id,omitempty"`
}
