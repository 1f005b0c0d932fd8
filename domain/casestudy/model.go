package casestudy

import (
	"time"

	"github.com/lib/pq"

	"marketing-platform/pkg/apperrors"
)

// CaseStudy is a client project write-up shown on the marketing site.
type CaseStudy struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	ClientName    string         `db:"client_name" json:"client_name"`
	ClientLogo    *string        `db:"client_logo" json:"client_logo"`
	Industry      string         `db:"industry" json:"industry"`
	Challenge     string         `db:"challenge" json:"challenge"`
	Solution      string         `db:"solution" json:"solution"`
	Results       string         `db:"results" json:"results"`
	Technologies  pq.StringArray `db:"technologies" json:"technologies"`
	FeaturedImage *string        `db:"featured_image" json:"featured_image"`
	GalleryImages pq.StringArray `db:"gallery_images" json:"gallery_images"`
	Published     bool           `db:"published" json:"published"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the admin create payload.
type CreateRequest struct {
	Title         string   `json:"title"`
	ClientName    string   `json:"client_name"`
	ClientLogo    *string  `json:"client_logo"`
	Industry      string   `json:"industry"`
	Challenge     string   `json:"challenge"`
	Solution      string   `json:"solution"`
	Results       string   `json:"results"`
	Technologies  []string `json:"technologies"`
	FeaturedImage *string  `json:"featured_image"`
	GalleryImages []string `json:"gallery_images"`
	Published     bool     `json:"published"`
}

func (r *CreateRequest) Validate() *apperrors.AppError {
	if len(r.Title) < 5 || len(r.Title) > 200 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Title must be between 5 and 200 characters.")
	}
	if r.ClientName == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Client name is required.")
	}
	if r.Industry == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Industry is required.")
	}
	if len(r.Challenge) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Challenge must be at least 50 characters.")
	}
	if len(r.Solution) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Solution must be at least 50 characters.")
	}
	if len(r.Results) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Results must be at least 50 characters.")
	}
	return nil
}

// UpdateRequest is a partial update: only non-nil fields are applied.
type UpdateRequest struct {
	Title         *string   `json:"title"`
	ClientName    *string   `json:"client_name"`
	ClientLogo    *string   `json:"client_logo"`
	Industry      *string   `json:"industry"`
	Challenge     *string   `json:"challenge"`
	Solution      *string   `json:"solution"`
	Results       *string   `json:"results"`
	Technologies  *[]string `json:"technologies"`
	FeaturedImage *string   `json:"featured_image"`
	GalleryImages *[]string `json:"gallery_images"`
	Published     *bool     `json:"published"`
}

func (r *UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.ClientName == nil && r.ClientLogo == nil &&
		r.Industry == nil && r.Challenge == nil && r.Solution == nil &&
		r.Results == nil && r.Technologies == nil && r.FeaturedImage == nil &&
		r.GalleryImages == nil && r.Published == nil
}

func (r *UpdateRequest) Validate() *apperrors.AppError {
	if r.Title != nil && (len(*r.Title) < 5 || len(*r.Title) > 200) {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Title must be between 5 and 200 characters.")
	}
	if r.Challenge != nil && len(*r.Challenge) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Challenge must be at least 50 characters.")
	}
	if r.Solution != nil && len(*r.Solution) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Solution must be at least 50 characters.")
	}
	if r.Results != nil && len(*r.Results) < 50 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Results must be at least 50 characters.")
	}
	return nil
}

// ListFilter narrows and paginates the case-study listing.
type ListFilter struct {
	PublishedOnly bool
	Industry      string
	Page          int
	Limit         int
}

// ListResponse is the paginated listing envelope.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    []CaseStudy `json:"data"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Pages   int         `json:"pages"`
}

// MutationResponse confirms an admin write.
type MutationResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CaseStudyID string `json:"case_study_id,omitempty"`
}
