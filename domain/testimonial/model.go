package testimonial

import (
	"time"

	"marketing-platform/pkg/apperrors"
)

// Testimonial is a client quote shown on the marketing site.
type Testimonial struct {
	ID              string    `db:"id" json:"id"`
	ClientName      string    `db:"client_name" json:"client_name"`
	ClientPosition  string    `db:"client_position" json:"client_position"`
	ClientCompany   string    `db:"client_company" json:"client_company"`
	ClientImage     *string   `db:"client_image" json:"client_image"`
	TestimonialText string    `db:"testimonial_text" json:"testimonial_text"`
	Rating          int       `db:"rating" json:"rating"`
	Featured        bool      `db:"featured" json:"featured"`
	Published       bool      `db:"published" json:"published"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the admin create payload.
type CreateRequest struct {
	ClientName      string  `json:"client_name"`
	ClientPosition  string  `json:"client_position"`
	ClientCompany   string  `json:"client_company"`
	ClientImage     *string `json:"client_image"`
	TestimonialText string  `json:"testimonial_text"`
	Rating          int     `json:"rating"`
	Featured        bool    `json:"featured"`
	Published       *bool   `json:"published"`
}

func (r *CreateRequest) Validate() *apperrors.AppError {
	if len(r.ClientName) < 2 || len(r.ClientName) > 100 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Client name must be between 2 and 100 characters.")
	}
	if r.ClientPosition == "" || len(r.ClientPosition) > 100 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Client position must be between 1 and 100 characters.")
	}
	if r.ClientCompany == "" || len(r.ClientCompany) > 100 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Client company must be between 1 and 100 characters.")
	}
	if len(r.TestimonialText) < 20 || len(r.TestimonialText) > 1000 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Testimonial text must be between 20 and 1000 characters.")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Rating must be between 1 and 5.")
	}
	return nil
}

// UpdateRequest is a partial update: only non-nil fields are applied.
type UpdateRequest struct {
	ClientName      *string `json:"client_name"`
	ClientPosition  *string `json:"client_position"`
	ClientCompany   *string `json:"client_company"`
	ClientImage     *string `json:"client_image"`
	TestimonialText *string `json:"testimonial_text"`
	Rating          *int    `json:"rating"`
	Featured        *bool   `json:"featured"`
	Published       *bool   `json:"published"`
}

func (r *UpdateRequest) IsEmpty() bool {
	return r.ClientName == nil && r.ClientPosition == nil && r.ClientCompany == nil &&
		r.ClientImage == nil && r.TestimonialText == nil && r.Rating == nil &&
		r.Featured == nil && r.Published == nil
}

func (r *UpdateRequest) Validate() *apperrors.AppError {
	if r.ClientName != nil && (len(*r.ClientName) < 2 || len(*r.ClientName) > 100) {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Client name must be between 2 and 100 characters.")
	}
	if r.TestimonialText != nil && (len(*r.TestimonialText) < 20 || len(*r.TestimonialText) > 1000) {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Testimonial text must be between 20 and 1000 characters.")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Rating must be between 1 and 5.")
	}
	return nil
}

// ListFilter narrows and paginates the testimonial listing.
type ListFilter struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Page          int
	Limit         int
}

// ListResponse is the paginated listing envelope.
type ListResponse struct {
	Success bool          `json:"success"`
	Data    []Testimonial `json:"data"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Pages   int           `json:"pages"`
}

// MutationResponse confirms an admin write.
type MutationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TestimonialID string `json:"testimonial_id,omitempty"`
}
