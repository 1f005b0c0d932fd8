package contact

import (
	"net/mail"
	"strings"
	"time"

	"marketing-platform/pkg/apperrors"
)

// Contact is a stored contact-form or meeting-booking submission. Records
// are never deleted; admins tag them through the free-form status field.
type Contact struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone"`
	Service     *string   `db:"service" json:"service"`
	Message     string    `db:"message" json:"message"`
	MeetingDate *string   `db:"meeting_date" json:"meeting_date"`
	MeetingTime *string   `db:"meeting_time" json:"meeting_time"`
	Status      string    `db:"status" json:"status"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
	EmailSent   bool      `db:"email_sent" json:"email_sent"`
}

// SubmitRequest is the public contact-form payload. The meeting-booking
// endpoint reuses it with a pipe-delimited compound message.
type SubmitRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`
	Message string  `json:"message"`
}

func (r *SubmitRequest) Validate() *apperrors.AppError {
	if len(r.Name) < 2 || len(r.Name) > 100 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Name must be between 2 and 100 characters.")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "A valid email address is required.")
	}
	if len(r.Message) < 10 || len(r.Message) > 1000 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Message must be between 10 and 1000 characters.")
	}
	return nil
}

// ParseMeetingMessage splits the frontend's "date|time|notes" compound
// message. Missing segments come back empty; a message without pipes is
// treated as plain notes.
func ParseMeetingMessage(compound string) (date, meetingTime, notes string) {
	parts := strings.SplitN(compound, "|", 3)
	switch len(parts) {
	case 3:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	case 2:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), ""
	default:
		return "", "", strings.TrimSpace(parts[0])
	}
}

// UpdateStatusRequest carries the new status tag, stored verbatim.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListFilter narrows and paginates the admin contact listing.
type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

// ListResponse is the paginated listing envelope.
type ListResponse struct {
	Success bool      `json:"success"`
	Data    []Contact `json:"data"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Pages   int       `json:"pages"`
}

// SubmitResponse confirms a public submission.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contact_id"`
}

// MutationResponse confirms an admin write.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
