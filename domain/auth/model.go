package auth

import (
	"net/mail"
	"time"

	"marketing-platform/pkg/apperrors"
)

// AdminUser is a stored admin identity. Identities are immutable after
// creation; there is no update or delete path.
type AdminUser struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Password  string    `db:"password" json:"-"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest is the admin registration payload (setup only).
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() *apperrors.AppError {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "A valid email is required.")
	}
	if r.Name == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Name is required.")
	}
	if len(r.Password) < 8 {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Password must be at least 8 characters.")
	}
	return nil
}

// RegisterResponse mirrors the original setup endpoint response.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
