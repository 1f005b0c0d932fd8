package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/token"
)

// ContextKeyAdminEmail is the echo context key holding the authenticated
// admin's email.
const ContextKeyAdminEmail = "admin_email"

// Verifier resolves a bearer token to a subject email.
type Verifier interface {
	Verify(tokenString string) (string, error)
}

// JWT returns a middleware that authenticates admin routes. It rejects the
// request before any store access when the Authorization header is missing,
// malformed, or carries an invalid or expired token. On success the subject
// email is attached to the request context for downstream handlers.
func JWT(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperrors.NewUnauthorized(
					apperrors.ErrCodeTokenMissing,
					"Missing authorization header.",
				)
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return apperrors.NewUnauthorized(
					apperrors.ErrCodeTokenMalformed,
					"Authorization header must be a bearer token.",
				)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			email, err := verifier.Verify(tokenString)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return apperrors.NewUnauthorized(
						apperrors.ErrCodeTokenExpired,
						"Token has expired.",
					)
				}
				return apperrors.NewUnauthorized(
					apperrors.ErrCodeTokenInvalid,
					"Invalid token.",
				)
			}

			c.Set(ContextKeyAdminEmail, email)
			return next(c)
		}
	}
}

// AdminEmail returns the authenticated admin email set by the JWT middleware.
func AdminEmail(c echo.Context) string {
	if email, ok := c.Get(ContextKeyAdminEmail).(string); ok {
		return email
	}
	return ""
}
