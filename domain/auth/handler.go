package auth

import (
	"errors"

	"github.com/labstack/echo/v4"

	"marketing-platform/middleware"
	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/pkg/token"
	"marketing-platform/utils"
)

// Handler serves admin registration, login and identity lookup.
type Handler struct {
	repo   Repository
	tokens *token.Service
	log    logger.Logger
}

func NewHandler(repo Repository, tokens *token.Service, log logger.Logger) *Handler {
	return &Handler{
		repo:   repo,
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// Register creates a new admin identity. Setup-only: the route is public but
// duplicate emails are rejected.
func (h *Handler) Register(c echo.Context) error {
	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Registration failed.", err)
	}

	user, err := h.repo.Create(c.Request().Context(), req.Email, req.Name, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return apperrors.NewBadRequest(apperrors.ErrCodeResourceExists, "User already exists")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Registration failed.", err)
	}

	h.log.Info("Admin user registered", logger.Email(user.Email))

	return apperrors.RespondWithSuccess(c, RegisterResponse{
		Success: true,
		Message: "Admin user created successfully",
		UserID:  user.ID,
	})
}

// Login verifies credentials and returns a bearer token. Unknown email and
// wrong password produce the same response.
func (h *Handler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}

	user, err := h.repo.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, "Incorrect email or password")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Login failed.", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		h.log.Warn("Failed login attempt", logger.Email(req.Email))
		return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, "Incorrect email or password")
	}

	accessToken, err := h.tokens.Issue(user.Email)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Login failed.", err)
	}

	h.log.Info("Admin logged in", logger.Email(user.Email))

	return apperrors.RespondWithSuccess(c, LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// Me returns the caller's identity, minus the password hash.
func (h *Handler) Me(c echo.Context) error {
	email := middleware.AdminEmail(c)

	user, err := h.repo.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeUserNotFound, "User not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to get user info.", err)
	}

	return apperrors.RespondWithSuccess(c, user)
}
