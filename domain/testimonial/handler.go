package testimonial

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/utils"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// Handler serves public testimonial reads and admin testimonial writes.
type Handler struct {
	repo Repository
	log  logger.Logger
}

func NewHandler(repo Repository, log logger.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.WithComponent("testimonial"),
	}
}

// List returns testimonials, published-only by default, newest first.
func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{
		PublishedOnly: true,
		Page:          1,
		Limit:         defaultLimit,
	}

	if v := c.QueryParam("published_only"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "published_only must be a boolean.")
		}
		filter.PublishedOnly = published
	}
	if v := c.QueryParam("featured_only"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "featured_only must be a boolean.")
		}
		filter.FeaturedOnly = featured
	}
	if page, limit, appErr := utils.ParsePagination(c, defaultLimit, maxLimit); appErr != nil {
		return appErr
	} else {
		filter.Page, filter.Limit = page, limit
	}

	items, total, err := h.repo.List(c.Request().Context(), filter)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch testimonials.", err)
	}

	return apperrors.RespondWithSuccess(c, ListResponse{
		Success: true,
		Data:    items,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Pages:   utils.PageCount(total, filter.Limit),
	})
}

// Create stores a new testimonial. Published defaults to true when omitted.
func (h *Handler) Create(c echo.Context) error {
	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	t := &Testimonial{
		ClientName:      req.ClientName,
		ClientPosition:  req.ClientPosition,
		ClientCompany:   req.ClientCompany,
		ClientImage:     req.ClientImage,
		TestimonialText: req.TestimonialText,
		Rating:          req.Rating,
		Featured:        req.Featured,
		Published:       published,
	}

	if err := h.repo.Create(c.Request().Context(), t); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to create testimonial.", err)
	}

	h.log.Info("Testimonial created", logger.String("testimonial_id", t.ID))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success:       true,
		Message:       "Testimonial created",
		TestimonialID: t.ID,
	})
}

// Update applies a partial update.
func (h *Handler) Update(c echo.Context) error {
	id := c.Param("id")

	req := new(UpdateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if req.IsEmpty() {
		return apperrors.NewBadRequest(apperrors.ErrCodeEmptyUpdate, "No fields to update")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	patch := Patch{
		ClientName:      req.ClientName,
		ClientPosition:  req.ClientPosition,
		ClientCompany:   req.ClientCompany,
		ClientImage:     req.ClientImage,
		TestimonialText: req.TestimonialText,
		Rating:          req.Rating,
		Featured:        req.Featured,
		Published:       req.Published,
	}

	if err := h.repo.Update(c.Request().Context(), id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeTestimonialNotFound, "Testimonial not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update testimonial.", err)
	}

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Testimonial updated",
	})
}

// Delete removes a testimonial permanently.
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeTestimonialNotFound, "Testimonial not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to delete testimonial.", err)
	}

	h.log.Info("Testimonial deleted", logger.String("testimonial_id", id))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Testimonial deleted",
	})
}
