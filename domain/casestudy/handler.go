package casestudy

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/microcosm-cc/bluemonday"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/utils"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// Handler serves public case-study reads and admin case-study writes.
type Handler struct {
	repo      Repository
	sanitizer *bluemonday.Policy
	log       logger.Logger
}

func NewHandler(repo Repository, log logger.Logger) *Handler {
	return &Handler{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log.WithComponent("casestudy"),
	}
}

// List returns case studies, published-only by default, newest first.
func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{
		PublishedOnly: true,
		Industry:      c.QueryParam("industry"),
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
	if page, limit, appErr := utils.ParsePagination(c, defaultLimit, maxLimit); appErr != nil {
		return appErr
	} else {
		filter.Page, filter.Limit = page, limit
	}

	items, total, err := h.repo.List(c.Request().Context(), filter)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch case studies.", err)
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

// GetBySlug returns a single case study.
func (h *Handler) GetBySlug(c echo.Context) error {
	slug := c.Param("slug")

	cs, err := h.repo.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeCaseStudyNotFound, "Case study not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch case study.", err)
	}

	return apperrors.RespondWithSuccess(c, cs)
}

// Create stores a new case study with a slug derived from the title.
func (h *Handler) Create(c echo.Context) error {
	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	cs := &CaseStudy{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		ClientName:    req.ClientName,
		ClientLogo:    req.ClientLogo,
		Industry:      req.Industry,
		Challenge:     h.sanitizer.Sanitize(req.Challenge),
		Solution:      h.sanitizer.Sanitize(req.Solution),
		Results:       h.sanitizer.Sanitize(req.Results),
		Technologies:  pq.StringArray(req.Technologies),
		FeaturedImage: req.FeaturedImage,
		GalleryImages: pq.StringArray(req.GalleryImages),
		Published:     req.Published,
	}

	if err := h.repo.Create(c.Request().Context(), cs); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to create case study.", err)
	}

	h.log.Info("Case study created", logger.String("case_study_id", cs.ID), logger.Slug(cs.Slug))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success:     true,
		Message:     "Case study created",
		CaseStudyID: cs.ID,
	})
}

// Update applies a partial update; a title change recomputes the slug.
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
		Title:         req.Title,
		ClientName:    req.ClientName,
		ClientLogo:    req.ClientLogo,
		Industry:      req.Industry,
		Technologies:  req.Technologies,
		FeaturedImage: req.FeaturedImage,
		GalleryImages: req.GalleryImages,
		Published:     req.Published,
	}
	if req.Title != nil {
		slug := utils.Slugify(*req.Title)
		patch.Slug = &slug
	}
	if req.Challenge != nil {
		sanitized := h.sanitizer.Sanitize(*req.Challenge)
		patch.Challenge = &sanitized
	}
	if req.Solution != nil {
		sanitized := h.sanitizer.Sanitize(*req.Solution)
		patch.Solution = &sanitized
	}
	if req.Results != nil {
		sanitized := h.sanitizer.Sanitize(*req.Results)
		patch.Results = &sanitized
	}

	if err := h.repo.Update(c.Request().Context(), id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeCaseStudyNotFound, "Case study not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update case study.", err)
	}

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Case study updated",
	})
}

// Delete removes a case study permanently.
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeCaseStudyNotFound, "Case study not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to delete case study.", err)
	}

	h.log.Info("Case study deleted", logger.String("case_study_id", id))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Case study deleted",
	})
}
