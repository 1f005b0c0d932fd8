package blog

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
	defaultLimit = 10
	maxLimit     = 50
)

// Handler serves public blog reads and admin blog writes.
type Handler struct {
	repo      Repository
	sanitizer *bluemonday.Policy
	log       logger.Logger
}

func NewHandler(repo Repository, log logger.Logger) *Handler {
	return &Handler{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log.WithComponent("blog"),
	}
}

// List returns a paginated blog listing, published-only by default.
func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{
		PublishedOnly: true,
		Category:      c.QueryParam("category"),
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

	posts, total, err := h.repo.List(c.Request().Context(), filter)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch blog posts.", err)
	}

	return apperrors.RespondWithSuccess(c, ListResponse{
		Success: true,
		Data:    posts,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Pages:   utils.PageCount(total, filter.Limit),
	})
}

// GetBySlug returns a single post and increments its view counter once per
// call. The returned snapshot carries the pre-increment count.
func (h *Handler) GetBySlug(c echo.Context) error {
	slug := c.Param("slug")

	post, err := h.repo.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodePostNotFound, "Blog post not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch blog post.", err)
	}

	if err := h.repo.IncrementViews(c.Request().Context(), post.ID); err != nil {
		// The read succeeded; a lost view increment is not worth a 500.
		h.log.Error("Failed to increment views", err, logger.PostID(post.ID))
	}

	return apperrors.RespondWithSuccess(c, post)
}

// Create stores a new post with a slug derived from the title.
func (h *Handler) Create(c echo.Context) error {
	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	post := &BlogPost{
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		Excerpt:       req.Excerpt,
		Content:       h.sanitizer.Sanitize(req.Content),
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          pq.StringArray(req.Tags),
		Published:     req.Published,
	}

	if err := h.repo.Create(c.Request().Context(), post); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to create blog post.", err)
	}

	h.log.Info("Blog post created", logger.PostID(post.ID), logger.Slug(post.Slug))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Blog post created",
		PostID:  post.ID,
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
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		Published:     req.Published,
	}
	if req.Title != nil {
		slug := utils.Slugify(*req.Title)
		patch.Slug = &slug
	}
	if req.Content != nil {
		sanitized := h.sanitizer.Sanitize(*req.Content)
		patch.Content = &sanitized
	}

	if err := h.repo.Update(c.Request().Context(), id, patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodePostNotFound, "Blog post not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update blog post.", err)
	}

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Blog post updated",
	})
}

// Delete removes a post permanently.
func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodePostNotFound, "Blog post not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to delete blog post.", err)
	}

	h.log.Info("Blog post deleted", logger.PostID(id))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Blog post deleted",
	})
}
