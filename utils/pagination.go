package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketing-platform/pkg/apperrors"
)

// ParsePagination reads page and limit query parameters. Page must be >= 1
// and limit must be within [1, maxLimit]; absent values take defaults.
func ParsePagination(c echo.Context, defaultLimit, maxLimit int) (int, int, *apperrors.AppError) {
	page := 1
	limit := defaultLimit

	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return 0, 0, apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "page must be a positive integer.")
		}
		page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 || l > maxLimit {
			return 0, 0, apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput,
				"limit must be between 1 and "+strconv.Itoa(maxLimit)+".")
		}
		limit = l
	}

	return page, limit, nil
}

// PageCount returns the number of pages needed for total items at the given
// page size.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
