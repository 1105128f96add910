package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page/page_size query parameters with defaults.
// A second return of false means an error response was already written.
func parsePagination(c *gin.Context) (int, int, bool) {
	page := 1
	pageSize := 10

	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid page format.", "page must be a positive integer"))
			return 0, 0, false
		}
		page = parsed
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		parsed, err := strconv.Atoi(pageSizeStr)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid page_size format.", "page_size must be a positive integer"))
			return 0, 0, false
		}
		pageSize = parsed
	}
	return page, pageSize, true
}

// respondServiceError maps the service error taxonomy to HTTP statuses.
// Unrecognized errors become opaque 500s so internals never leak.
func respondServiceError(c *gin.Context, err error, logContext string) {
	utils.LogError(err, logContext)

	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidDateRange):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
	case errors.Is(err, services.ErrInvalidPaymentAmount),
		errors.Is(err, services.ErrChannelSplitMismatch):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeUnprocessable, "Payment amounts are inconsistent.", err.Error()))
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrReceiptNotFound),
		errors.Is(err, services.ErrUnknownItem):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Requested record not found.", err.Error()))
	case errors.Is(err, services.ErrBookingAlreadySettled),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrAllocationConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Request conflicts with ledger state.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal server error.", "Internal error"))
	}
}

func respondPaginated(c *gin.Context, data interface{}, totalCount, page, pageSize int) {
	c.JSON(http.StatusOK, gin.H{
		"data":      data,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}
