package handlers

import (
	"net/http"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles the creation of a new irumudi booking, with an
// optional advance payment collected at the counter.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBooking: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.CreateBooking(req)
	if err != nil {
		respondServiceError(c, err, "CreateBooking: Error from bookingService.CreateBooking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// RecordPayment handles a balance payment against an existing booking.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	receiptCode := c.Param("code")

	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordPayment: Failed to bind JSON for "+receiptCode)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.RecordPayment(receiptCode, req)
	if err != nil {
		respondServiceError(c, err, "RecordPayment: Error from bookingService.RecordPayment for "+receiptCode)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBooking handles fetching a single booking with its payment history.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	receiptCode := c.Param("code")

	booking, err := h.bookingService.GetBookingByReceiptCode(receiptCode)
	if err != nil {
		respondServiceError(c, err, "GetBooking: Error from bookingService.GetBookingByReceiptCode for "+receiptCode)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookings handles listing bookings with filters: outstanding=true for
// the dues register, scheduled_from/scheduled_to for the schedule board,
// receipt_from/receipt_to for a code-range query.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	var filters models.BookingFilters

	if outstanding := c.Query("outstanding"); outstanding == "true" {
		filters.OutstandingOnly = true
	}
	if fromStr := c.Query("scheduled_from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid scheduled_from format. Use YYYY-MM-DD.", err.Error()))
			return
		}
		filters.ScheduledFrom = &from
	}
	if toStr := c.Query("scheduled_to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid scheduled_to format. Use YYYY-MM-DD.", err.Error()))
			return
		}
		filters.ScheduledTo = &to
	}
	if receiptFrom := c.Query("receipt_from"); receiptFrom != "" {
		filters.ReceiptCodeFrom = &receiptFrom
	}
	if receiptTo := c.Query("receipt_to"); receiptTo != "" {
		filters.ReceiptCodeTo = &receiptTo
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}
	filters.Page = page
	filters.PageSize = pageSize

	bookings, totalCount, err := h.bookingService.GetBookings(filters)
	if err != nil {
		respondServiceError(c, err, "GetBookings: Error from bookingService.GetBookings")
		return
	}
	respondPaginated(c, bookings, totalCount, page, pageSize)
}
