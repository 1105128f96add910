package handlers

import (
	"net/http"

	"github.com/HARRSHA-G/desk/internal/services"
	"github.com/HARRSHA-G/desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetReport handles building the consolidated period report for the
// inclusive [from_date, to_date] range.
func (h *ReportHandler) GetReport(c *gin.Context) {
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")
	if fromDate == "" || toDate == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "from_date and to_date query parameters are required.", ""))
		return
	}

	report, err := h.reportService.BuildReport(fromDate, toDate)
	if err != nil {
		respondServiceError(c, err, "GetReport: Error from reportService.BuildReport")
		return
	}
	c.JSON(http.StatusOK, report)
}

// SaveSnapshot handles persisting the totals of a computed report.
func (h *ReportHandler) SaveSnapshot(c *gin.Context) {
	var req struct {
		FromDate string `json:"from_date" binding:"required"`
		ToDate   string `json:"to_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SaveSnapshot: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	snapshot, err := h.reportService.SaveSnapshot(req.FromDate, req.ToDate)
	if err != nil {
		respondServiceError(c, err, "SaveSnapshot: Error from reportService.SaveSnapshot")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// GetSnapshots handles listing saved report snapshots, newest first.
func (h *ReportHandler) GetSnapshots(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	snapshots, totalCount, err := h.reportService.GetSnapshots(page, pageSize)
	if err != nil {
		respondServiceError(c, err, "GetSnapshots: Error from reportService.GetSnapshots")
		return
	}
	respondPaginated(c, snapshots, totalCount, page, pageSize)
}
