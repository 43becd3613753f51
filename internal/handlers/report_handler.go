package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetbuddy/internal/services"
)

// ReportHandler handles aggregate reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySummary handles the per-month income/expense summary
// @Summary     Monthly summary
// @Description Get a user's per-month income, expense, and net change totals, newest month first
// @Tags        reports
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {array} services.MonthlySummary "Monthly summaries"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id}/monthly-summary [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.reportService.GetMonthlySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetSpendingByCategory handles the per-category spending breakdown
// @Summary     Spending by category
// @Description Get a user's total expense spending grouped by category, highest first
// @Tags        reports
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {array} services.CategorySpending "Category spending"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{id}/spending-by-category [get]
func (h *ReportHandler) GetSpendingByCategory(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	spending, err := h.reportService.GetSpendingByCategory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, spending)
}
