package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/services"
)

// DashboardHandler handles spending summary requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardQuery holds the optional month selection. Both default to the
// current calendar month.
type DashboardQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970"`
	Month int `form:"month" binding:"omitempty,month"`
}

// GetDashboard handles the monthly spending summary.
// @Summary     Monthly dashboard
// @Description Total spend, remaining budget, percentage used, and per-category subtotals for one month
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year (default: current)"
// @Param       month query int false "Month 1-12 (default: current)"
// @Success     200 {object} services.Summary "Spending summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	now := time.Now().UTC()
	year, month := query.Year, time.Month(query.Month)
	if query.Year == 0 {
		year = now.Year()
	}
	if query.Month == 0 {
		month = now.Month()
	}

	start, end := services.MonthWindow(year, month)
	summary, err := h.dashboardService.GetSummary(userID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
