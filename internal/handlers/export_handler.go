package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// ExportHandler handles expense history export requests.
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV streams the user's full expense history as a CSV attachment.
// @Summary     Export expenses
// @Description Download the full expense history as CSV
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Status(http.StatusOK)

	if err := h.exportService.WriteCSV(userID, c.Writer); err != nil {
		// Headers are already out; log and abort the stream.
		_ = c.Error(err)
	}
}
