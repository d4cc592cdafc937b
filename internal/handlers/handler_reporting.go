package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/middleware"
)

// reportingHandler handles the read-only shift reporting requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the shift reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	rg.POST("/shift-details", h.getShiftDetails)
}

// getShiftDetails godoc
// @Summary Get the shift summary
// @Description Aggregates sales, returns and collections for an opening shift, returned together with the declared opening balances. Display only.
// @Tags reporting
// @Accept json
// @Produce json
// @Param openingShift body dto.OpeningShiftPayload true "Opening shift payload"
// @Success 200 {object} dto.ShiftDetailsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Opening shift not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve shift details"
// @Security BearerAuth
// @Router /shift-details [post]
func (h *reportingHandler) getShiftDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var payload dto.OpeningShiftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Failed to bind JSON for getShiftDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	summary, balances, err := h.reportingService.GetShiftDetails(c.Request.Context(), payload.OpeningShiftID)
	if err != nil {
		respondError(c, err, "Failed to retrieve shift details")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftDetailsResponse(summary, balances))
}
