package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/middleware"
)

// closingShiftHandler handles HTTP requests for the closing shift workflow.
type closingShiftHandler struct {
	closingShiftService portssvc.ClosingShiftSvcFacade
}

func newClosingShiftHandler(css portssvc.ClosingShiftSvcFacade) *closingShiftHandler {
	return &closingShiftHandler{closingShiftService: css}
}

// registerClosingShiftRoutes registers routes related to closing shifts.
func registerClosingShiftRoutes(rg *gin.RouterGroup, css portssvc.ClosingShiftSvcFacade) {
	h := newClosingShiftHandler(css)

	shifts := rg.Group("/closing-shifts")
	{
		shifts.POST("/draft", h.buildClosingDraft)
		shifts.POST("", h.submitClosingShift)
		shifts.GET("/:closingShiftID", h.getClosingShift)
	}
}

// buildClosingDraft godoc
// @Summary Build a closing shift draft
// @Description Aggregates the opening shift's invoices into an unpersisted closing draft with expected amounts, merged taxes and the invoice audit trail. Printed draft invoices are force-submitted first.
// @Tags closing-shifts
// @Accept json
// @Produce json
// @Param openingShift body dto.OpeningShiftPayload true "Opening shift payload"
// @Success 200 {object} dto.ClosingShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to build closing draft"
// @Security BearerAuth
// @Router /closing-shifts/draft [post]
func (h *closingShiftHandler) buildClosingDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var payload dto.OpeningShiftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Failed to bind JSON for buildClosingDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.closingShiftService.BuildClosingDraft(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err, "Failed to build closing draft")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingShiftResponse(draft))
}

// submitClosingShift godoc
// @Summary Submit a closing shift
// @Description Validates the closing shift (period overlap, opening shift state), recomputes the payment differences and submits it, closing the opening shift atomically.
// @Tags closing-shifts
// @Accept json
// @Produce json
// @Param closingShift body dto.ClosingShiftPayload true "Closing shift payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Period overlap or opening shift not open"
// @Failure 500 {object} ErrorResponse "Failed to submit closing shift"
// @Security BearerAuth
// @Router /closing-shifts [post]
func (h *closingShiftHandler) submitClosingShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var payload dto.ClosingShiftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn("Failed to bind JSON for submitClosingShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	submitterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Submitter user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	closingShiftID, err := h.closingShiftService.SubmitClosingShift(c.Request.Context(), payload, submitterUserID)
	if err != nil {
		respondError(c, err, "Failed to submit closing shift")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"closingShiftID": closingShiftID})
}

// getClosingShift godoc
// @Summary Get a closing shift
// @Description Retrieves a closing shift with its payment reconciliation, tax and transaction lines.
// @Tags closing-shifts
// @Produce json
// @Param closingShiftID path string true "Closing Shift ID"
// @Success 200 {object} dto.ClosingShiftResponse
// @Failure 404 {object} ErrorResponse "Closing shift not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve closing shift"
// @Security BearerAuth
// @Router /closing-shifts/{closingShiftID} [get]
func (h *closingShiftHandler) getClosingShift(c *gin.Context) {
	closingShiftID := c.Param("closingShiftID")

	closing, err := h.closingShiftService.GetClosingShiftByID(c.Request.Context(), closingShiftID)
	if err != nil {
		respondError(c, err, "Failed to retrieve closing shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingShiftResponse(closing))
}
