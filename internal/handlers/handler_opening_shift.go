package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/middleware"
)

// openingShiftHandler handles HTTP requests for opening shift sessions and
// their invoices.
type openingShiftHandler struct {
	openingShiftService portssvc.OpeningShiftSvcFacade
	invoiceService      portssvc.InvoiceSvcFacade
}

func newOpeningShiftHandler(oss portssvc.OpeningShiftSvcFacade, is portssvc.InvoiceSvcFacade) *openingShiftHandler {
	return &openingShiftHandler{
		openingShiftService: oss,
		invoiceService:      is,
	}
}

// registerOpeningShiftRoutes registers routes related to opening shifts.
func registerOpeningShiftRoutes(rg *gin.RouterGroup, oss portssvc.OpeningShiftSvcFacade, is portssvc.InvoiceSvcFacade) {
	h := newOpeningShiftHandler(oss, is)

	shifts := rg.Group("/opening-shifts")
	{
		shifts.POST("", h.createOpeningShift)
		shifts.GET("/:openingShiftID", h.getOpeningShift)
		shifts.GET("/:openingShiftID/invoices", h.getShiftInvoices)
		shifts.DELETE("/:openingShiftID/draft-invoices", h.deleteDraftInvoices)
	}
}

// createOpeningShift godoc
// @Summary Open a cashier session
// @Description Creates a new opening shift with the declared starting balances.
// @Tags opening-shifts
// @Accept json
// @Produce json
// @Param shift body dto.CreateOpeningShiftRequest true "Opening shift details"
// @Success 201 {object} dto.OpeningShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create opening shift"
// @Security BearerAuth
// @Router /opening-shifts [post]
func (h *openingShiftHandler) createOpeningShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOpeningShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createOpeningShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shift, err := h.openingShiftService.CreateOpeningShift(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create opening shift")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOpeningShiftResponse(shift))
}

// getOpeningShift godoc
// @Summary Get an opening shift
// @Description Retrieves an opening shift with its balance details.
// @Tags opening-shifts
// @Produce json
// @Param openingShiftID path string true "Opening Shift ID"
// @Success 200 {object} dto.OpeningShiftResponse
// @Failure 404 {object} ErrorResponse "Opening shift not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve opening shift"
// @Security BearerAuth
// @Router /opening-shifts/{openingShiftID} [get]
func (h *openingShiftHandler) getOpeningShift(c *gin.Context) {
	openingShiftID := c.Param("openingShiftID")

	shift, err := h.openingShiftService.GetOpeningShiftByID(c.Request.Context(), openingShiftID)
	if err != nil {
		respondError(c, err, "Failed to retrieve opening shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpeningShiftResponse(shift))
}

// getShiftInvoices godoc
// @Summary List the shift's submitted invoices
// @Description Force-submits printed draft invoices of the shift, then returns all submitted invoices with items, taxes and payments.
// @Tags opening-shifts
// @Produce json
// @Param openingShiftID path string true "Opening Shift ID"
// @Success 200 {array} dto.SalesInvoiceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve invoices"
// @Security BearerAuth
// @Router /opening-shifts/{openingShiftID}/invoices [get]
func (h *openingShiftHandler) getShiftInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	openingShiftID := c.Param("openingShiftID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoices, err := h.invoiceService.GetPOSInvoices(c.Request.Context(), openingShiftID, userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesInvoiceResponses(invoices))
}

// deleteDraftInvoices godoc
// @Summary Delete unprinted draft invoices
// @Description Removes the shift's draft invoices that were never printed. Requires the POS profile to allow invoice deletion.
// @Tags opening-shifts
// @Produce json
// @Param openingShiftID path string true "Opening Shift ID"
// @Success 200 {object} map[string]int64
// @Failure 403 {object} ErrorResponse "Deletion not allowed for this POS profile"
// @Failure 404 {object} ErrorResponse "Opening shift not found"
// @Failure 500 {object} ErrorResponse "Failed to delete draft invoices"
// @Security BearerAuth
// @Router /opening-shifts/{openingShiftID}/draft-invoices [delete]
func (h *openingShiftHandler) deleteDraftInvoices(c *gin.Context) {
	openingShiftID := c.Param("openingShiftID")

	deleted, err := h.invoiceService.DeleteDraftInvoices(c.Request.Context(), openingShiftID)
	if err != nil {
		respondError(c, err, "Failed to delete draft invoices")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
