package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
)

// userHandler handles cashier lookup requests.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers cashier lookup routes.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := newUserHandler(us)

	rg.GET("/cashiers", h.getCashiers)
}

// getCashiers godoc
// @Summary List cashiers for a POS profile
// @Description Returns the user IDs assigned to the given POS profile.
// @Tags users
// @Produce json
// @Param posProfile query string true "POS Profile name"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse "Missing posProfile"
// @Failure 500 {object} ErrorResponse "Failed to retrieve cashiers"
// @Security BearerAuth
// @Router /cashiers [get]
func (h *userHandler) getCashiers(c *gin.Context) {
	posProfile := c.Query("posProfile")
	if posProfile == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "posProfile query parameter is required"})
		return
	}

	cashiers, err := h.userService.GetCashiers(c.Request.Context(), posProfile)
	if err != nil {
		respondError(c, err, "Failed to retrieve cashiers")
		return
	}

	c.JSON(http.StatusOK, cashiers)
}
