package handler

import (
	"net/http"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/internal/domains/navigation"
	"aacboard-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct {
	service navigation.Service
}

func NewNavigationHandler(svc navigation.Service) *NavigationHandler {
	return &NavigationHandler{service: svc}
}

// ========== RESOLVE: GET /v1/resolve?path=/p/hungry ==========
func (h *NavigationHandler) Resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.BadRequest(c, "path query parameter is required")
		return
	}

	resolved, err := h.service.Resolve(c.Request.Context(), path)
	if err != nil {
		status := board.GetHTTPStatusCode(err)
		response.ErrorResponse(c, status, response.CodeForStatus(status), err.Error())
		return
	}
	response.Success(c, http.StatusOK, resolved)
}
