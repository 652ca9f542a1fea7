package handler

import (
	"net/http"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	service board.Service
}

func NewBoardHandler(svc board.Service) *BoardHandler {
	return &BoardHandler{service: svc}
}

// ========== LIST: GET /v1/pages ==========
func (h *BoardHandler) List(c *gin.Context) {
	pages := h.service.ListPages(c.Request.Context())
	response.Success(c, http.StatusOK, pages)
}

// ========== READ: GET /v1/pages/:id ==========
func (h *BoardHandler) GetByID(c *gin.Context) {
	page, found := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if !found {
		response.NotFound(c, "page not found")
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== READ: GET /v1/pages/by-path?path=/p/hungry ==========
func (h *BoardHandler) GetByPath(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.BadRequest(c, "path query parameter is required")
		return
	}

	page, found := h.service.GetByPath(c.Request.Context(), path)
	if !found {
		response.NotFound(c, "page not found")
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== CREATE: POST /v1/pages ==========
func (h *BoardHandler) Create(c *gin.Context) {
	var req board.CreatePageReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.CreatePage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, page)
}

// ========== UPDATE: PUT /v1/pages/:id ==========
func (h *BoardHandler) Update(c *gin.Context) {
	var patch board.PagePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.service.UpdatePage(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== DELETE: DELETE /v1/pages/:id ==========
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.service.DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ========== TILE: POST /v1/pages/:id/tiles ==========
func (h *BoardHandler) AddTile(c *gin.Context) {
	var req board.TileReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tile, err := h.service.AddTile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tile)
}

// ========== TILE: PUT /v1/pages/:id/tiles/:tileId ==========
func (h *BoardHandler) UpdateTile(c *gin.Context) {
	var patch board.TilePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tile, err := h.service.UpdateTile(c.Request.Context(), c.Param("id"), c.Param("tileId"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tile)
}

// ========== TILE: DELETE /v1/pages/:id/tiles/:tileId ==========
func (h *BoardHandler) RemoveTile(c *gin.Context) {
	if err := h.service.RemoveTile(c.Request.Context(), c.Param("id"), c.Param("tileId")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("tileId")})
}

func respondError(c *gin.Context, err error) {
	status := board.GetHTTPStatusCode(err)
	response.ErrorResponse(c, status, response.CodeForStatus(status), err.Error())
}
