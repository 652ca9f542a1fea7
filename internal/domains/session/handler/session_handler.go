package handler

import (
	"net/http"

	"aacboard-backend/internal/domains/board"
	"aacboard-backend/internal/domains/session"
	"aacboard-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{service: svc}
}

// ========== OPEN: POST /v1/sessions ==========
func (h *SessionHandler) Open(c *gin.Context) {
	var req session.OpenReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sess, err := h.service.Open(c.Request.Context(), req.PageID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, session.OpenResp{
		SessionID: sess.ID,
		PageID:    sess.PageID,
		Status:    sess.Status,
	})
}

// ========== AUTHORIZE: POST /v1/sessions/:id/authorize ==========
func (h *SessionHandler) Authorize(c *gin.Context) {
	var req session.AuthorizeReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, deadline, err := h.service.Authorize(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session.AuthorizeResp{
		SessionID: c.Param("id"),
		Token:     token,
		Deadline:  deadline,
	})
}

// ========== READ: GET /v1/sessions/:id ==========
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess)
}

// ========== DRAFT: GET /v1/sessions/:id/draft ==========
func (h *SessionHandler) Draft(c *gin.Context) {
	draft, err := h.service.Draft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, draft)
}

// ========== DRAFT: PUT /v1/sessions/:id/draft ==========
func (h *SessionHandler) UpdateDraft(c *gin.Context) {
	var patch board.PagePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	draft, err := h.service.UpdateDraft(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, draft)
}

// ========== DRAFT TILE: POST /v1/sessions/:id/draft/tiles ==========
func (h *SessionHandler) AddDraftTile(c *gin.Context) {
	var req board.TileReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tile, err := h.service.AddDraftTile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tile)
}

// ========== DRAFT TILE: PUT /v1/sessions/:id/draft/tiles/:tileId ==========
func (h *SessionHandler) UpdateDraftTile(c *gin.Context) {
	var patch board.TilePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tile, err := h.service.UpdateDraftTile(c.Request.Context(), c.Param("id"), c.Param("tileId"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tile)
}

// ========== DRAFT TILE: DELETE /v1/sessions/:id/draft/tiles/:tileId ==========
func (h *SessionHandler) RemoveDraftTile(c *gin.Context) {
	if err := h.service.RemoveDraftTile(c.Request.Context(), c.Param("id"), c.Param("tileId")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("tileId")})
}

// ========== PASSWORD: PUT /v1/sessions/:id/password ==========
func (h *SessionHandler) ChangePassword(c *gin.Context) {
	var req session.ChangePasswordReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"changed": true})
}

// ========== SAVE: POST /v1/sessions/:id/save ==========
func (h *SessionHandler) Save(c *gin.Context) {
	page, err := h.service.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== CANCEL: POST /v1/sessions/:id/cancel ==========
func (h *SessionHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": c.Param("id")})
}

func respondError(c *gin.Context, err error) {
	status := session.GetHTTPStatusCode(err)
	response.ErrorResponse(c, status, response.CodeForStatus(status), err.Error())
}
