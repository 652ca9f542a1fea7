package handler

import (
	"io"
	"net/http"

	"aacboard-backend/internal/domains/asset"
	"aacboard-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single asset upload. The board runs on one
// device; anything past this is a mistake, not a use case.
const maxUploadBytes = 32 << 20

type AssetHandler struct {
	service asset.Service
}

func NewAssetHandler(svc asset.Service) *AssetHandler {
	return &AssetHandler{service: svc}
}

// ========== UPLOAD: POST /v1/assets (multipart: kind, file) ==========
func (h *AssetHandler) Upload(c *gin.Context) {
	kind := asset.Kind(c.PostForm("kind"))
	if !kind.IsValid() {
		response.BadRequest(c, "kind must be audio or image")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "file exceeds upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	blob, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if int64(len(blob)) > maxUploadBytes {
		response.BadRequest(c, "file exceeds upload limit")
		return
	}

	key, err := h.service.Put(c.Request.Context(), kind, fileHeader.Filename, blob)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"key": key})
}

// ========== LIST: GET /v1/assets?kind=image ==========
func (h *AssetHandler) List(c *gin.Context) {
	var kind *asset.Kind
	if raw := c.Query("kind"); raw != "" {
		k := asset.Kind(raw)
		if !k.IsValid() {
			response.BadRequest(c, "kind must be audio or image")
			return
		}
		kind = &k
	}

	assets, err := h.service.List(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, assets)
}

// ========== READ: GET /v1/assets/:key ==========
func (h *AssetHandler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ========== DELETE: DELETE /v1/assets/:key ==========
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("key")})
}

// ========== HANDLE: POST /v1/assets/:key/handles ==========
func (h *AssetHandler) MintHandle(c *gin.Context) {
	handle, err := h.service.GetHandle(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":  handle.ID,
		"url": "/api/v1/assets/handles/" + handle.ID,
	})
}

// ========== HANDLE: GET /v1/assets/handles/:id ==========
// Streams the bytes behind a live handle. Released handles are gone.
func (h *AssetHandler) ServeHandle(c *gin.Context) {
	handle, ok := h.service.LookupHandle(c.Param("id"))
	if !ok {
		response.NotFound(c, "handle not found")
		return
	}
	c.Data(http.StatusOK, handle.ContentType, handle.Data)
}

// ========== HANDLE: DELETE /v1/assets/handles/:id ==========
func (h *AssetHandler) ReleaseHandle(c *gin.Context) {
	if err := h.service.ReleaseHandle(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"released": c.Param("id")})
}

func respondError(c *gin.Context, err error) {
	status := asset.GetHTTPStatusCode(err)
	response.ErrorResponse(c, status, response.CodeForStatus(status), err.Error())
}
