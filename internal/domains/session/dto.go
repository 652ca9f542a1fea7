package session

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// OpenReq - request body for POST /v1/sessions
type OpenReq struct {
	PageID string `json:"page_id" binding:"required"`
}

func (r OpenReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PageID, validation.Required.Error("page id is required")),
	)
}

// AuthorizeReq - request body for POST /v1/sessions/:id/authorize
type AuthorizeReq struct {
	Password string `json:"password" binding:"required"`
}

func (r AuthorizeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// ChangePasswordReq - request body for PUT /v1/sessions/:id/password.
// The source accepts any non-empty password, so no strength rules here.
type ChangePasswordReq struct {
	Password string `json:"password" binding:"required"`
}

func (r ChangePasswordReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// OpenResp - freshly opened session, still locked
type OpenResp struct {
	SessionID string `json:"session_id"`
	PageID    string `json:"page_id"`
	Status    Status `json:"status"`
}

// AuthorizeResp - token grants draft access until the deadline
type AuthorizeResp struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	Deadline  time.Time `json:"deadline"`
}
