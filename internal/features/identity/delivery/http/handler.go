package http

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metchera-backend/internal/common/errors"
	"metchera-backend/internal/common/middleware"
	"metchera-backend/internal/features/identity/models"
	"metchera-backend/internal/features/identity/service"
	"metchera-backend/internal/features/verification"
)

type IdentityHandler struct {
	service service.IdentityService
}

func NewIdentityHandler(service service.IdentityService) *IdentityHandler {
	return &IdentityHandler{service: service}
}

func (h *IdentityHandler) RegisterRoutes(router *gin.RouterGroup) {
	identities := router.Group("/identities")
	{
		identities.POST("", h.createIdentity)
		identities.GET("", h.listIdentities)
		identities.GET("/:id", h.getIdentity)
		identities.DELETE("/:id", h.deleteIdentity)
		identities.PUT("/:id/autodelete", h.updateAutoDelete)
		identities.GET("/:id/verification", h.getVerificationPayload)
	}
	router.POST("/verification/decode", h.decodeVerificationPayload)
}

type createIdentityRequest struct {
	DocumentType      string `json:"document_type"`
	AutoDeleteMinutes int    `json:"auto_delete_minutes"`
}

func (h *IdentityHandler) createIdentity(c *gin.Context) {
	var req createIdentityRequest
	// An empty body means all defaults. Chunked bodies carry no length, so
	// bind unconditionally and treat EOF as the empty case.
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Invalid request body"))
		return
	}

	identity, err := h.service.CreateIdentity(c.Request.Context(), models.DocumentType(req.DocumentType), req.AutoDeleteMinutes)
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, identity)
}

func (h *IdentityHandler) listIdentities(c *gin.Context) {
	count := 10
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.SendError(c, errors.NewValidationError("count", "must be an integer"))
			return
		}
		count = parsed
	}

	identities, err := h.service.ListRecent(c.Request.Context(), count)
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"identities": identities})
}

func (h *IdentityHandler) getIdentity(c *gin.Context) {
	identity, err := h.service.GetIdentity(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

func (h *IdentityHandler) deleteIdentity(c *gin.Context) {
	if err := h.service.DeleteIdentity(c.Request.Context(), c.Param("id")); err != nil {
		middleware.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type updateAutoDeleteRequest struct {
	Enabled        bool `json:"enabled"`
	TimeoutMinutes int  `json:"timeout_minutes" binding:"required"`
}

func (h *IdentityHandler) updateAutoDelete(c *gin.Context) {
	var req updateAutoDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Invalid request body"))
		return
	}

	identity, err := h.service.UpdateAutoDelete(c.Request.Context(), c.Param("id"), req.Enabled, req.TimeoutMinutes)
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

func (h *IdentityHandler) getVerificationPayload(c *gin.Context) {
	identity, err := h.service.GetIdentity(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	payload, err := verification.FromIdentity(identity)
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	encoded, err := payload.Encode()
	if err != nil {
		middleware.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": encoded})
}

type decodePayloadRequest struct {
	Payload string `json:"payload" binding:"required"`
}

func (h *IdentityHandler) decodeVerificationPayload(c *gin.Context) {
	var req decodePayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Invalid request body"))
		return
	}

	// Invalid payloads are a structured result, not an HTTP error.
	c.JSON(http.StatusOK, verification.Decode(req.Payload))
}
