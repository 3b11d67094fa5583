package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/SscSPs/purchase_conversion_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// apiKeyHandler handles API key management requests
type apiKeyHandler struct {
	keyService portssvc.APIKeySvcFacade
}

// RegisterAPIKeyRoutes registers the API key management routes under /apikeys
func RegisterAPIKeyRoutes(rg *gin.RouterGroup, keyService portssvc.APIKeySvcFacade) {
	h := &apiKeyHandler{keyService: keyService}

	keys := rg.Group("/apikeys")
	{
		keys.POST("", h.createAPIKey)
		keys.GET("", h.listAPIKeys)
		keys.GET("/:id", h.getAPIKey)
		keys.DELETE("/:id", h.deleteAPIKey)
	}
}

// createAPIKey godoc
// @Summary Create an API key
// @Description Issues a new "wk_" key valid through the given expiration date
// @Tags apikeys
// @Accept json
// @Produce json
// @Param request body dto.CreateAPIKeyRequest true "API key details"
// @Success 201 {object} dto.APIKeyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create API key"
// @Router /apikeys [post]
func (h *apiKeyHandler) createAPIKey(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAPIKey", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	key, err := h.keyService.CreateAPIKey(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "API key already exists, please retry"})
		default:
			logger.Error("Failed to create API key", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create API key"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAPIKeyResponse(key))
}

// listAPIKeys godoc
// @Summary List API keys
// @Tags apikeys
// @Produce json
// @Success 200 {array} dto.APIKeyResponse
// @Failure 500 {object} ErrorResponse "Failed to list API keys"
// @Router /apikeys [get]
func (h *apiKeyHandler) listAPIKeys(c *gin.Context) {
	keys, err := h.keyService.ListAPIKeys(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list API keys", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list API keys"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAPIKeyResponseList(keys))
}

// getAPIKey godoc
// @Summary Get an API key
// @Tags apikeys
// @Produce json
// @Param id path int true "API key ID"
// @Success 200 {object} dto.APIKeyResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "API key not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve API key"
// @Router /apikeys/{id} [get]
func (h *apiKeyHandler) getAPIKey(c *gin.Context) {
	id, ok := parseKeyID(c)
	if !ok {
		return
	}

	key, err := h.keyService.GetAPIKeyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "API key not found"})
		} else {
			middleware.GetLoggerFromContext(c).Error("Failed to get API key", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve API key"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAPIKeyResponse(key))
}

// deleteAPIKey godoc
// @Summary Delete an API key
// @Tags apikeys
// @Param id path int true "API key ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "API key not found"
// @Failure 500 {object} ErrorResponse "Failed to delete API key"
// @Router /apikeys/{id} [delete]
func (h *apiKeyHandler) deleteAPIKey(c *gin.Context) {
	id, ok := parseKeyID(c)
	if !ok {
		return
	}

	if err := h.keyService.DeleteAPIKey(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "API key not found"})
		} else {
			middleware.GetLoggerFromContext(c).Error("Failed to delete API key", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete API key"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func parseKeyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "API key ID must be a positive integer"})
		return 0, false
	}
	return id, true
}
