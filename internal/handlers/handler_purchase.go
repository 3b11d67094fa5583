package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/SscSPs/purchase_conversion_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
	currencyService portssvc.CatalogReaderSvc
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade, cs portssvc.CatalogReaderSvc) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps, currencyService: cs}
}

// RegisterPurchaseRoutes registers the purchase routes on an already authenticated group.
func RegisterPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, currencyService portssvc.CatalogReaderSvc) {
	h := newPurchaseHandler(purchaseService, currencyService)

	rg.POST("", h.createPurchase)
	rg.GET("", h.listPurchases)
	rg.GET("/converted", h.listConvertedPurchases)
	rg.GET("/countries", h.listCountries)
	rg.GET("/:id", h.getPurchase)
	rg.DELETE("/:id", h.deletePurchase)
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Stores a USD purchase. The country must be one of /purchases/countries.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unsupported country"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to create purchase"
// @Security ApiKeyAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
		} else {
			logger.Error("Failed to create purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create purchase"})
		}
		return
	}

	logger.Info("Purchase created successfully", slog.String("purchase_id", purchase.ID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Description Lists every purchase, newest purchase date first
// @Tags purchases
// @Produce  json
// @Success 200 {array} dto.PurchaseResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to list purchases"
// @Security ApiKeyAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list purchases from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(purchases))
}

// getPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID (UUID)"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve purchase"
// @Security ApiKeyAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("purchase_id", id))

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// listConvertedPurchases godoc
// @Summary List purchases converted to a currency
// @Description Converts every purchase with the newest Treasury rate published within six months before its date.
// @Description Purchases without such a rate are returned with null convertedAmount and exchangeRate.
// @Tags purchases
// @Produce  json
// @Param   currency query string false "Treasury currency descriptor, e.g. Canada-Dollar" default(United States-Dollar)
// @Success 200 {array} dto.PurchaseWithConversionResponse
// @Failure 400 {object} ErrorResponse "Blank currency"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to convert purchases"
// @Security ApiKeyAuth
// @Router /purchases/converted [get]
func (h *purchaseHandler) listConvertedPurchases(c *gin.Context) {
	target, present := c.GetQuery("currency")
	if !present {
		target = domain.USDDescriptor
	}
	logger := middleware.GetLoggerFromContext(c).With(slog.String("currency", target))

	converted, err := h.purchaseService.ListPurchasesWithConversion(c.Request.Context(), target)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Currency is required"})
		} else {
			logger.Error("Failed to convert purchases", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert purchases"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseWithConversionResponse(converted))
}

// listCountries godoc
// @Summary List supported countries
// @Description Country/currency pairs accepted when recording a purchase
// @Tags purchases
// @Produce  json
// @Success 200 {array} dto.CountryCurrencyResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to list countries"
// @Security ApiKeyAuth
// @Router /purchases/countries [get]
func (h *purchaseHandler) listCountries(c *gin.Context) {
	entries, err := h.currencyService.ListCatalog(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to list countries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list countries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountryCurrencyResponse(entries))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Tags purchases
// @Param   id path string true "Purchase ID (UUID)"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to delete purchase"
// @Security ApiKeyAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("purchase_id", id))

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase not found"})
		} else {
			logger.Error("Failed to delete purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete purchase"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// validationMessage strips the sentinel prefix from a validation error.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidation.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}
