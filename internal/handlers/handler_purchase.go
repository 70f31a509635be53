package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/purchase_exchange_app/internal/dto"
	"github.com/SscSPs/purchase_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const countryCurrencyParam = "countryCurrency"

// purchaseHandler handles HTTP requests related to purchases and their conversion.
type purchaseHandler struct {
	purchaseService   portssvc.PurchaseSvcFacade
	conversionService portssvc.ConversionSvc
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade, cs portssvc.ConversionSvc) *purchaseHandler {
	return &purchaseHandler{
		purchaseService:   ps,
		conversionService: cs,
	}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, ps portssvc.PurchaseSvcFacade, cs portssvc.ConversionSvc) {
	h := newPurchaseHandler(ps, cs)

	purchases := rg.Group("/purchase")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("/:id", h.getPurchase)
		purchases.GET("/:id/exchange", h.getConvertedPurchase)
	}
}

// createPurchase godoc
// @Summary Store a purchase
// @Description Records a purchase in USD. The amount is rounded to cents and the purchase gets a unique identifier.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create purchase"
// @Security BearerAuth
// @Router /purchase [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := validationErrorFields(verrs)
			logger.Warn("Purchase request failed validation", slog.Any("fields", fields))
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: "Validation failed", Fields: fields})
			return
		}
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a stored purchase
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} dto.ErrorResponse "Purchase not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve purchase"
// @Security BearerAuth
// @Router /purchase/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase from service", slog.String("purchase_id", purchaseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// getConvertedPurchase godoc
// @Summary Convert a purchase into another currency
// @Description Applies the most recent Treasury exchange rate dated within six months before the purchase date.
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Param   countryCurrency query string true "Treasury country-currency descriptor, e.g. Canada-Dollar"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "No usable exchange rate or invalid currency"
// @Failure 404 {object} dto.ErrorResponse "Purchase not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to convert purchase"
// @Security BearerAuth
// @Router /purchase/{id}/exchange [get]
func (h *purchaseHandler) getConvertedPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")
	countryCurrency := c.Query(countryCurrencyParam)

	if strings.TrimSpace(countryCurrency) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "countryCurrency query parameter is required"})
		return
	}

	logger = logger.With(slog.String("purchase_id", purchaseID), slog.String("country_currency", countryCurrency))

	result, err := h.conversionService.GetConvertedPurchase(c.Request.Context(), purchaseID, countryCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Purchase not found"})
		case errors.Is(err, apperrors.ErrCurrencyNotFound), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Purchase could not be converted", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to convert purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to convert purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
