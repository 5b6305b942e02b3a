package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// depreciationHandler handles HTTP requests for the depreciation engine.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
}

func newDepreciationHandler(depreciationService portssvc.DepreciationSvcFacade) *depreciationHandler {
	return &depreciationHandler{
		depreciationService: depreciationService,
	}
}

// registerDepreciationRoutes registers routes related to depreciation.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	h := newDepreciationHandler(depreciationService)

	assets := rg.Group("/assets")
	{
		assets.POST("/:id/depreciation", h.calculateDepreciation)
		assets.GET("/:id/depreciation", h.getDepreciationHistory)
	}
}

// calculateDepreciation godoc
// @Summary Record a depreciation period
// @Description Computes the next ledger entry for the asset over the requested period and updates its book value
// @Tags depreciation
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   period body dto.CalculateDepreciationRequest true "Accounting period"
// @Success 201 {object} dto.DepreciationEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is fully depreciated"
// @Failure 422 {object} map[string]string "Asset is missing depreciation preconditions"
// @Failure 500 {object} map[string]string "Failed to record depreciation"
// @Security BearerAuth
// @Router /assets/{id}/depreciation [post]
func (h *depreciationHandler) calculateDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.CalculateDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_asset_id", assetID), slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to record depreciation")

	entry, err := h.depreciationService.CalculateDepreciation(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Asset not found for depreciation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		case errors.Is(err, services.ErrInvalidPeriod):
			logger.Warn("Invalid depreciation period", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrMissingPurchasePrice),
			errors.Is(err, services.ErrMissingCategory),
			errors.Is(err, services.ErrDepreciationNotConfigured):
			logger.Warn("Depreciation preconditions not met", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFullyDepreciated):
			logger.Warn("Asset is fully depreciated")
			c.JSON(http.StatusConflict, gin.H{"error": "Asset is fully depreciated"})
		default:
			logger.Error("Failed to record depreciation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record depreciation"})
		}
		return
	}

	logger.Info("Depreciation recorded successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToDepreciationEntryResponse(*entry))
}

// getDepreciationHistory godoc
// @Summary Get an asset's depreciation ledger
// @Description Retrieves the asset's depreciation entries, most recent period first
// @Tags depreciation
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {array} dto.DepreciationEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve depreciation history"
// @Security BearerAuth
// @Router /assets/{id}/depreciation [get]
func (h *depreciationHandler) getDepreciationHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	entries, err := h.depreciationService.GetDepreciationHistory(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for depreciation history", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get depreciation history from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve depreciation history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationEntryResponses(entries))
}
