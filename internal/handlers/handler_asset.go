package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// assetHandler handles HTTP requests related to assets and their lifecycle.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(assetService portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: assetService,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:id", h.getAsset)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
		assets.POST("/:id/assign", h.assignAsset)
		assets.POST("/:id/return", h.returnAsset)
		assets.PUT("/:id/status", h.updateAssetStatus)
		assets.GET("/:id/assignments", h.listAssignments)
	}
}

// createAsset godoc
// @Summary Register a new asset
// @Description Creates a new asset in AVAILABLE status
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Asset tag already in use"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create asset", slog.String("asset_tag", req.AssetTag))

	newAsset, err := h.assetService.CreateAsset(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating asset", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Asset tag already in use", slog.String("asset_tag", req.AssetTag))
			c.JSON(http.StatusConflict, gin.H{"error": "Asset tag already in use"})
		} else {
			logger.Error("Failed to create asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		}
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", newAsset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(*newAsset))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Description Retrieves details for a specific asset
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves a filtered, paginated list of assets
// @Tags assets
// @Produce  json
// @Param   status query string false "Filter by lifecycle status"
// @Param   categoryId query string false "Filter by category"
// @Param   locationId query string false "Filter by location"
// @Param   departmentId query string false "Filter by department"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	assets, nextToken, err := h.assetService.ListAssets(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAssetStatusFilter) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid asset list filter", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{
		Assets:    dto.ToAssetResponses(assets),
		NextToken: nextToken,
	})
}

// updateAsset godoc
// @Summary Update an asset
// @Description Applies the non-nil fields of the request to an asset
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   asset body dto.UpdateAssetRequest true "Asset fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to update asset"
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_asset_id", assetID), slog.String("updater_user_id", updaterUserID))

	updatedAsset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating asset", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		}
		return
	}

	logger.Info("Asset updated successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(*updatedAsset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Removes an asset and its history
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	err := h.assetService.DeleteAsset(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for deletion", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to delete asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		}
		return
	}

	logger.Info("Asset deleted successfully", slog.String("asset_id", assetID))
	c.Status(http.StatusNoContent)
}

// assignAsset godoc
// @Summary Assign an asset
// @Description Hands the asset to a custodian and moves it to ASSIGNED
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   assignment body dto.AssignAssetRequest true "Assignment details"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already assigned or not assignable"
// @Failure 500 {object} map[string]string "Failed to assign asset"
// @Security BearerAuth
// @Router /assets/{id}/assign [post]
func (h *assetHandler) assignAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_asset_id", assetID), slog.String("assignee_id", req.AssigneeID))
	logger.Info("Received request to assign asset")

	asset, err := h.assetService.AssignAsset(c.Request.Context(), assetID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for assignment")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, services.ErrAssetAlreadyAssigned) {
			logger.Warn("Asset already assigned")
			c.JSON(http.StatusConflict, gin.H{"error": "Asset is already assigned"})
		} else if errors.Is(err, services.ErrAssetNotAssignable) {
			logger.Warn("Asset not assignable from its current status")
			c.JSON(http.StatusConflict, gin.H{"error": "Asset cannot be assigned from its current status"})
		} else {
			logger.Error("Failed to assign asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign asset"})
		}
		return
	}

	logger.Info("Asset assigned successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// returnAsset godoc
// @Summary Return an assigned asset
// @Description Closes the open assignment and moves the asset back to AVAILABLE
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   return body dto.ReturnAssetRequest true "Return details"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is not currently assigned"
// @Failure 500 {object} map[string]string "Failed to return asset"
// @Security BearerAuth
// @Router /assets/{id}/return [post]
func (h *assetHandler) returnAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.ReturnAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReturnAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_asset_id", assetID))
	logger.Info("Received request to return asset")

	asset, err := h.assetService.ReturnAsset(c.Request.Context(), assetID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for return")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, services.ErrAssetNotAssigned) {
			logger.Warn("Asset is not currently assigned")
			c.JSON(http.StatusConflict, gin.H{"error": "Asset is not currently assigned"})
		} else {
			logger.Error("Failed to return asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return asset"})
		}
		return
	}

	logger.Info("Asset returned successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// updateAssetStatus godoc
// @Summary Change an asset's lifecycle status
// @Description Moves the asset directly to the given status. Assignment transitions must use assign/return.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   status body dto.UpdateAssetStatusRequest true "Target status"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Failure 500 {object} map[string]string "Failed to update asset status"
// @Security BearerAuth
// @Router /assets/{id}/status [put]
func (h *assetHandler) updateAssetStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.UpdateAssetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAssetStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_asset_id", assetID), slog.String("target_status", req.Status))
	logger.Info("Received request to update asset status")

	asset, err := h.assetService.SetAssetStatus(c.Request.Context(), assetID, domain.AssetStatus(req.Status), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, services.ErrInvalidStatusTransition) {
			logger.Warn("Invalid status transition", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating asset status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update asset status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset status"})
		}
		return
	}

	logger.Info("Asset status updated successfully")
	c.JSON(http.StatusOK, dto.ToAssetResponse(*asset))
}

// listAssignments godoc
// @Summary List an asset's assignment history
// @Description Retrieves all assignments for the asset, most recent first
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {array} dto.AssignmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to list assignments"
// @Security BearerAuth
// @Router /assets/{id}/assignments [get]
func (h *assetHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	assignments, err := h.assetService.ListAssignments(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for assignment listing", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to list assignments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponses(assignments))
}
