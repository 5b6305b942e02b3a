package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// vendorHandler handles HTTP requests related to vendors.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vendorService portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{
		vendorService: vendorService,
	}
}

// registerVendorRoutes registers routes related to vendors.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
	}
}

// createVendor godoc
// @Summary Create a new vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		}
		return
	}

	logger.Info("Vendor created successfully", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, dto.ToVendorResponse(*vendor))
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vendor"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			logger.Error("Failed to get vendor from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(*vendor))
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, nextToken := parseListQuery(c)

	vendors, token, err := h.vendorService.ListVendors(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list vendors from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vendors"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListVendorsResponse{
		Vendors:   dto.ToVendorResponses(vendors),
		NextToken: token,
	})
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Vendor fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to update vendor"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), vendorID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(*vendor))
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to delete vendor"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("id")

	err := h.vendorService.DeleteVendor(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		} else {
			logger.Error("Failed to delete vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
