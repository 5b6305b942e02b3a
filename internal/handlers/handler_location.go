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

// locationHandler handles HTTP requests related to locations.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(locationService portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{
		locationService: locationService,
	}
}

// registerLocationRoutes registers routes related to locations.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.POST("", h.createLocation)
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocation)
		locations.PUT("/:id", h.updateLocation)
		locations.DELETE("/:id", h.deleteLocation)
	}
}

// createLocation godoc
// @Summary Create a new location
// @Tags locations
// @Accept  json
// @Produce  json
// @Param   location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create location"
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, services.ErrParentLocationNotFound) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating location", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create location in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
		}
		return
	}

	logger.Info("Location created successfully", slog.String("location_id", location.LocationID))
	c.JSON(http.StatusCreated, dto.ToLocationResponse(*location))
}

// getLocation godoc
// @Summary Get a location by ID
// @Tags locations
// @Produce  json
// @Param   id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Failed to retrieve location"
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *locationHandler) getLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("id")

	location, err := h.locationService.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			logger.Error("Failed to get location from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve location"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(*location))
}

// listLocations godoc
// @Summary List locations
// @Tags locations
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLocationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list locations"
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, nextToken := parseListQuery(c)

	locations, token, err := h.locationService.ListLocations(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list locations from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListLocationsResponse{
		Locations: dto.ToLocationResponses(locations),
		NextToken: token,
	})
}

// updateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept  json
// @Produce  json
// @Param   id path string true "Location ID"
// @Param   location body dto.UpdateLocationRequest true "Location fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Failed to update location"
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("id")

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), locationID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else if errors.Is(err, services.ErrParentLocationNotFound) ||
			errors.Is(err, services.ErrLocationSelfParent) ||
			errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating location", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update location in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(*location))
}

// deleteLocation godoc
// @Summary Delete a location
// @Tags locations
// @Produce  json
// @Param   id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Failed to delete location"
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *locationHandler) deleteLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("id")

	err := h.locationService.DeleteLocation(c.Request.Context(), locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		} else {
			logger.Error("Failed to delete location in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
