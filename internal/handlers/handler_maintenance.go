package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// maintenanceHandler handles HTTP requests for maintenance records and schedules.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

func newMaintenanceHandler(maintenanceService portssvc.MaintenanceSvcFacade) *maintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// registerMaintenanceRoutes registers routes related to maintenance.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := newMaintenanceHandler(maintenanceService)

	assets := rg.Group("/assets")
	{
		assets.POST("/:id/maintenance", h.createRecord)
		assets.GET("/:id/maintenance", h.listRecordsByAsset)
		assets.POST("/:id/maintenance-schedules", h.createSchedule)
		assets.GET("/:id/maintenance-schedules", h.listSchedulesByAsset)
	}

	records := rg.Group("/maintenance")
	{
		records.GET("/:id", h.getRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}

	schedules := rg.Group("/maintenance-schedules")
	{
		schedules.GET("/upcoming", h.listUpcomingSchedules)
		schedules.PUT("/:id", h.updateSchedule)
		schedules.DELETE("/:id", h.deleteSchedule)
	}
}

// createRecord godoc
// @Summary Log maintenance on an asset
// @Description Creates a maintenance record for the asset
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   record body dto.CreateMaintenanceRecordRequest true "Maintenance details"
// @Success 201 {object} dto.MaintenanceRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to create maintenance record"
// @Security BearerAuth
// @Router /assets/{id}/maintenance [post]
func (h *maintenanceHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.CreateMaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMaintenanceRecord", slog.String("error", err.Error()))
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

	record, err := h.maintenanceService.CreateRecord(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for maintenance record")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, services.ErrInvalidMaintenanceType) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating maintenance record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create maintenance record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance record"})
		}
		return
	}

	logger.Info("Maintenance record created successfully", slog.String("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToMaintenanceRecordResponse(*record))
}

// listRecordsByAsset godoc
// @Summary List an asset's maintenance records
// @Description Retrieves a paginated list of the asset's maintenance history
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMaintenanceRecordsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to list maintenance records"
// @Security BearerAuth
// @Router /assets/{id}/maintenance [get]
func (h *maintenanceHandler) listRecordsByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	limit, nextToken := parseListQuery(c)

	records, token, err := h.maintenanceService.ListRecordsByAsset(c.Request.Context(), assetID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for maintenance listing", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for maintenance listing", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list maintenance records from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list maintenance records"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListMaintenanceRecordsResponse{
		Records:   dto.ToMaintenanceRecordResponses(records),
		NextToken: token,
	})
}

// getRecord godoc
// @Summary Get a maintenance record by ID
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Maintenance record ID"
// @Success 200 {object} dto.MaintenanceRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Maintenance record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve maintenance record"
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *maintenanceHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	record, err := h.maintenanceService.GetRecordByID(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Maintenance record not found", slog.String("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		} else {
			logger.Error("Failed to get maintenance record from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve maintenance record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceRecordResponse(*record))
}

// updateRecord godoc
// @Summary Update a maintenance record
// @Description Applies the non-nil fields of the request to a record
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Maintenance record ID"
// @Param   record body dto.UpdateMaintenanceRecordRequest true "Record fields to update"
// @Success 200 {object} dto.MaintenanceRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Maintenance record not found"
// @Failure 500 {object} map[string]string "Failed to update maintenance record"
// @Security BearerAuth
// @Router /maintenance/{id} [put]
func (h *maintenanceHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	var req dto.UpdateMaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMaintenanceRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.maintenanceService.UpdateRecord(c.Request.Context(), recordID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Maintenance record not found for update", slog.String("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		} else if errors.Is(err, services.ErrInvalidMaintenanceType) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating maintenance record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update maintenance record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance record"})
		}
		return
	}

	logger.Info("Maintenance record updated successfully", slog.String("record_id", recordID))
	c.JSON(http.StatusOK, dto.ToMaintenanceRecordResponse(*record))
}

// deleteRecord godoc
// @Summary Delete a maintenance record
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Maintenance record ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Maintenance record not found"
// @Failure 500 {object} map[string]string "Failed to delete maintenance record"
// @Security BearerAuth
// @Router /maintenance/{id} [delete]
func (h *maintenanceHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("id")

	err := h.maintenanceService.DeleteRecord(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Maintenance record not found for deletion", slog.String("record_id", recordID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		} else {
			logger.Error("Failed to delete maintenance record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// createSchedule godoc
// @Summary Create a maintenance schedule
// @Description Creates a recurring maintenance schedule for the asset
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   schedule body dto.CreateMaintenanceScheduleRequest true "Schedule details"
// @Success 201 {object} dto.MaintenanceScheduleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to create maintenance schedule"
// @Security BearerAuth
// @Router /assets/{id}/maintenance-schedules [post]
func (h *maintenanceHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	var req dto.CreateMaintenanceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMaintenanceSchedule", slog.String("error", err.Error()))
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

	schedule, err := h.maintenanceService.CreateSchedule(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for maintenance schedule")
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating maintenance schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create maintenance schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance schedule"})
		}
		return
	}

	logger.Info("Maintenance schedule created successfully", slog.String("schedule_id", schedule.ScheduleID))
	c.JSON(http.StatusCreated, dto.ToMaintenanceScheduleResponse(*schedule))
}

// listSchedulesByAsset godoc
// @Summary List an asset's maintenance schedules
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {array} dto.MaintenanceScheduleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to list maintenance schedules"
// @Security BearerAuth
// @Router /assets/{id}/maintenance-schedules [get]
func (h *maintenanceHandler) listSchedulesByAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	schedules, err := h.maintenanceService.ListSchedulesByAsset(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found for schedule listing", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to list maintenance schedules from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list maintenance schedules"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceScheduleResponses(schedules))
}

// listUpcomingSchedules godoc
// @Summary List upcoming maintenance
// @Description Retrieves active schedules due within the given number of days
// @Tags maintenance
// @Produce  json
// @Param   withinDays query int false "Horizon in days" default(30)
// @Success 200 {array} dto.MaintenanceScheduleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list upcoming maintenance"
// @Security BearerAuth
// @Router /maintenance-schedules/upcoming [get]
func (h *maintenanceHandler) listUpcomingSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	withinDays := 30
	if raw := c.Query("withinDays"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			withinDays = parsed
		}
	}

	schedules, err := h.maintenanceService.ListUpcomingSchedules(c.Request.Context(), withinDays, time.Now())
	if err != nil {
		logger.Error("Failed to list upcoming maintenance from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list upcoming maintenance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceScheduleResponses(schedules))
}

// updateSchedule godoc
// @Summary Update a maintenance schedule
// @Description Applies the non-nil fields of the request to a schedule
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Schedule ID"
// @Param   schedule body dto.UpdateMaintenanceScheduleRequest true "Schedule fields to update"
// @Success 200 {object} dto.MaintenanceScheduleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to update maintenance schedule"
// @Security BearerAuth
// @Router /maintenance-schedules/{id} [put]
func (h *maintenanceHandler) updateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	var req dto.UpdateMaintenanceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMaintenanceSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	schedule, err := h.maintenanceService.UpdateSchedule(c.Request.Context(), scheduleID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found for update", slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating maintenance schedule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update maintenance schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance schedule"})
		}
		return
	}

	logger.Info("Maintenance schedule updated successfully", slog.String("schedule_id", scheduleID))
	c.JSON(http.StatusOK, dto.ToMaintenanceScheduleResponse(*schedule))
}

// deleteSchedule godoc
// @Summary Delete a maintenance schedule
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Failed to delete maintenance schedule"
// @Security BearerAuth
// @Router /maintenance-schedules/{id} [delete]
func (h *maintenanceHandler) deleteSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scheduleID := c.Param("id")

	err := h.maintenanceService.DeleteSchedule(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Schedule not found for deletion", slog.String("schedule_id", scheduleID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else {
			logger.Error("Failed to delete maintenance schedule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete maintenance schedule"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
