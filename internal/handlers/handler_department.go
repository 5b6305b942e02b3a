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

// departmentHandler handles HTTP requests related to departments.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(departmentService portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{
		departmentService: departmentService,
	}
}

// registerDepartmentRoutes registers routes related to departments.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.GET("/:id", h.getDepartment)
		departments.PUT("/:id", h.updateDepartment)
		departments.DELETE("/:id", h.deleteDepartment)
	}
}

// createDepartment godoc
// @Summary Create a new department
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create department"
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, services.ErrParentDepartmentNotFound) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating department", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create department in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
		}
		return
	}

	logger.Info("Department created successfully", slog.String("department_id", department.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(*department))
}

// getDepartment godoc
// @Summary Get a department by ID
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Failed to retrieve department"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		} else {
			logger.Error("Failed to get department from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve department"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(*department))
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list departments"
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, nextToken := parseListQuery(c)

	departments, token, err := h.departmentService.ListDepartments(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list departments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list departments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListDepartmentsResponse{
		Departments: dto.ToDepartmentResponses(departments),
		NextToken:   token,
	})
}

// updateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   id path string true "Department ID"
// @Param   department body dto.UpdateDepartmentRequest true "Department fields to update"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Failed to update department"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), departmentID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		} else if errors.Is(err, services.ErrParentDepartmentNotFound) ||
			errors.Is(err, services.ErrDepartmentSelfParent) ||
			errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating department", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update department in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(*department))
}

// deleteDepartment godoc
// @Summary Delete a department
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Department not found"
// @Failure 500 {object} map[string]string "Failed to delete department"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	departmentID := c.Param("id")

	err := h.departmentService.DeleteDepartment(c.Request.Context(), departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		} else {
			logger.Error("Failed to delete department in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
