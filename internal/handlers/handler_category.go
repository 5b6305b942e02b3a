package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(categoryService portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a category with its depreciation policy
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
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
	logger.Info("Received request to create category", slog.String("category_name", req.Name))

	newCategory, err := h.categoryService.CreateCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDepreciationMethod) ||
			errors.Is(err, services.ErrParentCategoryNotFound) ||
			errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating category", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Category name already in use", slog.String("category_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "Category name already in use"})
		} else {
			logger.Error("Failed to create category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		}
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", newCategory.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*newCategory))
}

// getCategory godoc
// @Summary Get a category by ID
// @Description Retrieves details for a specific category
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to retrieve category"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("id")

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found", slog.String("category_id", categoryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to get category from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves a paginated list of categories
// @Tags categories
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, nextToken := parseListQuery(c)

	categories, token, err := h.categoryService.ListCategories(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token for ListCategories", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list categories from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListCategoriesResponse{
		Categories: dto.ToCategoryResponses(categories),
		NextToken:  token,
	})
}

// updateCategory godoc
// @Summary Update a category
// @Description Applies the non-nil fields of the request to a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Category fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("id")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("target_category_id", categoryID), slog.String("updater_user_id", updaterUserID))

	updatedCategory, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else if errors.Is(err, services.ErrInvalidDepreciationMethod) ||
			errors.Is(err, services.ErrParentCategoryNotFound) ||
			errors.Is(err, services.ErrCategorySelfParent) ||
			errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating category", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}

	logger.Info("Category updated successfully")
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*updatedCategory))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("id")

	err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found for deletion", slog.String("category_id", categoryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to delete category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}

	logger.Info("Category deleted successfully", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

// parseListQuery extracts the shared limit/nextToken pagination query params.
func parseListQuery(c *gin.Context) (int, *string) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 && parsed <= 100 {
			limit = parsed
		}
	}
	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}
	return limit, nextToken
}
