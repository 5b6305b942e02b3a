package dto

import (
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name                string  `json:"name" binding:"required,max=255"`
	Description         *string `json:"description,omitempty"`
	ParentCategoryID    *string `json:"parentCategoryId,omitempty"`
	DepreciationMethod  string  `json:"depreciationMethod" binding:"required,depreciationmethod"`
	UsefulLifeYears     *int    `json:"usefulLifeYears,omitempty" binding:"omitempty,min=1,max=100"`
	SalvageValuePercent int     `json:"salvageValuePercent" binding:"min=0,max=100"`
}

// UpdateCategoryRequest defines the payload for updating a category. Nil
// fields are left unchanged.
type UpdateCategoryRequest struct {
	Name                *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description         *string `json:"description,omitempty"`
	ParentCategoryID    *string `json:"parentCategoryId,omitempty"`
	DepreciationMethod  *string `json:"depreciationMethod,omitempty" binding:"omitempty,depreciationmethod"`
	UsefulLifeYears     *int    `json:"usefulLifeYears,omitempty" binding:"omitempty,min=1,max=100"`
	SalvageValuePercent *int    `json:"salvageValuePercent,omitempty" binding:"omitempty,min=0,max=100"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	CategoryID          string                    `json:"categoryId"`
	Name                string                    `json:"name"`
	Description         *string                   `json:"description,omitempty"`
	ParentCategoryID    *string                   `json:"parentCategoryId,omitempty"`
	DepreciationMethod  domain.DepreciationMethod `json:"depreciationMethod"`
	UsefulLifeYears     *int                      `json:"usefulLifeYears,omitempty"`
	SalvageValuePercent int                       `json:"salvageValuePercent"`
	CreatedAt           time.Time                 `json:"createdAt"`
	LastUpdatedAt       time.Time                 `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain category to its API representation.
func ToCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:          category.CategoryID,
		Name:                category.Name,
		Description:         category.Description,
		ParentCategoryID:    category.ParentCategoryID,
		DepreciationMethod:  category.DepreciationMethod,
		UsefulLifeYears:     category.UsefulLifeYears,
		SalvageValuePercent: category.SalvageValuePercent,
		CreatedAt:           category.CreatedAt,
		LastUpdatedAt:       category.LastUpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, ToCategoryResponse(category))
	}
	return responses
}

// ListCategoriesResponse is a paginated page of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	NextToken  *string            `json:"nextToken,omitempty"`
}
