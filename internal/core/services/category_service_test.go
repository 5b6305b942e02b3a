package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/dto"
)

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return categories, token, args.Error(2)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name:                "Laptops",
		DepreciationMethod:  "STRAIGHT_LINE",
		UsefulLifeYears:     intPtr(5),
		SalvageValuePercent: 10,
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Laptops" && c.DepreciationMethod == domain.StraightLine && c.SalvageValuePercent == 10
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, "admin-1")

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), category.CategoryID)
	assert.Equal(suite.T(), "admin-1", category.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidMethod() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Laptops", DepreciationMethod: "SUM_OF_YEARS"}

	category, err := suite.service.CreateCategory(ctx, req, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrInvalidDepreciationMethod)
	assert.Nil(suite.T(), category)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateCategoryRequest{
		Name:               "Laptops",
		DepreciationMethod: "STRAIGHT_LINE",
		ParentCategoryID:   &parentID,
	}

	suite.mockRepo.On("FindCategoryByID", ctx, parentID).Return(nil, apperrors.NewNotFoundError("category not found")).Once()

	category, err := suite.service.CreateCategory(ctx, req, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrParentCategoryNotFound)
	assert.Nil(suite.T(), category)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_SelfParentRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{
		CategoryID:         categoryID,
		Name:               "Laptops",
		DepreciationMethod: domain.StraightLine,
	}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{ParentCategoryID: &categoryID}, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrCategorySelfParent)
	assert.Nil(suite.T(), category)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_ChangesPolicy() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{
		CategoryID:          categoryID,
		Name:                "Laptops",
		DepreciationMethod:  domain.StraightLine,
		SalvageValuePercent: 10,
	}
	newMethod := "DECLINING_BALANCE"

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.DepreciationMethod == domain.DecliningBalance && c.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{DepreciationMethod: &newMethod}, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.DecliningBalance, category.DepreciationMethod)
}

func (suite *CategoryServiceTestSuite) TestListCategories_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListCategories", ctx, 20, (*string)(nil)).Return([]domain.Category{}, nil, nil).Once()

	categories, token, err := suite.service.ListCategories(ctx, 0, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), categories)
	assert.Nil(suite.T(), token)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
