package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// MockAssetRepository is a mock type for the AssetRepositoryWithTx interface
type MockAssetRepository struct {
	mock.Mock
}

var _ portsrepo.AssetRepositoryWithTx = (*MockAssetRepository)(nil)

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetWithCategory(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetFilter, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var assets []domain.Asset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.Asset)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return assets, token, args.Error(2)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) AssignAsset(ctx context.Context, assignment domain.Assignment, updatedBy string) error {
	args := m.Called(ctx, assignment, updatedBy)
	return args.Error(0)
}

func (m *MockAssetRepository) ReturnAsset(ctx context.Context, assetID string, returnNotes *string, returnedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, assetID, returnNotes, returnedAt, updatedBy)
	return args.Error(0)
}

func (m *MockAssetRepository) FindOpenAssignment(ctx context.Context, assetID string) (*domain.Assignment, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssetRepository) ListAssignmentsByAsset(ctx context.Context, assetID string) ([]domain.Assignment, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

func (m *MockAssetRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAssetRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAssetRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockCategoryService is a mock type for the CategorySvcFacade interface
type MockCategoryService struct {
	mock.Mock
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, limit int, nextToken *string) ([]domain.Category, *string, error) {
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

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockAssetRepository
	mockCategorySvc *MockCategoryService
	service         portssvc.AssetSvcFacade
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.mockCategorySvc = new(MockCategoryService)
	suite.service = services.NewAssetService(suite.mockRepo, suite.mockCategorySvc)
}

func strPtr(s string) *string {
	return &s
}

func availableAsset(assetID string) *domain.Asset {
	now := time.Now()
	return &domain.Asset{
		AssetID:  assetID,
		Name:     "Dell Latitude 5540",
		AssetTag: "LT-0042",
		Status:   domain.Available,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed",
		},
	}
}

// --- Test Cases ---

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAssetRequest{
		Name:     "Dell Latitude 5540",
		AssetTag: "LT-0042",
	}

	suite.mockRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	created, err := suite.service.CreateAsset(ctx, req, creatorUserID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), created)
	assert.NotEmpty(suite.T(), created.AssetID)
	assert.Equal(suite.T(), domain.Available, created.Status)
	assert.Equal(suite.T(), creatorUserID, created.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_UnknownCategoryFails() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateAssetRequest{
		Name:       "Dell Latitude 5540",
		AssetTag:   "LT-0042",
		CategoryID: &categoryID,
	}

	suite.mockCategorySvc.On("GetCategoryByID", ctx, categoryID).Return(nil, apperrors.NewNotFoundError("category not found")).Once()

	created, err := suite.service.CreateAsset(ctx, req, uuid.NewString())

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestAssignAsset_FromAvailable() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	req := dto.AssignAssetRequest{AssigneeID: "emp-1001", Notes: strPtr("issued for field work")}

	assignedAsset := *asset
	assignedAsset.Status = domain.Assigned

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("AssignAsset", ctx, mock.MatchedBy(func(a domain.Assignment) bool {
		return a.AssetID == assetID && a.AssigneeID == "emp-1001" && a.ReturnedAt == nil
	}), "admin-1").Return(nil).Once()
	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(&assignedAsset, nil).Once()

	result, err := suite.service.AssignAsset(ctx, assetID, req, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Assigned, result.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestAssignAsset_FromMaintenance() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.InMaintenance

	assignedAsset := *asset
	assignedAsset.Status = domain.Assigned

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("AssignAsset", ctx, mock.AnythingOfType("domain.Assignment"), "admin-1").Return(nil).Once()
	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(&assignedAsset, nil).Once()

	result, err := suite.service.AssignAsset(ctx, assetID, dto.AssignAssetRequest{AssigneeID: "emp-1001"}, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Assigned, result.Status)
}

func (suite *AssetServiceTestSuite) TestAssignAsset_AlreadyAssigned() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Assigned

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.AssignAsset(ctx, assetID, dto.AssignAssetRequest{AssigneeID: "emp-1001"}, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrAssetAlreadyAssigned)
	assert.Nil(suite.T(), result)
	suite.mockRepo.AssertNotCalled(suite.T(), "AssignAsset", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestAssignAsset_RetiredNotAssignable() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Retired

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.AssignAsset(ctx, assetID, dto.AssignAssetRequest{AssigneeID: "emp-1001"}, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrAssetNotAssignable)
	assert.Nil(suite.T(), result)
}

func (suite *AssetServiceTestSuite) TestAssignAsset_ConcurrentConflict() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("AssignAsset", ctx, mock.AnythingOfType("domain.Assignment"), "admin-1").Return(apperrors.ErrConflict).Once()

	result, err := suite.service.AssignAsset(ctx, assetID, dto.AssignAssetRequest{AssigneeID: "emp-1001"}, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrAssetAlreadyAssigned)
	assert.Nil(suite.T(), result)
}

func (suite *AssetServiceTestSuite) TestReturnAsset_MergesNotes() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Assigned

	openAssignment := &domain.Assignment{
		AssignmentID: uuid.NewString(),
		AssetID:      assetID,
		AssigneeID:   "emp-1001",
		AssignedAt:   time.Now().Add(-48 * time.Hour),
		Notes:        strPtr("issued for field work"),
	}

	returnedAsset := *asset
	returnedAsset.Status = domain.Available

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("FindOpenAssignment", ctx, assetID).Return(openAssignment, nil).Once()
	suite.mockRepo.On("ReturnAsset", ctx, assetID, mock.MatchedBy(func(notes *string) bool {
		return notes != nil && *notes == "issued for field work\nReturn: damaged screen"
	}), mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()
	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(&returnedAsset, nil).Once()

	result, err := suite.service.ReturnAsset(ctx, assetID, dto.ReturnAssetRequest{Notes: strPtr("damaged screen")}, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Available, result.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestReturnAsset_NotAssigned() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.ReturnAsset(ctx, assetID, dto.ReturnAssetRequest{}, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrAssetNotAssigned)
	assert.Nil(suite.T(), result)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReturnAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestReturnAsset_RepairsMissingAssignment() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Assigned

	returnedAsset := *asset
	returnedAsset.Status = domain.Available

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("FindOpenAssignment", ctx, assetID).Return(nil, apperrors.NewNotFoundError("no open assignment")).Once()
	// Without an open assignment there is nothing to merge notes into.
	suite.mockRepo.On("ReturnAsset", ctx, assetID, (*string)(nil), mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()
	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(&returnedAsset, nil).Once()

	result, err := suite.service.ReturnAsset(ctx, assetID, dto.ReturnAssetRequest{Notes: strPtr("found in storage")}, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Available, result.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestSetAssetStatus_ToMaintenance() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Status == domain.InMaintenance
	})).Return(nil).Once()

	result, err := suite.service.SetAssetStatus(ctx, assetID, domain.InMaintenance, "admin-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.InMaintenance, result.Status)
}

func (suite *AssetServiceTestSuite) TestSetAssetStatus_AssignedRejected() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.SetAssetStatus(ctx, assetID, domain.Assigned, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), result)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestSetAssetStatus_DisposedIsTerminal() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Disposed

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.SetAssetStatus(ctx, assetID, domain.Available, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), result)
}

func (suite *AssetServiceTestSuite) TestSetAssetStatus_RetiredOnlyToDisposed() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := availableAsset(assetID)
	asset.Status = domain.Retired

	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(asset, nil).Once()

	result, err := suite.service.SetAssetStatus(ctx, assetID, domain.Available, "admin-1")
	assert.ErrorIs(suite.T(), err, services.ErrInvalidStatusTransition)
	assert.Nil(suite.T(), result)

	retired := availableAsset(assetID)
	retired.Status = domain.Retired
	suite.mockRepo.On("FindAssetByID", ctx, assetID).Return(retired, nil).Once()
	suite.mockRepo.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Status == domain.Disposed
	})).Return(nil).Once()

	result, err = suite.service.SetAssetStatus(ctx, assetID, domain.Disposed, "admin-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.Disposed, result.Status)
}

func (suite *AssetServiceTestSuite) TestListAssets_InvalidStatusFilter() {
	ctx := context.Background()
	badStatus := "BORROWED"

	assets, token, err := suite.service.ListAssets(ctx, dto.ListAssetsParams{Status: &badStatus})

	assert.ErrorIs(suite.T(), err, services.ErrInvalidAssetStatusFilter)
	assert.Nil(suite.T(), assets)
	assert.Nil(suite.T(), token)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAssets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
