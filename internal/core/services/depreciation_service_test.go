package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

// MockDepreciationRepository is a mock type for the DepreciationRepositoryFacade interface
type MockDepreciationRepository struct {
	mock.Mock
}

var _ portsrepo.DepreciationRepositoryFacade = (*MockDepreciationRepository)(nil)

func (m *MockDepreciationRepository) FindLatestEntryByAssetID(ctx context.Context, assetID string) (*domain.DepreciationEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationEntry), args.Error(1)
}

func (m *MockDepreciationRepository) ListEntriesByAssetID(ctx context.Context, assetID string) ([]domain.DepreciationEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationEntry), args.Error(1)
}

func (m *MockDepreciationRepository) SaveEntry(ctx context.Context, entry domain.DepreciationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DepreciationServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockAssetRepository
	mockLedger    *MockDepreciationRepository
	service       portssvc.DepreciationSvcFacade
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockLedger = new(MockDepreciationRepository)
	suite.service = services.NewDepreciationService(suite.mockAssetRepo, suite.mockLedger)
}

func intPtr(i int) *int {
	return &i
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDecimal(t assert.TestingT, expected string, actual decimal.Decimal) {
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

// depreciableAsset builds an asset with its category preloaded, the way
// FindAssetWithCategory returns it.
func depreciableAsset(assetID string, method domain.DepreciationMethod, lifeYears *int, salvagePercent int) *domain.Asset {
	now := time.Now()
	asset := availableAsset(assetID)
	asset.PurchasePrice = decPtr("12000")
	categoryID := uuid.NewString()
	asset.CategoryID = &categoryID
	asset.Category = &domain.Category{
		CategoryID:          categoryID,
		Name:                "Laptops",
		DepreciationMethod:  method,
		UsefulLifeYears:     lifeYears,
		SalvageValuePercent: salvagePercent,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed",
		},
	}
	return asset
}

func fullYear2024() dto.CalculateDepreciationRequest {
	return dto.CalculateDepreciationRequest{
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_StraightLineLeapYear() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, intPtr(5), 10)

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(nil, apperrors.NewNotFoundError("ledger empty")).Once()
	suite.mockLedger.On("SaveEntry", ctx, mock.AnythingOfType("domain.DepreciationEntry")).Return(nil).Once()

	// 366 inclusive days against a 365-day year: (12000-1200)/5/365*366
	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.NoError(suite.T(), err)
	assertDecimal(suite.T(), "2165.92", entry.DepreciationAmount)
	assertDecimal(suite.T(), "2165.92", entry.AccumulatedDepreciation)
	assertDecimal(suite.T(), "9834.08", entry.BookValue)
	assert.Equal(suite.T(), assetID, entry.AssetID)
	assert.Equal(suite.T(), "admin-1", entry.CreatedBy)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_DecliningBalance() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.DecliningBalance, intPtr(5), 10)

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(nil, apperrors.NewNotFoundError("ledger empty")).Once()
	suite.mockLedger.On("SaveEntry", ctx, mock.AnythingOfType("domain.DepreciationEntry")).Return(nil).Once()

	// 12000 * (2/5) / 365 * 366
	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.NoError(suite.T(), err)
	assertDecimal(suite.T(), "4813.15", entry.DepreciationAmount)
	assertDecimal(suite.T(), "7186.85", entry.BookValue)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_OpensFromLatestEntry() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.DecliningBalance, intPtr(5), 10)

	latest := &domain.DepreciationEntry{
		EntryID:                 uuid.NewString(),
		AssetID:                 assetID,
		PeriodStart:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:               time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		DepreciationAmount:      decimal.RequireFromString("4813.15"),
		AccumulatedDepreciation: decimal.RequireFromString("4813.15"),
		BookValue:               decimal.RequireFromString("7186.85"),
	}

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(latest, nil).Once()
	suite.mockLedger.On("SaveEntry", ctx, mock.AnythingOfType("domain.DepreciationEntry")).Return(nil).Once()

	req := dto.CalculateDepreciationRequest{
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	entry, err := suite.service.CalculateDepreciation(ctx, assetID, req, "admin-1")

	// 7186.85 * (2/5), 365 days: 2874.74
	assert.NoError(suite.T(), err)
	assertDecimal(suite.T(), "2874.74", entry.DepreciationAmount)
	assertDecimal(suite.T(), "7687.89", entry.AccumulatedDepreciation)
	assertDecimal(suite.T(), "4312.11", entry.BookValue)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_ClampsAtSalvageFloor() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, intPtr(5), 10)

	latest := &domain.DepreciationEntry{
		EntryID:                 uuid.NewString(),
		AssetID:                 assetID,
		AccumulatedDepreciation: decimal.RequireFromString("10650"),
		BookValue:               decimal.RequireFromString("1350"),
	}

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(latest, nil).Once()
	suite.mockLedger.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.DepreciationEntry) bool {
		return e.BookValue.Equal(decimal.RequireFromString("1200"))
	})).Return(nil).Once()

	req := dto.CalculateDepreciationRequest{
		PeriodStart: time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	entry, err := suite.service.CalculateDepreciation(ctx, assetID, req, "admin-1")

	// The raw annual amount of 2160 would cross the 1200 salvage floor, so the
	// written amount is only the remaining 150.
	assert.NoError(suite.T(), err)
	assertDecimal(suite.T(), "150", entry.DepreciationAmount)
	assertDecimal(suite.T(), "10800", entry.AccumulatedDepreciation)
	assertDecimal(suite.T(), "1200", entry.BookValue)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_FullyDepreciated() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, intPtr(5), 10)

	latest := &domain.DepreciationEntry{
		EntryID:                 uuid.NewString(),
		AssetID:                 assetID,
		AccumulatedDepreciation: decimal.RequireFromString("10800"),
		BookValue:               decimal.RequireFromString("1200"),
	}

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(latest, nil).Once()

	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrFullyDepreciated)
	assert.Nil(suite.T(), entry)
	suite.mockLedger.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_DefaultUsefulLife() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, nil, 10)

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()
	suite.mockLedger.On("FindLatestEntryByAssetID", ctx, assetID).Return(nil, apperrors.NewNotFoundError("ledger empty")).Once()
	suite.mockLedger.On("SaveEntry", ctx, mock.AnythingOfType("domain.DepreciationEntry")).Return(nil).Once()

	// An unset useful life falls back to 5 years, same figures as the
	// explicit 5-year case.
	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.NoError(suite.T(), err)
	assertDecimal(suite.T(), "2165.92", entry.DepreciationAmount)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_MissingPurchasePrice() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, intPtr(5), 10)
	asset.PurchasePrice = nil

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()

	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrMissingPurchasePrice)
	assert.Nil(suite.T(), entry)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_MissingCategory() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.StraightLine, intPtr(5), 10)
	asset.Category = nil

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()

	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrMissingCategory)
	assert.Nil(suite.T(), entry)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_MethodNotConfigured() {
	ctx := context.Background()
	assetID := uuid.NewString()
	asset := depreciableAsset(assetID, domain.NoDepreciation, intPtr(5), 10)

	suite.mockAssetRepo.On("FindAssetWithCategory", ctx, assetID).Return(asset, nil).Once()

	entry, err := suite.service.CalculateDepreciation(ctx, assetID, fullYear2024(), "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrDepreciationNotConfigured)
	assert.Nil(suite.T(), entry)
}

func (suite *DepreciationServiceTestSuite) TestCalculateDepreciation_InvalidPeriod() {
	ctx := context.Background()
	assetID := uuid.NewString()
	req := dto.CalculateDepreciationRequest{
		PeriodStart: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	entry, err := suite.service.CalculateDepreciation(ctx, assetID, req, "admin-1")

	assert.ErrorIs(suite.T(), err, services.ErrInvalidPeriod)
	assert.Nil(suite.T(), entry)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "FindAssetWithCategory", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestGetDepreciationHistory_EmptyLedger() {
	ctx := context.Background()
	assetID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(availableAsset(assetID), nil).Once()
	suite.mockLedger.On("ListEntriesByAssetID", ctx, assetID).Return([]domain.DepreciationEntry{}, nil).Once()

	entries, err := suite.service.GetDepreciationHistory(ctx, assetID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), entries)
	assert.Empty(suite.T(), entries)
}

func (suite *DepreciationServiceTestSuite) TestGetDepreciationHistory_AssetNotFound() {
	ctx := context.Background()
	assetID := uuid.NewString()

	suite.mockAssetRepo.On("FindAssetByID", ctx, assetID).Return(nil, apperrors.NewNotFoundError("asset not found")).Once()

	entries, err := suite.service.GetDepreciationHistory(ctx, assetID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Nil(suite.T(), entries)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListEntriesByAssetID", mock.Anything, mock.Anything)
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}
