package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	"github.com/retailops/pos_shift_backend/internal/core/services"
	"github.com/retailops/pos_shift_backend/internal/platform/cache"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	provider         services.SettingsProvider
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.provider = services.NewSettingsService(suite.mockSettingsRepo, cache.NewMemorySettingsCache(), 5*time.Minute, "Cash")
}

func (suite *SettingsServiceTestSuite) TestCurrencyPrecision_FromRepository() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetCurrencyPrecision", ctx).Return(int32(2), true, nil).Once()

	suite.Equal(int32(2), suite.provider.CurrencyPrecision(ctx))
}

func (suite *SettingsServiceTestSuite) TestCurrencyPrecision_DefaultWhenUnset() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetCurrencyPrecision", ctx).Return(int32(0), false, nil).Once()

	suite.Equal(int32(3), suite.provider.CurrencyPrecision(ctx))
}

func (suite *SettingsServiceTestSuite) TestCurrencyPrecision_DefaultOnError() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetCurrencyPrecision", ctx).Return(int32(0), false, errors.New("db down")).Once()

	suite.Equal(int32(3), suite.provider.CurrencyPrecision(ctx))
}

func (suite *SettingsServiceTestSuite) TestCurrencyPrecision_CachedAfterFirstLookup() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetCurrencyPrecision", ctx).Return(int32(2), true, nil).Once()

	suite.Equal(int32(2), suite.provider.CurrencyPrecision(ctx))
	suite.Equal(int32(2), suite.provider.CurrencyPrecision(ctx))

	suite.mockSettingsRepo.AssertNumberOfCalls(suite.T(), "GetCurrencyPrecision", 1)
}

func (suite *SettingsServiceTestSuite) TestCurrencyPrecision_NoopCacheAlwaysHitsRepository() {
	ctx := context.Background()
	suite.provider = services.NewSettingsService(suite.mockSettingsRepo, cache.NoopSettingsCache{}, 0, "Cash")
	suite.mockSettingsRepo.On("GetCurrencyPrecision", ctx).Return(int32(2), true, nil).Twice()

	suite.Equal(int32(2), suite.provider.CurrencyPrecision(ctx))
	suite.Equal(int32(2), suite.provider.CurrencyPrecision(ctx))

	suite.mockSettingsRepo.AssertNumberOfCalls(suite.T(), "GetCurrencyPrecision", 2)
}

func (suite *SettingsServiceTestSuite) TestCashModeOfPayment_FromProfile() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("FindPOSProfile", ctx, "Main Counter").Return(&domain.POSProfile{
		Name:              "Main Counter",
		CashModeOfPayment: "Cash in Drawer",
	}, nil).Once()

	suite.Equal("Cash in Drawer", suite.provider.CashModeOfPayment(ctx, "Main Counter"))
}

func (suite *SettingsServiceTestSuite) TestCashModeOfPayment_DefaultWhenProfileEmpty() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("FindPOSProfile", ctx, "Main Counter").Return(&domain.POSProfile{
		Name: "Main Counter",
	}, nil).Once()

	suite.Equal("Cash", suite.provider.CashModeOfPayment(ctx, "Main Counter"))
}

func (suite *SettingsServiceTestSuite) TestCashModeOfPayment_DefaultWhenProfileMissing() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("FindPOSProfile", ctx, "Ghost").Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal("Cash", suite.provider.CashModeOfPayment(ctx, "Ghost"))
}

func (suite *SettingsServiceTestSuite) TestCashModeOfPayment_DefaultWhenNoProfileGiven() {
	ctx := context.Background()

	suite.Equal("Cash", suite.provider.CashModeOfPayment(ctx, ""))
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "FindPOSProfile", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestDefaultCurrency() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetCompanyDefaultCurrency", ctx, "Retail Ops Ltd").Return("USD", nil).Once()

	currency, err := suite.provider.DefaultCurrency(ctx, "Retail Ops Ltd")

	suite.Require().NoError(err)
	suite.Equal("USD", currency)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
