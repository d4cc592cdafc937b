package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/core/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
)

type OpeningShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo *MockShiftRepository
	service       portssvc.OpeningShiftSvcFacade
	userID        string
}

func (suite *OpeningShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.service = services.NewOpeningShiftService(suite.mockShiftRepo)
	suite.userID = uuid.NewString()
}

func (suite *OpeningShiftServiceTestSuite) TestCreateOpeningShift_Success() {
	ctx := context.Background()
	req := dto.CreateOpeningShiftRequest{
		Company:    "Retail Ops Ltd",
		POSProfile: "Main Counter",
		BalanceDetails: []dto.OpeningBalancePayload{
			{ModeOfPayment: "Cash", Amount: decimal.NewFromInt(100)},
			{ModeOfPayment: "Card", Amount: decimal.Zero},
		},
	}

	suite.mockShiftRepo.On("SaveOpeningShift", ctx, mock.MatchedBy(func(s domain.OpeningShift) bool {
		return s.OpeningShiftID != "" &&
			s.Status == domain.ShiftOpen &&
			s.DocStatus == domain.Submitted &&
			s.User == suite.userID &&
			len(s.BalanceDetails) == 2
	})).Return(nil).Once()

	shift, err := suite.service.CreateOpeningShift(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.Equal(domain.ShiftOpen, shift.Status)
	suite.Equal(suite.userID, shift.CreatedBy)
	suite.False(shift.PeriodStartDate.IsZero())
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *OpeningShiftServiceTestSuite) TestCreateOpeningShift_ExplicitStartDate() {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	req := dto.CreateOpeningShiftRequest{
		Company:         "Retail Ops Ltd",
		POSProfile:      "Main Counter",
		PeriodStartDate: &start,
		BalanceDetails: []dto.OpeningBalancePayload{
			{ModeOfPayment: "Cash", Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockShiftRepo.On("SaveOpeningShift", ctx, mock.AnythingOfType("domain.OpeningShift")).Return(nil).Once()

	shift, err := suite.service.CreateOpeningShift(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(shift.PeriodStartDate.Equal(start))
}

func TestOpeningShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningShiftServiceTestSuite))
}
