package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/core/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepository = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) SaveOpeningShift(ctx context.Context, shift domain.OpeningShift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) FindOpeningShiftByID(ctx context.Context, openingShiftID string) (*domain.OpeningShift, error) {
	args := m.Called(ctx, openingShiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningShift), args.Error(1)
}

func (m *MockShiftRepository) FindClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error) {
	args := m.Called(ctx, closingShiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingShift), args.Error(1)
}

func (m *MockShiftRepository) HasOverlappingClosingShift(ctx context.Context, userID string, start, end time.Time, excludeID string) (bool, error) {
	args := m.Called(ctx, userID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShiftRepository) SubmitClosingShift(ctx context.Context, closing domain.ClosingShift) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

// --- Mock InvoiceSvcFacade ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) GetPOSInvoices(ctx context.Context, openingShiftID string, userID string) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, openingShiftID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockInvoiceService) SubmitPrintedInvoices(ctx context.Context, openingShiftID string, userID string) error {
	args := m.Called(ctx, openingShiftID, userID)
	return args.Error(0)
}

func (m *MockInvoiceService) DeleteDraftInvoices(ctx context.Context, openingShiftID string) (int64, error) {
	args := m.Called(ctx, openingShiftID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SettingsProvider ---
type MockSettingsProvider struct {
	mock.Mock
}

var _ services.SettingsProvider = (*MockSettingsProvider)(nil)

func (m *MockSettingsProvider) CurrencyPrecision(ctx context.Context) int32 {
	args := m.Called(ctx)
	return args.Get(0).(int32)
}

func (m *MockSettingsProvider) CashModeOfPayment(ctx context.Context, posProfile string) string {
	args := m.Called(ctx, posProfile)
	return args.String(0)
}

func (m *MockSettingsProvider) DefaultCurrency(ctx context.Context, company string) (string, error) {
	args := m.Called(ctx, company)
	return args.String(0), args.Error(1)
}

// --- Test Suite Setup ---
type ClosingShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo  *MockShiftRepository
	mockInvoiceSvc *MockInvoiceService
	mockSettings   *MockSettingsProvider
	service        portssvc.ClosingShiftSvcFacade

	openingShiftID string
	userID         string
	opening        dto.OpeningShiftPayload
}

func (suite *ClosingShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockInvoiceSvc = new(MockInvoiceService)
	suite.mockSettings = new(MockSettingsProvider)
	suite.service = services.NewClosingShiftService(suite.mockShiftRepo, suite.mockInvoiceSvc, suite.mockSettings)

	suite.openingShiftID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.opening = dto.OpeningShiftPayload{
		OpeningShiftID:  suite.openingShiftID,
		PeriodStartDate: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		POSProfile:      "Main Counter",
		User:            suite.userID,
		Company:         "Retail Ops Ltd",
		BalanceDetails: []dto.OpeningBalancePayload{
			{ModeOfPayment: "Cash", Amount: decimal.NewFromInt(100)},
		},
	}
}

func (suite *ClosingShiftServiceTestSuite) expectDraftSettings() {
	suite.mockSettings.On("CashModeOfPayment", mock.Anything, "Main Counter").Return("Cash").Once()
	suite.mockSettings.On("CurrencyPrecision", mock.Anything).Return(int32(3)).Once()
}

func cashInvoice(openingShiftID string, grandTotal, change int64) domain.SalesInvoice {
	gt := decimal.NewFromInt(grandTotal)
	return domain.SalesInvoice{
		InvoiceID:      uuid.NewString(),
		OpeningShiftID: openingShiftID,
		Customer:       "Walk-in Customer",
		PostingDate:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		GrandTotal:     gt,
		NetTotal:       gt,
		TotalQty:       decimal.NewFromInt(1),
		ChangeAmount:   decimal.NewFromInt(change),
		ModeOfPayment:  "Cash",
		DocStatus:      domain.Submitted,
		Payments: []domain.SalesInvoicePayment{
			{ModeOfPayment: "Cash", Amount: gt},
		},
	}
}

// --- BuildClosingDraft ---

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_CashWithoutChange() {
	ctx := context.Background()
	invoices := []domain.SalesInvoice{cashInvoice(suite.openingShiftID, 50, 0)}

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return(invoices, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(domain.Draft, draft.DocStatus)
	suite.Empty(draft.ClosingShiftID)

	suite.Require().Len(draft.PaymentReconciliation, 1)
	line := draft.PaymentReconciliation[0]
	suite.Equal("Cash", line.ModeOfPayment)
	suite.True(decimal.NewFromInt(100).Equal(line.OpeningAmount))
	// opening 100 + collected 50, no change handed back
	suite.True(decimal.NewFromInt(150).Equal(line.ExpectedAmount))

	suite.mockInvoiceSvc.AssertExpectations(suite.T())
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_CashChangeDeducted() {
	ctx := context.Background()
	// 10 handed back to the customer: only 40 of the 50 stays in the drawer.
	invoices := []domain.SalesInvoice{cashInvoice(suite.openingShiftID, 50, 10)}

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return(invoices, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.Require().Len(draft.PaymentReconciliation, 1)
	suite.True(decimal.NewFromInt(140).Equal(draft.PaymentReconciliation[0].ExpectedAmount))
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_ChangeNotDeductedFromNonCashMode() {
	ctx := context.Background()
	inv := cashInvoice(suite.openingShiftID, 50, 10)
	inv.Payments = []domain.SalesInvoicePayment{
		{ModeOfPayment: "Card", Amount: decimal.NewFromInt(50)},
	}

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return([]domain.SalesInvoice{inv}, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.Require().Len(draft.PaymentReconciliation, 2)
	// Cash keeps only the opening balance; Card appears with opening 0.
	suite.True(decimal.NewFromInt(100).Equal(draft.PaymentReconciliation[0].ExpectedAmount))
	suite.Equal("Card", draft.PaymentReconciliation[1].ModeOfPayment)
	suite.True(decimal.Zero.Equal(draft.PaymentReconciliation[1].OpeningAmount))
	suite.True(decimal.NewFromInt(50).Equal(draft.PaymentReconciliation[1].ExpectedAmount))
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_UnseenCashModeAppendedWithRawAmount() {
	ctx := context.Background()
	// Cash was not declared in the opening balances, so its line is appended
	// with the payment amount as-is; the change deduction only applies when
	// adding onto an existing line.
	suite.opening.BalanceDetails = []dto.OpeningBalancePayload{
		{ModeOfPayment: "Card", Amount: decimal.NewFromInt(100)},
	}
	invoices := []domain.SalesInvoice{cashInvoice(suite.openingShiftID, 50, 10)}

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return(invoices, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.Require().Len(draft.PaymentReconciliation, 2)
	suite.Equal("Card", draft.PaymentReconciliation[0].ModeOfPayment)
	suite.True(decimal.NewFromInt(100).Equal(draft.PaymentReconciliation[0].ExpectedAmount))
	suite.Equal("Cash", draft.PaymentReconciliation[1].ModeOfPayment)
	suite.True(decimal.Zero.Equal(draft.PaymentReconciliation[1].OpeningAmount))
	suite.True(decimal.NewFromInt(50).Equal(draft.PaymentReconciliation[1].ExpectedAmount))
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_MergesTaxLines() {
	ctx := context.Background()
	inv1 := cashInvoice(suite.openingShiftID, 40, 0)
	inv1.Taxes = []domain.SalesInvoiceTax{
		{AccountHead: "VAT", Rate: decimal.NewFromInt(15), TaxAmount: decimal.NewFromInt(5)},
	}
	inv2 := cashInvoice(suite.openingShiftID, 60, 0)
	inv2.Taxes = []domain.SalesInvoiceTax{
		{AccountHead: "VAT", Rate: decimal.NewFromInt(15), TaxAmount: decimal.NewFromInt(7)},
		{AccountHead: "VAT", Rate: decimal.NewFromInt(5), TaxAmount: decimal.NewFromInt(2)},
	}

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return([]domain.SalesInvoice{inv1, inv2}, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.Require().Len(draft.Taxes, 2)
	suite.Equal("VAT", draft.Taxes[0].AccountHead)
	suite.True(decimal.NewFromInt(15).Equal(draft.Taxes[0].Rate))
	suite.True(decimal.NewFromInt(12).Equal(draft.Taxes[0].Amount))
	suite.True(decimal.NewFromInt(5).Equal(draft.Taxes[1].Rate))
	suite.True(decimal.NewFromInt(2).Equal(draft.Taxes[1].Amount))
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_TotalsAndTransactions() {
	ctx := context.Background()
	inv1 := cashInvoice(suite.openingShiftID, 40, 0)
	inv2 := cashInvoice(suite.openingShiftID, 60, 0)

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return([]domain.SalesInvoice{inv1, inv2}, nil).Once()
	suite.expectDraftSettings()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(100).Equal(draft.GrandTotal))
	suite.True(decimal.NewFromInt(100).Equal(draft.NetTotal))
	suite.True(decimal.NewFromInt(2).Equal(draft.TotalQuantity))
	suite.Require().Len(draft.Transactions, 2)
	suite.Equal(inv1.InvoiceID, draft.Transactions[0].SalesInvoiceID)
	suite.Equal(inv2.InvoiceID, draft.Transactions[1].SalesInvoiceID)
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_TotalsOrderIndependent() {
	ctx := context.Background()
	inv1 := cashInvoice(suite.openingShiftID, 40, 0)
	inv2 := cashInvoice(suite.openingShiftID, 60, 5)
	inv2.Payments[0].Amount = decimal.NewFromInt(65)

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return([]domain.SalesInvoice{inv1, inv2}, nil).Once()
	suite.expectDraftSettings()
	forward, err := suite.service.BuildClosingDraft(ctx, suite.opening)
	suite.Require().NoError(err)

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return([]domain.SalesInvoice{inv2, inv1}, nil).Once()
	suite.expectDraftSettings()
	reversed, err := suite.service.BuildClosingDraft(ctx, suite.opening)
	suite.Require().NoError(err)

	suite.True(forward.GrandTotal.Equal(reversed.GrandTotal))
	suite.True(forward.PaymentReconciliation[0].ExpectedAmount.Equal(reversed.PaymentReconciliation[0].ExpectedAmount))
}

func (suite *ClosingShiftServiceTestSuite) TestBuildClosingDraft_InvoiceFetchFailureAborts() {
	ctx := context.Background()
	fetchErr := errors.New("forced submission failed")

	suite.mockInvoiceSvc.On("GetPOSInvoices", ctx, suite.openingShiftID, suite.userID).Return(nil, fetchErr).Once()

	draft, err := suite.service.BuildClosingDraft(ctx, suite.opening)

	suite.Require().Error(err)
	suite.Nil(draft)
	suite.ErrorIs(err, fetchErr)
}

// --- SubmitClosingShift ---

func (suite *ClosingShiftServiceTestSuite) submissionPayload() dto.ClosingShiftPayload {
	return dto.ClosingShiftPayload{
		OpeningShiftID:  suite.openingShiftID,
		POSProfile:      "Main Counter",
		User:            suite.userID,
		Company:         "Retail Ops Ltd",
		PeriodStartDate: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		PeriodEndDate:   time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC),
		GrandTotal:      decimal.NewFromInt(100),
		PaymentReconciliation: []dto.PaymentReconciliationLinePayload{
			{ModeOfPayment: "Cash", OpeningAmount: decimal.NewFromInt(100), ClosingAmount: decimal.NewFromInt(150), ExpectedAmount: decimal.NewFromInt(150)},
		},
	}
}

func (suite *ClosingShiftServiceTestSuite) TestSubmitClosingShift_Success() {
	ctx := context.Background()
	payload := suite.submissionPayload()

	suite.mockShiftRepo.On("HasOverlappingClosingShift", ctx, suite.userID, payload.PeriodStartDate, payload.PeriodEndDate, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockShiftRepo.On("FindOpeningShiftByID", ctx, suite.openingShiftID).Return(&domain.OpeningShift{
		OpeningShiftID: suite.openingShiftID,
		Status:         domain.ShiftOpen,
	}, nil).Once()
	suite.mockSettings.On("CurrencyPrecision", mock.Anything).Return(int32(3)).Once()
	suite.mockShiftRepo.On("SubmitClosingShift", ctx, mock.MatchedBy(func(c domain.ClosingShift) bool {
		return c.DocStatus == domain.Submitted &&
			c.ClosingShiftID != "" &&
			c.CreatedBy == suite.userID &&
			len(c.PaymentReconciliation) == 1 &&
			c.PaymentReconciliation[0].Difference.IsZero()
	})).Return(nil).Once()

	id, err := suite.service.SubmitClosingShift(ctx, payload, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(id)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ClosingShiftServiceTestSuite) TestSubmitClosingShift_OverlapRejected() {
	ctx := context.Background()
	payload := suite.submissionPayload()

	suite.mockShiftRepo.On("HasOverlappingClosingShift", ctx, suite.userID, payload.PeriodStartDate, payload.PeriodEndDate, mock.AnythingOfType("string")).Return(true, nil).Once()

	id, err := suite.service.SubmitClosingShift(ctx, payload, suite.userID)

	suite.Require().Error(err)
	suite.Empty(id)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var overlapErr *apperrors.ShiftOverlapError
	suite.Require().ErrorAs(err, &overlapErr)
	suite.Equal(suite.userID, overlapErr.User)
	suite.Equal("Invalid Period", overlapErr.Title())

	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SubmitClosingShift", mock.Anything, mock.Anything)
}

func (suite *ClosingShiftServiceTestSuite) TestSubmitClosingShift_OpeningShiftNotOpen() {
	ctx := context.Background()
	payload := suite.submissionPayload()

	suite.mockShiftRepo.On("HasOverlappingClosingShift", ctx, suite.userID, payload.PeriodStartDate, payload.PeriodEndDate, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockShiftRepo.On("FindOpeningShiftByID", ctx, suite.openingShiftID).Return(&domain.OpeningShift{
		OpeningShiftID: suite.openingShiftID,
		Status:         domain.ShiftClosed,
	}, nil).Once()

	id, err := suite.service.SubmitClosingShift(ctx, payload, suite.userID)

	suite.Require().Error(err)
	suite.Empty(id)

	var notOpenErr *apperrors.OpeningShiftNotOpenError
	suite.Require().ErrorAs(err, &notOpenErr)
	suite.Equal(suite.openingShiftID, notOpenErr.OpeningShiftID)
	suite.Equal("Invalid Opening Entry", notOpenErr.Title())

	suite.mockShiftRepo.AssertNotCalled(suite.T(), "SubmitClosingShift", mock.Anything, mock.Anything)
}

func (suite *ClosingShiftServiceTestSuite) TestSubmitClosingShift_DifferencesRecomputed() {
	ctx := context.Background()
	payload := suite.submissionPayload()
	// Client sends a bogus difference; the service must override it.
	payload.PaymentReconciliation[0].Difference = decimal.NewFromInt(999)
	payload.PaymentReconciliation[0].ClosingAmount = decimal.NewFromInt(140)

	suite.mockShiftRepo.On("HasOverlappingClosingShift", ctx, suite.userID, payload.PeriodStartDate, payload.PeriodEndDate, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockShiftRepo.On("FindOpeningShiftByID", ctx, suite.openingShiftID).Return(&domain.OpeningShift{
		OpeningShiftID: suite.openingShiftID,
		Status:         domain.ShiftOpen,
	}, nil).Once()
	suite.mockSettings.On("CurrencyPrecision", mock.Anything).Return(int32(3)).Once()
	suite.mockShiftRepo.On("SubmitClosingShift", ctx, mock.MatchedBy(func(c domain.ClosingShift) bool {
		// 100 + 140 - 150 = 90
		return c.PaymentReconciliation[0].Difference.Equal(decimal.NewFromInt(90))
	})).Return(nil).Once()

	_, err := suite.service.SubmitClosingShift(ctx, payload, suite.userID)

	suite.Require().NoError(err)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ClosingShiftServiceTestSuite) TestGetClosingShiftByID_NotFound() {
	ctx := context.Background()
	closingShiftID := uuid.NewString()

	suite.mockShiftRepo.On("FindClosingShiftByID", ctx, closingShiftID).Return(nil, apperrors.ErrNotFound).Once()

	closing, err := suite.service.GetClosingShiftByID(ctx, closingShiftID)

	suite.Require().Error(err)
	suite.Nil(closing)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestClosingShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClosingShiftServiceTestSuite))
}
