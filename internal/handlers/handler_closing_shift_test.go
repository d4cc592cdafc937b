package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/handlers"
	"github.com/retailops/pos_shift_backend/internal/utils"
	"github.com/retailops/pos_shift_backend/pkg/config"
)

// --- Mock ClosingShiftSvcFacade ---
type MockClosingShiftService struct {
	mock.Mock
}

var _ portssvc.ClosingShiftSvcFacade = (*MockClosingShiftService)(nil)

func (m *MockClosingShiftService) BuildClosingDraft(ctx context.Context, opening dto.OpeningShiftPayload) (*domain.ClosingShift, error) {
	args := m.Called(ctx, opening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingShift), args.Error(1)
}

func (m *MockClosingShiftService) SubmitClosingShift(ctx context.Context, payload dto.ClosingShiftPayload, submitterUserID string) (string, error) {
	args := m.Called(ctx, payload, submitterUserID)
	return args.String(0), args.Error(1)
}

func (m *MockClosingShiftService) GetClosingShiftByID(ctx context.Context, closingShiftID string) (*domain.ClosingShift, error) {
	args := m.Called(ctx, closingShiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingShift), args.Error(1)
}

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetCashiers(ctx context.Context, posProfile string) ([]string, error) {
	args := m.Called(ctx, posProfile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type ClosingShiftHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	cfg              *config.Config
	mockClosingShift *MockClosingShiftService
	mockUserService  *MockUserService
}

func (suite *ClosingShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "pos-shift-backend-test",
		IsProduction:      true, // skip swagger routes
	}

	suite.mockClosingShift = new(MockClosingShiftService)
	suite.mockUserService = new(MockUserService)

	dto.RegisterValidations()

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		ClosingShift: suite.mockClosingShift,
		User:         suite.mockUserService,
	})
}

func (suite *ClosingShiftHandlerTestSuite) authHeader(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *ClosingShiftHandlerTestSuite) postJSON(url string, body any, userID string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", suite.authHeader(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClosingShiftHandlerTestSuite) TestBuildClosingDraft_Success() {
	userID := uuid.NewString()
	openingShiftID := uuid.NewString()

	payload := dto.OpeningShiftPayload{
		OpeningShiftID:  openingShiftID,
		PeriodStartDate: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		POSProfile:      "Main Counter",
		User:            userID,
	}
	draft := &domain.ClosingShift{
		OpeningShiftID: openingShiftID,
		User:           userID,
		DocStatus:      domain.Draft,
		PaymentReconciliation: []domain.PaymentReconciliationLine{
			{ModeOfPayment: "Cash", OpeningAmount: decimal.NewFromInt(100), ExpectedAmount: decimal.NewFromInt(150)},
		},
	}

	suite.mockClosingShift.On("BuildClosingDraft", mock.Anything, mock.MatchedBy(func(p dto.OpeningShiftPayload) bool {
		return p.OpeningShiftID == openingShiftID
	})).Return(draft, nil).Once()

	w := suite.postJSON("/api/v1/closing-shifts/draft", payload, userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ClosingShiftResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(openingShiftID, resp.OpeningShiftID)
	suite.Empty(resp.ClosingShiftID)
	suite.Equal(0, resp.DocStatus)
	suite.mockClosingShift.AssertExpectations(suite.T())
}

func (suite *ClosingShiftHandlerTestSuite) TestBuildClosingDraft_Unauthorized() {
	w := suite.postJSON("/api/v1/closing-shifts/draft", dto.OpeningShiftPayload{OpeningShiftID: "x"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClosingShift.AssertNotCalled(suite.T(), "BuildClosingDraft", mock.Anything, mock.Anything)
}

func (suite *ClosingShiftHandlerTestSuite) submissionPayload(userID string) dto.ClosingShiftPayload {
	return dto.ClosingShiftPayload{
		OpeningShiftID:  uuid.NewString(),
		User:            userID,
		PeriodStartDate: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		PeriodEndDate:   time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC),
	}
}

func (suite *ClosingShiftHandlerTestSuite) TestSubmitClosingShift_Success() {
	userID := uuid.NewString()
	closingShiftID := uuid.NewString()
	payload := suite.submissionPayload(userID)

	suite.mockClosingShift.On("SubmitClosingShift", mock.Anything, mock.AnythingOfType("dto.ClosingShiftPayload"), userID).Return(closingShiftID, nil).Once()

	w := suite.postJSON("/api/v1/closing-shifts", payload, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(closingShiftID, resp["closingShiftID"])
}

func (suite *ClosingShiftHandlerTestSuite) TestSubmitClosingShift_OverlapConflict() {
	userID := uuid.NewString()
	payload := suite.submissionPayload(userID)

	suite.mockClosingShift.On("SubmitClosingShift", mock.Anything, mock.AnythingOfType("dto.ClosingShiftPayload"), userID).
		Return("", &apperrors.ShiftOverlapError{User: userID}).Once()

	w := suite.postJSON("/api/v1/closing-shifts", payload, userID)

	suite.Equal(http.StatusConflict, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid Period", resp.Title)
	suite.Contains(resp.Error, userID)
}

func (suite *ClosingShiftHandlerTestSuite) TestSubmitClosingShift_EndBeforeStartRejected() {
	userID := uuid.NewString()
	payload := suite.submissionPayload(userID)
	payload.PeriodEndDate = payload.PeriodStartDate.Add(-time.Hour)

	w := suite.postJSON("/api/v1/closing-shifts", payload, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClosingShift.AssertNotCalled(suite.T(), "SubmitClosingShift", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClosingShiftHandlerTestSuite) TestGetClosingShift_NotFound() {
	userID := uuid.NewString()
	closingShiftID := uuid.NewString()

	suite.mockClosingShift.On("GetClosingShiftByID", mock.Anything, closingShiftID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closing-shifts/"+closingShiftID, nil)
	req.Header.Set("Authorization", suite.authHeader(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestClosingShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClosingShiftHandlerTestSuite))
}
