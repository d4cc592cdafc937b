package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailops/pos_shift_backend/internal/apperrors"
	"github.com/retailops/pos_shift_backend/internal/core/domain"
	portsrepo "github.com/retailops/pos_shift_backend/internal/core/ports/repositories"
	portssvc "github.com/retailops/pos_shift_backend/internal/core/ports/services"
	"github.com/retailops/pos_shift_backend/internal/core/services"
	"github.com/retailops/pos_shift_backend/internal/dto"
	"github.com/retailops/pos_shift_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListCashiers(ctx context.Context, posProfile string) ([]string, error) {
	args := m.Called(ctx, posProfile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade

	password string
	user     domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)

	suite.password = "correct horse battery staple"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)

	suite.user = domain.User{
		UserID:       uuid.NewString(),
		Name:         "Test Cashier",
		Email:        "cashier@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, suite.password)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", suite.password)

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown email reads the same as a wrong password.
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	suite.user.IsActive = false
	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, suite.password)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "New Cashier", Email: "new@example.com", Password: "a long password"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.IsActive &&
			u.UserID != "" &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(req.Name, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "New Cashier", Email: suite.user.Email, Password: "a long password"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetCashiers() {
	ctx := context.Background()
	suite.mockUserRepo.On("ListCashiers", ctx, "Main Counter").Return([]string{"user-a", "user-b"}, nil).Once()

	cashiers, err := suite.service.GetCashiers(ctx, "Main Counter")

	suite.Require().NoError(err)
	suite.Equal([]string{"user-a", "user-b"}, cashiers)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
