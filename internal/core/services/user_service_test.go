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
	"github.com/hecate-codex/asset_mgmt_app/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func activeUser(username, password string) *domain.User {
	hash, _ := utils.HashPassword(password)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         "Jamie Doe",
		PasswordHash: hash,
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "jdoe", Name: "Jamie Doe", Password: "correct horse battery"}

	suite.mockRepo.On("FindUserByUsername", ctx, "jdoe").Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "jdoe" && u.IsActive && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), user.UserID)
	assert.True(suite.T(), utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UsernameTaken() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "jdoe", Name: "Jamie Doe", Password: "correct horse battery"}

	suite.mockRepo.On("FindUserByUsername", ctx, "jdoe").Return(activeUser("jdoe", "other"), nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	assert.ErrorIs(suite.T(), err, services.ErrUsernameTaken)
	assert.Nil(suite.T(), user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	existing := activeUser("jdoe", "correct horse battery")

	suite.mockRepo.On("FindUserByUsername", ctx, "jdoe").Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdoe", "correct horse battery")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	existing := activeUser("jdoe", "correct horse battery")

	suite.mockRepo.On("FindUserByUsername", ctx, "jdoe").Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdoe", "wrong password")

	assert.ErrorIs(suite.T(), err, services.ErrInvalidCredentials)
	assert.Nil(suite.T(), user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	// Same error as a wrong password so the response does not reveal whether
	// the account exists.
	assert.ErrorIs(suite.T(), err, services.ErrInvalidCredentials)
	assert.Nil(suite.T(), user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUser() {
	ctx := context.Background()
	existing := activeUser("jdoe", "correct horse battery")
	existing.IsActive = false

	suite.mockRepo.On("FindUserByUsername", ctx, "jdoe").Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jdoe", "correct horse battery")

	assert.ErrorIs(suite.T(), err, services.ErrUserInactive)
	assert.Nil(suite.T(), user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
