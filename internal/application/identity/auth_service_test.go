package identity

import (
	"context"
	"testing"
	"time"

	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/infrastructure/auth"
	"github.com/furnimart/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newAuthService(userRepo identity.UserRepository) (*AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-0123456789abcdef",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "furnimart-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(userRepo, jwtService, blacklist, zap.NewNop()), jwtService
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers and issues tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, jwtService := newAuthService(userRepo)
		ctx := context.Background()

		userRepo.On("ExistsByUsername", ctx, "sita").Return(false, nil)
		userRepo.On("ExistsByEmail", ctx, "sita@example.com").Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := service.Register(ctx, RegisterRequest{
			Username: "sita",
			Email:    "sita@example.com",
			Password: "sup3r-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "sita", result.User.Username)
		assert.Equal(t, "customer", result.User.Role)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)

		claims, err := jwtService.ValidateAccessToken(result.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "sita", claims.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects taken username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		ctx := context.Background()

		userRepo.On("ExistsByUsername", ctx, "sita").Return(true, nil)

		result, err := service.Register(ctx, RegisterRequest{
			Username: "sita",
			Email:    "sita@example.com",
			Password: "sup3r-secret",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials issue tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		ctx := context.Background()

		user, err := identity.NewUser("sita", "sita@example.com", "sup3r-secret")
		require.NoError(t, err)
		userRepo.On("FindByUsername", ctx, "sita").Return(user, nil)

		result, err := service.Login(ctx, LoginRequest{Username: "sita", Password: "sup3r-secret"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.Tokens.AccessToken)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		ctx := context.Background()

		user, err := identity.NewUser("sita", "sita@example.com", "sup3r-secret")
		require.NoError(t, err)
		userRepo.On("FindByUsername", ctx, "sita").Return(user, nil)
		userRepo.On("FindByUsername", ctx, "nobody").Return(nil, identity.ErrUserNotFound)

		_, errWrongPassword := service.Login(ctx, LoginRequest{Username: "sita", Password: "wrong"})
		_, errUnknownUser := service.Login(ctx, LoginRequest{Username: "nobody", Password: "whatever"})

		var wrongErr, unknownErr *shared.DomainError
		require.ErrorAs(t, errWrongPassword, &wrongErr)
		require.ErrorAs(t, errUnknownUser, &unknownErr)
		assert.Equal(t, wrongErr.Code, unknownErr.Code)
		assert.Equal(t, wrongErr.Message, unknownErr.Message)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		ctx := context.Background()

		user, err := identity.NewUser("sita", "sita@example.com", "sup3r-secret")
		require.NoError(t, err)
		userRepo.On("FindByUsername", ctx, "sita").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Username: "sita", Password: "sup3r-secret"})
		require.NoError(t, err)

		refreshed, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.RefreshToken)

		// the used token was revoked by rotation
		replayed, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
		assert.Nil(t, replayed)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)

		result, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: "not-a-jwt"})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})

	t.Run("rejects access token presented as refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		ctx := context.Background()

		user, err := identity.NewUser("sita", "sita@example.com", "sup3r-secret")
		require.NoError(t, err)
		userRepo.On("FindByUsername", ctx, "sita").Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Username: "sita", Password: "sup3r-secret"})
		require.NoError(t, err)

		result, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.AccessToken})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revoked refresh token cannot be reused", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, jwtService := newAuthService(userRepo)
		ctx := context.Background()

		user, err := identity.NewUser("sita", "sita@example.com", "sup3r-secret")
		require.NoError(t, err)
		userRepo.On("FindByUsername", ctx, "sita").Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Username: "sita", Password: "sup3r-secret"})
		require.NoError(t, err)

		accessClaims, err := jwtService.ValidateAccessToken(login.Tokens.AccessToken)
		require.NoError(t, err)

		err = service.Logout(ctx, accessClaims, LogoutRequest{RefreshToken: login.Tokens.RefreshToken})
		require.NoError(t, err)

		result, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
