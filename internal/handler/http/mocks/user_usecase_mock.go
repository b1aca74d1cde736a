package mocks

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailUpdateProfile  bool
	ShouldFailListUsers      bool
	ShouldFailRefreshToken   bool
	ShouldFailLogout         bool
	ShouldFailLogoutAll      bool
	ShouldFailAuthenticate   bool
	ShouldFailLoginWithOAuth bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Recorded arguments
	LastIdentifier string
	LastLogoutAll  string
	LastProfile    entity.Profile
	LastFilter     *contract.UserFilterOptions
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:          "mock-user-id",
			Username:    "testuser",
			Email:       "test@example.com",
			Affiliation: entity.Visitor(),
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, entity.ErrEmailTaken
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	m.LastIdentifier = identifier
	if m.ShouldFailLogin {
		return nil, "", "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, entity.ErrInvalidToken
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", entity.ErrInvalidToken
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return entity.NewStoreError("failed to revoke token", nil)
	}
	return nil
}

func (m *MockUserUsecase) LogoutAll(ctx context.Context, userID string) error {
	m.LastLogoutAll = userID
	if m.ShouldFailLogoutAll {
		return entity.NewStoreError("failed to revoke tokens", nil)
	}
	return nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return "", "", entity.NewValidationError("invalid email returned by identity provider")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) CompleteProfile(ctx context.Context, userID string, profile entity.Profile) (*entity.User, error) {
	m.LastProfile = profile
	if m.ShouldFailUpdateProfile {
		return nil, entity.NewValidationError("invalid profile")
	}
	user := m.MockUser
	user.Profile = profile
	user.ProfileComplete = profile.IsComplete()
	return &user, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, callerID string, opts *contract.UserFilterOptions) ([]*entity.User, int64, error) {
	m.LastFilter = opts
	if m.ShouldFailListUsers {
		return nil, 0, entity.ErrAdminRequired
	}
	return []*entity.User{&m.MockUser}, 1, nil
}
