package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const (
	errInternalServer = "internal server error"

	defaultPageSize = 20
	maxPageSize     = 100
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if UserUseCase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration. New accounts start as visitors with an
// incomplete profile.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return nil, entity.NewValidationError("username is required")
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, entity.NewValidationError("invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, entity.NewValidationError(fmt.Sprintf("weak password: %v", err))
	}

	if err := uc.ensureUnique(ctx, username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, errors.New("failed to process password")
	}

	affiliation := entity.Visitor()
	if bootstrap := uc.config.GetAdminBootstrapEmail(); bootstrap != "" && strings.EqualFold(bootstrap, email) {
		affiliation = entity.Admin()
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Affiliation:  affiliation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}
	uc.logger.Infof("registered user %s as %s", user.ID, user.Role())
	return user, nil
}

func (uc *UserUsecase) ensureUnique(ctx context.Context, username, email string) error {
	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return err
	}

	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return entity.ErrUsernameTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return err
	}
	return nil
}

// Login handles user login and token generation. identifier may be an email
// or a username.
func (uc *UserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", err
	}

	if user.PasswordHash == "" {
		// accounts created through Google sign-in have no local password
		return nil, "", "", entity.ErrInvalidCredentials
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", entity.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// issueTokens generates an access/refresh pair and stores the refresh token hash.
func (uc *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role())
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshTokenExpiry := uc.config.GetRefreshTokenExpiry()
	if refreshTokenExpiry <= 0 {
		uc.logger.Errorf("invalid refresh token expiry configuration: %v", refreshTokenExpiry)
		return "", "", errors.New("invalid refresh token expiry configuration")
	}

	now := time.Now()
	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: now.Add(refreshTokenExpiry),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return "", "", errors.New("failed to store token")
	}
	return accessToken, refreshToken, nil
}

// Authenticate resolves the user behind an access token.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, entity.ErrInvalidToken
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, err
	}
	return user, nil
}

// RefreshToken rotates a refresh token: the presented one is revoked and a
// fresh pair is issued.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", entity.ErrInvalidToken
	}

	storedToken, err := uc.tokenRepo.GetTokenByHash(ctx, uc.hasher.HashString(refreshToken))
	if err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			return "", "", entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", err
	}
	if storedToken.UserID != claims.UserID || !storedToken.IsUsable(time.Now()) {
		uc.logger.Warnf("refresh token rejected for user %s", claims.UserID)
		return "", "", entity.ErrInvalidToken
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return "", "", entity.ErrInvalidToken
		}
		return "", "", err
	}

	// The conditional revoke decides concurrent refreshes of the same token.
	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		if errors.Is(err, entity.ErrInvalidToken) {
			uc.logger.Warnf("refresh token for user %s was already rotated", claims.UserID)
			return "", "", entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to revoke rotated refresh token: %v", err)
		return "", "", errors.New("failed to update token")
	}
	return uc.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. Unknown tokens are treated as
// already logged out.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	storedToken, err := uc.tokenRepo.GetTokenByHash(ctx, uc.hasher.HashString(refreshToken))
	if err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			uc.logger.Warnf("refresh token not found during logout, assuming it's already revoked")
			return nil
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return errors.New(errInternalServer)
	}
	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		if errors.Is(err, entity.ErrInvalidToken) {
			return nil
		}
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", storedToken.UserID, err)
		return errors.New("failed to revoke token")
	}
	return nil
}

// LogoutAll revokes every live refresh token of the user, ending all of
// their sessions once the current access tokens expire.
func (uc *UserUsecase) LogoutAll(ctx context.Context, userID string) error {
	if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, userID, entity.TokenTypeRefresh); err != nil {
		uc.logger.Errorf("failed to revoke refresh tokens for user %s: %v", userID, err)
		return err
	}
	uc.logger.Infof("all sessions revoked for user %s", userID)
	return nil
}

// LoginWithOAuth signs in a Google account, creating a visitor on first use.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return "", "", entity.NewValidationError("invalid email returned by identity provider")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", "", err
	}

	if user == nil {
		username, err := uc.oauthUsername(name, email)
		if err != nil {
			return "", "", err
		}
		now := time.Now()
		user = &entity.User{
			ID:          uc.uuidGenerator.NewUUID(),
			Username:    username,
			Email:       email,
			Affiliation: entity.Visitor(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return "", "", err
		}
	}

	return uc.issueTokens(ctx, user)
}

// oauthUsername derives a username from the display name (or the e-mail
// local part) plus a short random suffix to avoid collisions.
func (uc *UserUsecase) oauthUsername(name, email string) (string, error) {
	base := strings.ToLower(strings.Join(strings.Fields(name), "."))
	if base == "" {
		base = strings.SplitN(email, "@", 2)[0]
	}
	suffix, err := uc.randomGenerator.GenerateRandomToken(3)
	if err != nil {
		return "", fmt.Errorf("failed to generate username: %w", err)
	}
	return base + "_" + strings.ToLower(suffix), nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		}
		return nil, err
	}
	return user, nil
}

// CompleteProfile stores the profile block. The completion flag follows the
// content: it is set once every required field is present.
func (uc *UserUsecase) CompleteProfile(ctx context.Context, userID string, profile entity.Profile) (*entity.User, error) {
	if profile.Year < 0 || profile.Year > 6 {
		return nil, entity.NewValidationError("year must be between 1 and 6")
	}
	if profile.Semester < 0 || profile.Semester > 12 {
		return nil, entity.NewValidationError("semester must be between 1 and 12")
	}
	if profile.DateOfBirth != nil && profile.DateOfBirth.After(time.Now()) {
		return nil, entity.NewValidationError("date of birth cannot be in the future")
	}

	user, err := uc.userRepo.UpdateProfile(ctx, userID, profile, profile.IsComplete())
	if err != nil {
		if !errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers is an admin directory listing.
func (uc *UserUsecase) ListUsers(ctx context.Context, callerID string, opts *contract.UserFilterOptions) ([]*entity.User, int64, error) {
	if _, err := loadAdmin(ctx, uc.userRepo, callerID); err != nil {
		return nil, 0, err
	}
	if opts == nil {
		opts = &contract.UserFilterOptions{}
	}
	opts.Page, opts.PageSize = normalizePage(opts.Page, opts.PageSize)
	return uc.userRepo.ListUsers(ctx, opts)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
