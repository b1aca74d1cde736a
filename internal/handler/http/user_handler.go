package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetUser(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
	ListUsers(*gin.Context)
	ChangeRole(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
	LogoutAll(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase       usecasecontract.IUserUseCase
	membershipUsecase usecasecontract.IMembershipUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, membershipUsecase usecasecontract.IMembershipUseCase) *UserHandler {
	return &UserHandler{
		userUsecase:       userUsecase,
		membershipUsecase: membershipUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile completes the caller's profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.CompleteProfile(c.Request.Context(), userID, req.ToProfile())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ListUsers is admin only. Supports ?role=, ?club=, ?page= and ?page_size=.
func (h *UserHandler) ListUsers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	opts := &contract.UserFilterOptions{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}
	if raw := c.Query("role"); raw != "" {
		role, err := entity.ParseRole(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		opts.Role = &role
	}
	if club := c.Query("club"); club != "" {
		opts.ClubID = &club
	}

	users, total, err := h.userUsecase.ListUsers(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserListResponse{Users: dto.ToUserResponses(users), Total: total})
}

// ChangeRole lets an admin set another user's role.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ChangeRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.membershipUsecase.ChangeRole(c.Request.Context(), userID, c.Param("id"), entity.UserRole(req.Role), req.ClubID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// RefreshToken handles token refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	newAccessToken, newRefreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: newAccessToken, RefreshToken: newRefreshToken})
}

// Logout handles user logout
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// LogoutAll revokes every refresh token of the authenticated user
func (h *UserHandler) LogoutAll(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.userUsecase.LogoutAll(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out of all sessions")
}
