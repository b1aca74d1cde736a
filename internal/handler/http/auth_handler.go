package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const (
	oauthStateCookie   = "oauthState"
	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateLifetime = 300
)

// AuthHandler serves Google sign-in. Accounts created here start as visitors.
type AuthHandler struct {
	userUseCase  usecasecontract.IUserUseCase
	oauthConfig  *oauth2.Config
	userInfoURL  string
	secureCookie bool
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, baseURL, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		userUseCase: uc,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  strings.TrimRight(baseURL, "/") + "/api/v1/auth/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL:  googleUserInfoURL,
		secureCookie: strings.HasPrefix(baseURL, "https://"),
	}
}

type googleUserInfo struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		respondError(c, entity.NewStoreError("failed to create oauth state", err))
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateLifetime, "/", "", h.secureCookie, true)

	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		respondError(c, entity.ErrInvalidToken)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookie, true)

	code := c.Query("code")
	if code == "" {
		respondError(c, entity.NewValidationError("authorization code not provided"))
		return
	}

	ctx := c.Request.Context()
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respondError(c, entity.NewStoreError("failed to exchange authorization code", err))
		return
	}

	info, err := h.fetchUserInfo(c, token)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, refreshToken, err := h.userUseCase.LoginWithOAuth(ctx, info.Name, info.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (h *AuthHandler) fetchUserInfo(c *gin.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		return nil, entity.NewStoreError("failed to get user info", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, entity.NewStoreError("failed to get user info", fmt.Errorf("status %d", resp.StatusCode))
	}
	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, entity.NewStoreError("failed to decode user info", err)
	}
	if info.Email == "" || !info.VerifiedEmail {
		return nil, entity.NewValidationError("google account has no verified email")
	}
	return &info, nil
}
