package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

type authError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleWare rejects requests without a valid access token. The user is
// loaded from the store so deleted accounts and stale roles are not trusted.
func AuthMiddleWare(userUC usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{
				Error: "Authorization header missing or malformed",
				Code:  string(entity.KindUnauthenticated),
			})
			return
		}
		user, err := userUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			kind := entity.KindUnauthenticated
			if !entity.IsKind(err, entity.KindUnauthenticated) {
				status, kind = http.StatusInternalServerError, entity.KindStore
				_ = c.Error(err)
			}
			c.AbortWithStatusJSON(status, authError{Error: "Invalid or expired token", Code: string(kind)})
			return
		}
		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, string(user.Role()))
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(userUC usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := userUC.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(ContextUserID, user.ID)
				c.Set(ContextRole, string(user.Role()))
			}
		}
		c.Next()
	}
}
