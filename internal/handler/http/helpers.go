package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: string(entity.KindValidation)})
		return err
	}
	return nil
}

var statusByKind = map[entity.ErrorKind]int{
	entity.KindValidation:            http.StatusBadRequest,
	entity.KindNotFound:              http.StatusNotFound,
	entity.KindDuplicateRequest:      http.StatusConflict,
	entity.KindInvalidTransition:     http.StatusConflict,
	entity.KindCoordinatorUnassigned: http.StatusUnprocessableEntity,
	entity.KindNotAMember:            http.StatusConflict,
	entity.KindUnauthorized:          http.StatusForbidden,
	entity.KindUnauthenticated:       http.StatusUnauthorized,
	entity.KindConflict:              http.StatusConflict,
	entity.KindStore:                 http.StatusInternalServerError,
}

// StatusFor maps a domain error to its HTTP status code.
func StatusFor(err error) int {
	if code, ok := statusByKind[entity.KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error", "code"}. Store failures never leak
// driver details to the client.
func respondError(c *gin.Context, err error) {
	kind := entity.KindOf(err)
	status := StatusFor(err)
	msg := err.Error()
	if kind == entity.KindStore {
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Error: msg, Code: string(kind)})
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(entity.KindUnauthenticated),
		})
		return "", false
	}
	return id, true
}

// queryInt parses an integer query parameter, falling back on bad input.
func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return fallback
}
