package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type NotificationHandler struct {
	notificationUC usecasecontract.INotificationUseCase
}

func NewNotificationHandler(uc usecasecontract.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUC: uc}
}

// List returns the caller's notifications, newest first. ?unread=true
// hides the ones already read.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	unread, _ := strconv.ParseBool(c.Query("unread"))
	items, err := h.notificationUC.List(c.Request.Context(), userID, unread)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, items)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.notificationUC.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	n, err := h.notificationUC.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MarkAllReadResponse{Updated: n})
}
