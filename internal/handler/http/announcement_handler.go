package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type AnnouncementHandler struct {
	announcementUC usecasecontract.IAnnouncementUseCase
}

func NewAnnouncementHandler(uc usecasecontract.IAnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUC: uc}
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateAnnouncementRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	a, err := h.announcementUC.Create(c.Request.Context(), userID, req.Title, req.Body, req.ClubID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, a)
}

// List returns global announcements plus those of ?club= when given.
func (h *AnnouncementHandler) List(c *gin.Context) {
	items, err := h.announcementUC.List(c.Request.Context(), c.Query("club"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, items)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.announcementUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
