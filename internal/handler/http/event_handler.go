package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type EventHandler struct {
	eventUC usecasecontract.IEventUseCase
}

func NewEventHandler(eventUC usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

func (h *EventHandler) ProposeEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	event, err := h.eventUC.ProposeEvent(c.Request.Context(), userID, usecasecontract.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Venue:       req.Venue,
		PosterURL:   req.PosterURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, event)
}

func (h *EventHandler) DecideEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.DecideEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	event, err := h.eventUC.DecideEvent(c.Request.Context(), userID, c.Param("eventID"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, event)
}

func (h *EventHandler) toggle(c *gin.Context, kind entity.EngagementKind) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	res, err := h.eventUC.ToggleEngagement(c.Request.Context(), userID, c.Param("eventID"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, res)
}

func (h *EventHandler) ToggleLike(c *gin.Context) { h.toggle(c, entity.EngagementLike) }

func (h *EventHandler) ToggleInterested(c *gin.Context) { h.toggle(c, entity.EngagementInterested) }

// GetEvent runs behind OptionalAuth so coordinators and admins can see
// events still under review.
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventUC.GetEvent(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("eventID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, event)
}

// ListApproved supports ?club= or ?coordinator=.
func (h *EventHandler) ListApproved(c *gin.Context) {
	filter := usecasecontract.ApprovedEventFilter{
		ClubID:        c.Query("club"),
		CoordinatorID: c.Query("coordinator"),
	}
	if filter.ClubID != "" && filter.CoordinatorID != "" {
		respondError(c, entity.NewValidationError("use either club or coordinator, not both"))
		return
	}
	events, err := h.eventUC.ListApproved(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

func (h *EventHandler) ListPending(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	events, err := h.eventUC.ListPending(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

func (h *EventHandler) ListMyClubEvents(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	events, err := h.eventUC.ListMyClubEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.eventUC.DeleteEvent(c.Request.Context(), userID, c.Param("eventID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
