package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	handler "github.com/mikiasgoitom/ClubConnect/internal/handler/http"
	dto "github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/ClubConnect/internal/handler/http/mocks"
)

func setupEventRouter(events *mocks.MockEventUsecase, caller string) *gin.Engine {
	h := handler.NewEventHandler(events)
	r := gin.New()
	r.Use(asCaller(caller))
	r.GET("/events", h.ListApproved)
	r.POST("/events", h.ProposeEvent)
	r.GET("/events/pending", h.ListPending)
	r.GET("/events/:eventID", h.GetEvent)
	r.PUT("/events/:eventID/status", h.DecideEvent)
	r.POST("/events/:eventID/like", h.ToggleLike)
	r.POST("/events/:eventID/interested", h.ToggleInterested)
	r.DELETE("/events/:eventID", h.DeleteEvent)
	r.GET("/me/club/events", h.ListMyClubEvents)
	return r
}

func TestProposeEvent(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "coord-1")
	date := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)

	w := doJSON(r, http.MethodPost, "/events", dto.CreateEventRequest{
		Title:       "Open night",
		Description: "Come and play",
		Date:        date,
		Venue:       "Hall B",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "coord-1", events.LastCaller)
	assert.True(t, date.Equal(events.LastInput.Date))
	assert.Equal(t, "Hall B", events.LastInput.Venue)

	w = doJSON(r, http.MethodPost, "/events", map[string]string{"title": "missing fields"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	events.Err = entity.ErrCoordinatorUnassigned
	w = doJSON(r, http.MethodPost, "/events", dto.CreateEventRequest{
		Title: "t", Description: "d", Date: date, Venue: "v",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "coordinator_unassigned", decodeError(t, w).Code)
}

func TestDecideEvent(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "admin-1")

	w := doJSON(r, http.MethodPut, "/events/event-1/status", dto.DecideEventRequest{Status: "approved"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	w = doJSON(r, http.MethodPut, "/events/event-1/status", dto.DecideEventRequest{Status: "pending"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", decodeError(t, w).Code)
	assert.Equal(t, "pending", events.LastStatus)
}

func TestToggleEngagement_RoutesKind(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "u1")

	w := doJSON(r, http.MethodPost, "/events/event-1/interested", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.EngagementInterested, events.LastKind)
	assert.JSONEq(t, `{"active":true,"count":1}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/events/event-1/like", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.EngagementLike, events.LastKind)
}

func TestListApproved_Filters(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "")

	w := doJSON(r, http.MethodGet, "/events?club=club-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "club-1", events.LastFilter.ClubID)

	w = doJSON(r, http.MethodGet, "/events?club=a&coordinator=b", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEvent_AnonymousCaller(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "")

	w := doJSON(r, http.MethodGet, "/events/event-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, events.LastCaller)

	events.Err = entity.ErrEventNotFound
	w = doJSON(r, http.MethodGet, "/events/event-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPending_Forbidden(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	events.Err = entity.ErrAdminRequired
	r := setupEventRouter(events, "member-1")

	w := doJSON(r, http.MethodGet, "/events/pending", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteEvent(t *testing.T) {
	events := mocks.NewMockEventUsecase()
	r := setupEventRouter(events, "coord-1")

	w := doJSON(r, http.MethodDelete, "/events/event-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
