package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// ClubHandler serves clubs, their members and join requests.
type ClubHandler struct {
	clubUC       usecasecontract.IClubUseCase
	membershipUC usecasecontract.IMembershipUseCase
}

func NewClubHandler(clubUC usecasecontract.IClubUseCase, membershipUC usecasecontract.IMembershipUseCase) *ClubHandler {
	return &ClubHandler{clubUC: clubUC, membershipUC: membershipUC}
}

func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateClubRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	club, err := h.clubUC.CreateClub(c.Request.Context(), userID, req.Name, req.Description, req.CoordinatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, club)
}

func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.clubUC.GetClub(c.Request.Context(), c.Param("clubID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, club)
}

func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubUC.ListClubs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, clubs)
}

func (h *ClubHandler) ListMembers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	members, err := h.clubUC.ListMembers(c.Request.Context(), userID, c.Param("clubID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(members))
}

func (h *ClubHandler) RemoveMember(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.membershipUC.RemoveMember(c.Request.Context(), userID, c.Param("clubID"), c.Param("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClubHandler) RequestJoin(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	req, err := h.membershipUC.RequestJoin(c.Request.Context(), userID, c.Param("clubID"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, req)
}

// ListClubRequests supports ?status=pending|accepted|rejected.
func (h *ClubHandler) ListClubRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	status := entity.JoinStatus(c.Query("status"))
	requests, err := h.membershipUC.ListClubRequests(c.Request.Context(), userID, c.Param("clubID"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, requests)
}

func (h *ClubHandler) ListMyRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	requests, err := h.membershipUC.ListMyRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, requests)
}

func (h *ClubHandler) DecideJoin(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.DecideJoinRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	decided, err := h.membershipUC.DecideJoin(c.Request.Context(), userID, c.Param("requestID"), entity.JoinDecision(req.Decision))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, decided)
}
