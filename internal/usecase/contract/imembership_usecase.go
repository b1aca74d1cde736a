package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// IClubUseCase covers the club registry.
type IClubUseCase interface {
	CreateClub(ctx context.Context, callerID, name, description, coordinatorID string) (*entity.Club, error)
	GetClub(ctx context.Context, clubID string) (*entity.Club, error)
	ListClubs(ctx context.Context) ([]*entity.Club, error)
	ListMembers(ctx context.Context, callerID, clubID string) ([]*entity.User, error)
}

// IMembershipUseCase drives the role and membership state machine.
type IMembershipUseCase interface {
	RequestJoin(ctx context.Context, callerID, clubID string) (*entity.JoinRequest, error)
	DecideJoin(ctx context.Context, callerID, requestID string, decision entity.JoinDecision) (*entity.JoinRequest, error)
	RemoveMember(ctx context.Context, callerID, clubID, userID string) error
	ChangeRole(ctx context.Context, callerID, userID string, role entity.UserRole, clubID string) (*entity.User, error)
	ListClubRequests(ctx context.Context, callerID, clubID string, status entity.JoinStatus) ([]*entity.JoinRequest, error)
	ListMyRequests(ctx context.Context, callerID string) ([]*entity.JoinRequest, error)
}
