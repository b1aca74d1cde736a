package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// JoinRequestFilter narrows join request listings. Zero values mean "any".
type JoinRequestFilter struct {
	UserID string
	ClubID string
	Status entity.JoinStatus
}

type IJoinRequestRepository interface {
	// Create inserts a pending request; a second pending request for the
	// same (user, club) pair fails with ErrDuplicateRequest.
	Create(ctx context.Context, req *entity.JoinRequest) error
	GetByID(ctx context.Context, id string) (*entity.JoinRequest, error)
	FindPending(ctx context.Context, userID, clubID string) (*entity.JoinRequest, error)
	// TransitionStatus moves a request from `from` to `to` only if it is still in `from`.
	TransitionStatus(ctx context.Context, id string, from, to entity.JoinStatus, deciderID string, at time.Time) error
	// RejectPendingForUser rejects every pending request of the user except exceptID.
	RejectPendingForUser(ctx context.Context, userID, exceptID, deciderID string, at time.Time) (int64, error)
	List(ctx context.Context, filter JoinRequestFilter) ([]*entity.JoinRequest, error)
}
