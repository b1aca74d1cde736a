package usecasecontract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// EventInput carries the user supplied fields of a proposal.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Venue       string
	PosterURL   string
}

// ApprovedEventFilter scopes ListApproved. At most one field is expected.
type ApprovedEventFilter struct {
	ClubID        string
	CoordinatorID string
}

type IEventUseCase interface {
	ProposeEvent(ctx context.Context, callerID string, in EventInput) (*entity.Event, error)
	DecideEvent(ctx context.Context, callerID, eventID, status string) (*entity.Event, error)
	ToggleEngagement(ctx context.Context, callerID, eventID string, kind entity.EngagementKind) (*entity.EngagementResult, error)
	GetEvent(ctx context.Context, callerID, eventID string) (*entity.Event, error)
	ListApproved(ctx context.Context, filter ApprovedEventFilter) ([]*entity.Event, error)
	ListPending(ctx context.Context, callerID string) ([]*entity.Event, error)
	ListMyClubEvents(ctx context.Context, callerID string) ([]*entity.Event, error)
	DeleteEvent(ctx context.Context, callerID, eventID string) error
}
