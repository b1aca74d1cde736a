package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// EventFilterOptions encapsulates filtering and sorting for event retrieval.
type EventFilterOptions struct {
	Status *entity.EventStatus
	ClubID *string
	// SortBy is "created_at" or "date".
	SortBy    string
	SortOrder string // "asc" or "desc"
}

type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	ListEvents(ctx context.Context, opts *EventFilterOptions) ([]*entity.Event, error)
	// TransitionStatus moves an event from `from` to `to` only if it is still in `from`.
	TransitionStatus(ctx context.Context, id string, from, to entity.EventStatus, deciderID string, at time.Time) error
	// ToggleEngagement adds userID to the selected set or removes it when
	// already present, in one atomic write, and returns the updated event.
	ToggleEngagement(ctx context.Context, id, userID string, kind entity.EngagementKind) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
