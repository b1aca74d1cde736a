package entity

import "time"

// EventStatus is the approval state of an event proposal.
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// ParseDecisionStatus accepts only the two terminal statuses an admin may set.
func ParseDecisionStatus(s string) (EventStatus, error) {
	switch st := EventStatus(s); st {
	case EventStatusApproved, EventStatusRejected:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// EngagementKind selects which engagement set of an event is toggled.
type EngagementKind string

const (
	EngagementLike       EngagementKind = "like"
	EngagementInterested EngagementKind = "interested"
)

// Field returns the document field that stores the set.
func (k EngagementKind) Field() (string, error) {
	switch k {
	case EngagementLike:
		return "likes", nil
	case EngagementInterested:
		return "interested", nil
	}
	return "", NewValidationError("engagement must be one of: like, interested")
}

// Event is a club event proposed by its coordinator and reviewed by an admin.
type Event struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Date        time.Time   `bson:"date" json:"date"`
	Venue       string      `bson:"venue" json:"venue"`
	PosterURL   string      `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
	CreatorID   string      `bson:"creator_id" json:"creator_id"`
	ClubID      string      `bson:"club_id" json:"club_id"`
	Status      EventStatus `bson:"status" json:"status"`
	Likes       []string    `bson:"likes" json:"likes"`
	Interested  []string    `bson:"interested" json:"interested"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	DecidedAt   *time.Time  `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecidedBy   string      `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
}

// EngagementSet returns the set selected by kind.
func (e *Event) EngagementSet(kind EngagementKind) []string {
	if kind == EngagementInterested {
		return e.Interested
	}
	return e.Likes
}

// EngagementResult is the outcome of a toggle.
type EngagementResult struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}
