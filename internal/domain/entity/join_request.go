package entity

import "time"

// JoinStatus is the lifecycle state of a join request.
type JoinStatus string

const (
	JoinStatusPending  JoinStatus = "pending"
	JoinStatusAccepted JoinStatus = "accepted"
	JoinStatusRejected JoinStatus = "rejected"
)

func (s JoinStatus) IsTerminal() bool {
	return s == JoinStatusAccepted || s == JoinStatusRejected
}

// JoinDecision is what a coordinator or admin answers to a pending request.
type JoinDecision string

const (
	JoinDecisionAccept JoinDecision = "accept"
	JoinDecisionReject JoinDecision = "reject"
)

// TargetStatus maps a decision to the status it produces.
func (d JoinDecision) TargetStatus() (JoinStatus, error) {
	switch d {
	case JoinDecisionAccept:
		return JoinStatusAccepted, nil
	case JoinDecisionReject:
		return JoinStatusRejected, nil
	}
	return "", ErrInvalidDecision
}

// JoinRequest links a visitor to the club they asked to join.
type JoinRequest struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	ClubID    string     `bson:"club_id" json:"club_id"`
	Status    JoinStatus `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	DecidedAt *time.Time `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecidedBy string     `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
}
