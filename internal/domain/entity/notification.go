package entity

import "time"

type NotificationType string

const (
	NotificationPostLiked       NotificationType = "post_liked"
	NotificationPostCommented   NotificationType = "post_commented"
	NotificationJoinAccepted    NotificationType = "join_accepted"
	NotificationJoinRejected    NotificationType = "join_rejected"
	NotificationEventApproved   NotificationType = "event_approved"
	NotificationEventRejected   NotificationType = "event_rejected"
	NotificationRemovedFromClub NotificationType = "removed_from_club"
	NotificationRoleChanged     NotificationType = "role_changed"
)

// Notification is written synchronously as a side effect of feed and club activity.
type Notification struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	ActorID   string           `bson:"actor_id" json:"actor_id"`
	Type      NotificationType `bson:"type" json:"type"`
	RefID     string           `bson:"ref_id" json:"ref_id"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}
