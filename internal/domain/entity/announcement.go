package entity

import "time"

// Announcement is a notice from an admin (global) or a coordinator (club scoped).
type Announcement struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	ClubID    string    `bson:"club_id,omitempty" json:"club_id,omitempty"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
