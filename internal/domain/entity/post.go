package entity

import "time"

// Post is an entry of the social feed.
type Post struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	OwnerID      string    `bson:"owner_id" json:"owner_id"`
	Content      string    `bson:"content" json:"content"`
	ImageURL     string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Hashtags     []string  `bson:"hashtags" json:"hashtags"`
	Likes        []string  `bson:"likes" json:"likes"`
	CommentCount int       `bson:"comment_count" json:"comment_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
