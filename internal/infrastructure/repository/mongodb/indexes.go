package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection         = "users"
	ClubsCollection         = "clubs"
	JoinRequestsCollection  = "joinrequests"
	EventsCollection        = "events"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
	NotificationsCollection = "notifications"
	AnnouncementsCollection = "announcements"
	TokensCollection        = "tokens"
)

// EnsureIndexes creates the indexes the repositories rely on. It is
// idempotent and collects every failure so startup can report them at once.
// The unique indexes back the conflict and duplicate request errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sets := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("uniq_username").SetUnique(true)},
			{Keys: bson.D{{Key: "affiliation.club_id", Value: 1}, {Key: "affiliation.role", Value: 1}}, Options: options.Index().SetName("idx_affiliation")},
		},
		ClubsCollection: {
			{Keys: bson.D{{Key: "name_ci", Value: 1}}, Options: options.Index().SetName("uniq_name_ci").SetUnique(true)},
			{Keys: bson.D{{Key: "coordinator_id", Value: 1}}, Options: options.Index().SetName("idx_coordinator")},
		},
		JoinRequestsCollection: {
			// at most one pending request per (user, club)
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "club_id", Value: 1}},
				Options: options.Index().SetName("uniq_pending_user_club").SetUnique(true).
					SetPartialFilterExpression(bson.M{"status": "pending"}),
			},
			{Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("idx_club_status")},
		},
		EventsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}}, Options: options.Index().SetName("idx_status_date")},
			{Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_club_created")},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_created")},
			{Keys: bson.D{{Key: "hashtags", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_hashtags")},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("idx_post_created")},
		},
		NotificationsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_user_read")},
		},
		AnnouncementsCollection: {
			{Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_club_created")},
		},
		TokensCollection: {
			{Keys: bson.D{{Key: "token_hash", Value: 1}}, Options: options.Index().SetName("uniq_token_hash").SetUnique(true)},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetName("ttl_expires_at").SetExpireAfterSeconds(0)},
		},
	}

	var problems []string
	for coll, models := range sets {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
