package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// maxNotifications caps a single listing.
const maxNotifications = 100

type NotificationRepository struct {
	collection *mongo.Collection
}

var _ contract.INotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection(NotificationsCollection)}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		return writeErr(err, nil, "failed to create notification")
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entity.Notification, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(maxNotifications)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, entity.NewStoreError("failed to list notifications", err)
	}
	defer cursor.Close(ctx)

	notifications := []*entity.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, entity.NewStoreError("failed to decode notifications", err)
	}
	return notifications, nil
}

// MarkRead only touches notifications owned by userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return entity.NewStoreError("failed to mark notification read", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, entity.NewStoreError("failed to mark notifications read", err)
	}
	return result.ModifiedCount, nil
}
