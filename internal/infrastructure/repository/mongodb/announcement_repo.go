package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type AnnouncementRepository struct {
	collection *mongo.Collection
}

var _ contract.IAnnouncementRepository = (*AnnouncementRepository)(nil)

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{collection: db.Collection(AnnouncementsCollection)}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return writeErr(err, nil, "failed to create announcement")
	}
	return nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*entity.Announcement, error) {
	var a entity.Announcement
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, findErr(err, entity.ErrAnnouncementNotFound, "failed to get announcement")
	}
	return &a, nil
}

// List returns global announcements plus, when clubID is set, that club's ones.
func (r *AnnouncementRepository) List(ctx context.Context, clubID string) ([]*entity.Announcement, error) {
	scopes := bson.A{nil, ""}
	if clubID != "" {
		scopes = append(scopes, clubID)
	}
	filter := bson.M{"club_id": bson.M{"$in": scopes}}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, entity.NewStoreError("failed to list announcements", err)
	}
	defer cursor.Close(ctx)

	announcements := []*entity.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, entity.NewStoreError("failed to decode announcements", err)
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return entity.NewStoreError("failed to delete announcement", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrAnnouncementNotFound
	}
	return nil
}
