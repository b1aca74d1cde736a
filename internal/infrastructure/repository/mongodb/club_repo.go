package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type ClubRepository struct {
	collection *mongo.Collection
}

var _ contract.IClubRepository = (*ClubRepository)(nil)

func NewClubRepository(db *mongo.Database) *ClubRepository {
	return &ClubRepository{collection: db.Collection(ClubsCollection)}
}

func (r *ClubRepository) CreateClub(ctx context.Context, club *entity.Club) error {
	club.NameCI = strings.ToLower(club.Name)
	if _, err := r.collection.InsertOne(ctx, club); err != nil {
		return writeErr(err, entity.ErrClubNameTaken, "failed to create club")
	}
	return nil
}

func (r *ClubRepository) findOne(ctx context.Context, filter bson.M) (*entity.Club, error) {
	var club entity.Club
	if err := r.collection.FindOne(ctx, filter).Decode(&club); err != nil {
		return nil, findErr(err, entity.ErrClubNotFound, "failed to get club")
	}
	return &club, nil
}

func (r *ClubRepository) GetClubByID(ctx context.Context, id string) (*entity.Club, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetClubByName matches case-insensitively.
func (r *ClubRepository) GetClubByName(ctx context.Context, name string) (*entity.Club, error) {
	return r.findOne(ctx, bson.M{"name_ci": strings.ToLower(strings.TrimSpace(name))})
}

func (r *ClubRepository) GetClubByCoordinator(ctx context.Context, userID string) (*entity.Club, error) {
	return r.findOne(ctx, bson.M{"coordinator_id": userID})
}

func (r *ClubRepository) ListClubs(ctx context.Context) ([]*entity.Club, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, entity.NewStoreError("failed to list clubs", err)
	}
	defer cursor.Close(ctx)

	clubs := []*entity.Club{}
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, entity.NewStoreError("failed to decode clubs", err)
	}
	return clubs, nil
}

// SetCoordinator hands the club from `from` to `to`, provided `from` still holds it.
func (r *ClubRepository) SetCoordinator(ctx context.Context, clubID, from, to string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": clubID, "coordinator_id": from},
		bson.M{"$set": bson.M{"coordinator_id": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return entity.NewStoreError("failed to set coordinator", err)
	}
	if result.MatchedCount == 1 {
		return nil
	}
	if _, err := r.GetClubByID(ctx, clubID); err != nil {
		return err
	}
	return entity.NewInvalidTransitionError("club coordinator changed concurrently")
}
