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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := user.Affiliation.Validate(); err != nil {
		return err
	}
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "username") {
			return entity.ErrUsernameTaken
		}
		return entity.ErrEmailTaken
	}
	if err != nil {
		return entity.NewStoreError("failed to create user", err)
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, findErr(err, entity.ErrUserNotFound, "failed to get user")
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// UpdateProfile replaces the profile block and returns the updated user.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, profile entity.Profile, complete bool) (*entity.User, error) {
	update := bson.M{"$set": bson.M{
		"profile":          profile,
		"profile_complete": complete,
		"updated_at":       time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		return nil, findErr(err, entity.ErrUserNotFound, "failed to update profile")
	}
	return &user, nil
}

// affiliationFilter matches a stored affiliation equal to a. club_id is
// omitted from the document when empty, so an empty id matches a missing field.
func affiliationFilter(id string, a entity.Affiliation) bson.M {
	filter := bson.M{"_id": id, "affiliation.role": a.Role}
	if a.ClubID == "" {
		filter["affiliation.club_id"] = bson.M{"$in": bson.A{nil, ""}}
	} else {
		filter["affiliation.club_id"] = a.ClubID
	}
	return filter
}

// UpdateAffiliation is a compare-and-swap on the {role, club} pair.
func (r *MongoUserRepository) UpdateAffiliation(ctx context.Context, id string, from, to entity.Affiliation) error {
	if err := to.Validate(); err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"affiliation": to, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, affiliationFilter(id, from), update)
	if err != nil {
		return entity.NewStoreError("failed to update affiliation", err)
	}
	if result.MatchedCount == 1 {
		return nil
	}

	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return entity.NewStoreError("failed to update affiliation", err)
	}
	if n == 0 {
		return entity.ErrUserNotFound
	}
	return entity.ErrAffiliationChanged
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, opts *contract.UserFilterOptions) ([]*entity.User, int64, error) {
	filter := bson.M{}
	if opts.Role != nil {
		filter["affiliation.role"] = *opts.Role
	}
	if opts.ClubID != nil {
		filter["affiliation.club_id"] = *opts.ClubID
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, entity.NewStoreError("failed to count users", err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	if opts.PageSize > 0 {
		page := max(opts.Page, 1)
		findOptions.SetSkip(int64((page - 1) * opts.PageSize)).SetLimit(int64(opts.PageSize))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, entity.NewStoreError("failed to list users", err)
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, entity.NewStoreError("failed to decode users", err)
	}
	return users, total, nil
}
