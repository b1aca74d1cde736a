package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection(PostsCollection)}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return writeErr(err, nil, "failed to create post")
	}
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, findErr(err, entity.ErrPostNotFound, "failed to get post")
	}
	return &post, nil
}

func (r *PostRepository) ListPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]*entity.Post, int64, error) {
	filter := bson.M{}
	if opts.Hashtag != "" {
		filter["hashtags"] = opts.Hashtag
	}
	if opts.OwnerID != "" {
		filter["owner_id"] = opts.OwnerID
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, entity.NewStoreError("failed to count posts", err)
	}

	skip := int64((opts.Page - 1) * opts.PageSize)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, entity.NewStoreError("failed to list posts", err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, entity.NewStoreError("failed to decode posts", err)
	}
	return posts, total, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return entity.NewStoreError("failed to delete post", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*entity.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post entity.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, togglePipeline("likes", userID), opts).Decode(&post)
	if err != nil {
		return nil, findErr(err, entity.ErrPostNotFound, "failed to toggle like")
	}
	return &post, nil
}

func (r *PostRepository) IncrementCommentCount(ctx context.Context, postID string, delta int) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"comment_count": delta}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		return entity.NewStoreError("failed to update comment count", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
