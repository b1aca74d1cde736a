package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection(CommentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return writeErr(err, nil, "failed to create comment")
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, findErr(err, entity.ErrCommentNotFound, "failed to get comment")
	}
	return &comment, nil
}

// ListByPost returns the comments of a post, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, entity.NewStoreError("failed to list comments", err)
	}
	defer cursor.Close(ctx)

	comments := []*entity.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, entity.NewStoreError("failed to decode comments", err)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return entity.NewStoreError("failed to delete comment", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, entity.NewStoreError("failed to delete comments", err)
	}
	return result.DeletedCount, nil
}
