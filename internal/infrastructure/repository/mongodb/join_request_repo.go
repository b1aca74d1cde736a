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

type JoinRequestRepository struct {
	collection *mongo.Collection
}

var _ contract.IJoinRequestRepository = (*JoinRequestRepository)(nil)

func NewJoinRequestRepository(db *mongo.Database) *JoinRequestRepository {
	return &JoinRequestRepository{collection: db.Collection(JoinRequestsCollection)}
}

// Create relies on the partial unique index over pending (user_id, club_id).
func (r *JoinRequestRepository) Create(ctx context.Context, req *entity.JoinRequest) error {
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return writeErr(err, entity.ErrDuplicateRequest, "failed to create join request")
	}
	return nil
}

func (r *JoinRequestRepository) GetByID(ctx context.Context, id string) (*entity.JoinRequest, error) {
	var req entity.JoinRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, findErr(err, entity.ErrJoinRequestNotFound, "failed to get join request")
	}
	return &req, nil
}

func (r *JoinRequestRepository) FindPending(ctx context.Context, userID, clubID string) (*entity.JoinRequest, error) {
	var req entity.JoinRequest
	filter := bson.M{"user_id": userID, "club_id": clubID, "status": entity.JoinStatusPending}
	if err := r.collection.FindOne(ctx, filter).Decode(&req); err != nil {
		return nil, findErr(err, entity.ErrJoinRequestNotFound, "failed to get join request")
	}
	return &req, nil
}

// TransitionStatus only matches a request still in `from`, so two concurrent
// decisions cannot both succeed.
func (r *JoinRequestRepository) TransitionStatus(ctx context.Context, id string, from, to entity.JoinStatus, deciderID string, at time.Time) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "decided_by": deciderID, "decided_at": at}},
	)
	if err != nil {
		return entity.NewStoreError("failed to update join request", err)
	}
	if result.MatchedCount == 1 {
		return nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return entity.ErrNotPending
}

func (r *JoinRequestRepository) RejectPendingForUser(ctx context.Context, userID, exceptID, deciderID string, at time.Time) (int64, error) {
	filter := bson.M{"user_id": userID, "status": entity.JoinStatusPending}
	if exceptID != "" {
		filter["_id"] = bson.M{"$ne": exceptID}
	}
	update := bson.M{"$set": bson.M{
		"status":     entity.JoinStatusRejected,
		"decided_by": deciderID,
		"decided_at": at,
	}}
	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, entity.NewStoreError("failed to reject pending join requests", err)
	}
	return result.ModifiedCount, nil
}

// List returns matching requests oldest first.
func (r *JoinRequestRepository) List(ctx context.Context, f contract.JoinRequestFilter) ([]*entity.JoinRequest, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.ClubID != "" {
		filter["club_id"] = f.ClubID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, entity.NewStoreError("failed to list join requests", err)
	}
	defer cursor.Close(ctx)

	reqs := []*entity.JoinRequest{}
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, entity.NewStoreError("failed to decode join requests", err)
	}
	return reqs, nil
}
