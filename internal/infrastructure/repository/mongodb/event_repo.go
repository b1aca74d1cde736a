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

type EventRepository struct {
	collection *mongo.Collection
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{collection: db.Collection(EventsCollection)}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return writeErr(err, nil, "failed to create event")
	}
	return nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, findErr(err, entity.ErrEventNotFound, "failed to get event")
	}
	return &event, nil
}

func (r *EventRepository) ListEvents(ctx context.Context, opts *contract.EventFilterOptions) ([]*entity.Event, error) {
	filter := bson.M{}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	if opts.ClubID != nil {
		filter["club_id"] = *opts.ClubID
	}

	sortField := "created_at"
	if opts.SortBy == "date" {
		sortField = "date"
	}
	sortOrder := -1
	if opts.SortOrder == "asc" {
		sortOrder = 1
	}
	findOptions := options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, entity.NewStoreError("failed to list events", err)
	}
	defer cursor.Close(ctx)

	events := []*entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, entity.NewStoreError("failed to decode events", err)
	}
	return events, nil
}

func (r *EventRepository) TransitionStatus(ctx context.Context, id string, from, to entity.EventStatus, deciderID string, at time.Time) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "decided_by": deciderID, "decided_at": at}},
	)
	if err != nil {
		return entity.NewStoreError("failed to update event status", err)
	}
	if result.MatchedCount == 1 {
		return nil
	}
	if _, err := r.GetEventByID(ctx, id); err != nil {
		return err
	}
	return entity.ErrNotPending
}

func (r *EventRepository) ToggleEngagement(ctx context.Context, id, userID string, kind entity.EngagementKind) (*entity.Event, error) {
	field, err := kind.Field()
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var event entity.Event
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, togglePipeline(field, userID), opts).Decode(&event)
	if err != nil {
		return nil, findErr(err, entity.ErrEventNotFound, "failed to toggle engagement")
	}
	return &event, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return entity.NewStoreError("failed to delete event", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrEventNotFound
	}
	return nil
}
