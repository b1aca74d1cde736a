package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// Transactor runs use-case callbacks inside a multi-document transaction.
// Repositories take part in it because the callback receives the session
// context as its ctx. This needs a replica set or a sharded cluster.
type Transactor struct {
	client *mongo.Client
}

var _ contract.ITransactor = (*Transactor)(nil)

func NewTransactor(client *mongo.Client) *Transactor {
	return &Transactor{client: client}
}

func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return entity.NewStoreError("failed to start session", err)
	}
	defer session.EndSession(ctx)

	// WithTransaction retries fn on transient errors, so fn must be safe to rerun.
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
