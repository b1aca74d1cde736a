package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// findErr maps a FindOne/Decode failure to notFound or a store error.
func findErr(err, notFound error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return entity.NewStoreError(op, err)
}

// writeErr maps a write failure. Duplicate key violations become dup when
// it is set.
func writeErr(err, dup error, op string) error {
	if dup != nil && mongo.IsDuplicateKeyError(err) {
		return dup
	}
	var de *entity.DomainError
	if errors.As(err, &de) {
		return err
	}
	return entity.NewStoreError(op, err)
}
