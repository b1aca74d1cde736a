package contract

import "context"

// ITransactor runs fn so that every repository write made with the ctx it
// receives commits together or not at all.
type ITransactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
