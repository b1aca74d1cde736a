package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// IClubCache defines caching operations for the club registry.
type IClubCache interface {
	GetClub(ctx context.Context, id string) (*entity.Club, bool, error)
	SetClub(ctx context.Context, club *entity.Club) error
	InvalidateClub(ctx context.Context, id string) error

	GetClubList(ctx context.Context) ([]*entity.Club, bool, error)
	SetClubList(ctx context.Context, clubs []*entity.Club) error
	InvalidateClubList(ctx context.Context) error
}
