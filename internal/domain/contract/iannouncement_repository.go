package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type IAnnouncementRepository interface {
	Create(ctx context.Context, a *entity.Announcement) error
	GetByID(ctx context.Context, id string) (*entity.Announcement, error)
	// List returns global announcements plus, when clubID is set, that club's.
	List(ctx context.Context, clubID string) ([]*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
}
