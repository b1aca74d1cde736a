package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type INotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*entity.Notification, error)
	// MarkRead flags one notification of userID as read.
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
