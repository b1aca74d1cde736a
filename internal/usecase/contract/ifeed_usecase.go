package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type IPostUseCase interface {
	CreatePost(ctx context.Context, callerID, content, tag, imageURL string) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	ListPosts(ctx context.Context, page, pageSize int, hashtag string) ([]*entity.Post, contract.PaginationMeta, error)
	DeletePost(ctx context.Context, callerID, postID string) error
	ToggleLike(ctx context.Context, callerID, postID string) (*entity.EngagementResult, error)

	AddComment(ctx context.Context, callerID, postID, text string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, callerID, postID, commentID string) error
}

type INotificationUseCase interface {
	Notify(ctx context.Context, n *entity.Notification)
	List(ctx context.Context, callerID string, unreadOnly bool) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, callerID, notificationID string) error
	MarkAllRead(ctx context.Context, callerID string) (int64, error)
}

type IAnnouncementUseCase interface {
	Create(ctx context.Context, callerID, title, body, clubID string) (*entity.Announcement, error)
	List(ctx context.Context, clubID string) ([]*entity.Announcement, error)
	Delete(ctx context.Context, callerID, announcementID string) error
}
