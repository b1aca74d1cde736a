package contract

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// PostFilterOptions narrows feed listings.
type PostFilterOptions struct {
	Pagination
	Hashtag string
	OwnerID string
}

type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id string) (*entity.Post, error)
	// ListPosts returns a page of posts, newest first, and the total count.
	ListPosts(ctx context.Context, opts *PostFilterOptions) ([]*entity.Post, int64, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID, userID string) (*entity.Post, error)
	IncrementCommentCount(ctx context.Context, postID string, delta int) error
}
