package dto

import (
	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required,max=5000"`
	Tag      string `json:"tag" binding:"max=64"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type CreateAnnouncementRequest struct {
	Title  string `json:"title" binding:"required,max=160"`
	Body   string `json:"body" binding:"required,max=5000"`
	ClubID string `json:"club_id"`
}

// PaginatedPostResponse is one page of the feed.
type PaginatedPostResponse struct {
	Posts      []*entity.Post          `json:"posts"`
	Pagination contract.PaginationMeta `json:"pagination"`
}

// MarkAllReadResponse reports how many notifications were updated.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
