package mocks

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type MockPostUsecase struct {
	Err error

	LastCaller   string
	LastPage     int
	LastPageSize int
	LastHashtag  string
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func (m *MockPostUsecase) CreatePost(ctx context.Context, callerID, content, tag, imageURL string) (*entity.Post, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Post{ID: "post-1", OwnerID: callerID, Content: content, Hashtags: []string{}, Likes: []string{}}, nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Post{ID: postID}, nil
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, page, pageSize int, hashtag string) ([]*entity.Post, contract.PaginationMeta, error) {
	m.LastPage, m.LastPageSize, m.LastHashtag = page, pageSize, hashtag
	if m.Err != nil {
		return nil, contract.PaginationMeta{}, m.Err
	}
	return []*entity.Post{{ID: "post-1"}}, contract.PaginationMeta{CurrentPage: page, PageSize: pageSize, TotalItems: 1, TotalPages: 1}, nil
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, callerID, postID string) error {
	m.LastCaller = callerID
	return m.Err
}

func (m *MockPostUsecase) ToggleLike(ctx context.Context, callerID, postID string) (*entity.EngagementResult, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.EngagementResult{Active: true, Count: 1}, nil
}

func (m *MockPostUsecase) AddComment(ctx context.Context, callerID, postID, text string) (*entity.Comment, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Comment{ID: "comment-1", PostID: postID, OwnerID: callerID, Text: text}, nil
}

func (m *MockPostUsecase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Comment{}, nil
}

func (m *MockPostUsecase) DeleteComment(ctx context.Context, callerID, postID, commentID string) error {
	m.LastCaller = callerID
	return m.Err
}

type MockNotificationUsecase struct {
	Err error

	LastUnread bool
}

var _ usecasecontract.INotificationUseCase = (*MockNotificationUsecase)(nil)

func (m *MockNotificationUsecase) Notify(ctx context.Context, n *entity.Notification) {}

func (m *MockNotificationUsecase) List(ctx context.Context, callerID string, unreadOnly bool) ([]*entity.Notification, error) {
	m.LastUnread = unreadOnly
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Notification{}, nil
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, callerID, notificationID string) error {
	return m.Err
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return 3, nil
}

type MockAnnouncementUsecase struct {
	Err error

	LastClubID string
}

var _ usecasecontract.IAnnouncementUseCase = (*MockAnnouncementUsecase)(nil)

func (m *MockAnnouncementUsecase) Create(ctx context.Context, callerID, title, body, clubID string) (*entity.Announcement, error) {
	m.LastClubID = clubID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Announcement{ID: "ann-1", AuthorID: callerID, ClubID: clubID, Title: title, Body: body}, nil
}

func (m *MockAnnouncementUsecase) List(ctx context.Context, clubID string) ([]*entity.Announcement, error) {
	m.LastClubID = clubID
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Announcement{}, nil
}

func (m *MockAnnouncementUsecase) Delete(ctx context.Context, callerID, announcementID string) error {
	return m.Err
}
