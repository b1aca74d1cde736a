package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/utils"
)

const (
	maxPostLength    = 5000
	maxCommentLength = 1000
)

// PostUseCase handles the social feed: posts, likes and comments.
type PostUseCase struct {
	postRepo      contract.IPostRepository
	commentRepo   contract.ICommentRepository
	userRepo      contract.IUserRepository
	transactor    contract.ITransactor
	notifier      usecasecontract.INotificationUseCase
	sanitizer     contract.ISanitizer
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewPostUseCase(
	postRepo contract.IPostRepository,
	commentRepo contract.ICommentRepository,
	userRepo contract.IUserRepository,
	transactor contract.ITransactor,
	notifier usecasecontract.INotificationUseCase,
	sanitizer contract.ISanitizer,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *PostUseCase {
	return &PostUseCase{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		transactor:    transactor,
		notifier:      notifier,
		sanitizer:     sanitizer,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

var _ usecasecontract.IPostUseCase = (*PostUseCase)(nil)

// CreatePost publishes a post. Hashtags come from the #word tokens of the
// content merged with the optional explicit tag.
func (uc *PostUseCase) CreatePost(ctx context.Context, callerID, content, tag, imageURL string) (*entity.Post, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(uc.sanitizer.Sanitize(content))
	if content == "" {
		return nil, entity.NewValidationError("content is required")
	}
	if len(content) > maxPostLength {
		return nil, entity.NewValidationError(fmt.Sprintf("content must be at most %d characters", maxPostLength))
	}

	now := time.Now()
	post := &entity.Post{
		ID:        uc.uuidGenerator.NewUUID(),
		OwnerID:   caller.ID,
		Content:   content,
		ImageURL:  strings.TrimSpace(imageURL),
		Hashtags:  utils.MergeHashtags(content, tag),
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, err
	}
	return post, nil
}

func (uc *PostUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	return uc.postRepo.GetPostByID(ctx, postID)
}

// ListPosts returns a page of the feed, newest first, optionally filtered by hashtag.
func (uc *PostUseCase) ListPosts(ctx context.Context, page, pageSize int, hashtag string) ([]*entity.Post, contract.PaginationMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	posts, total, err := uc.postRepo.ListPosts(ctx, &contract.PostFilterOptions{
		Pagination: contract.Pagination{Page: page, PageSize: pageSize},
		Hashtag:    utils.NormalizeHashtag(hashtag),
	})
	if err != nil {
		return nil, contract.PaginationMeta{}, err
	}
	return posts, paginationMeta(page, pageSize, total), nil
}

func paginationMeta(page, pageSize int, total int64) contract.PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return contract.PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// DeletePost removes a post and its comments. Only the owner or an admin may do it.
func (uc *PostUseCase) DeletePost(ctx context.Context, callerID, postID string) error {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return err
	}
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != caller.ID && !caller.Affiliation.IsAdmin() {
		return entity.ErrForbidden
	}
	return uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.commentRepo.DeleteByPost(ctx, post.ID); err != nil {
			return err
		}
		return uc.postRepo.DeletePost(ctx, post.ID)
	})
}

// ToggleLike flips the caller's like on a post. The owner is notified of new likes.
func (uc *PostUseCase) ToggleLike(ctx context.Context, callerID, postID string) (*entity.EngagementResult, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	post, err := uc.postRepo.ToggleLike(ctx, postID, caller.ID)
	if err != nil {
		return nil, err
	}
	result := &entity.EngagementResult{
		Active: slices.Contains(post.Likes, caller.ID),
		Count:  len(post.Likes),
	}
	if result.Active {
		uc.notifier.Notify(ctx, &entity.Notification{
			UserID:  post.OwnerID,
			ActorID: caller.ID,
			Type:    entity.NotificationPostLiked,
			RefID:   post.ID,
			Message: fmt.Sprintf("%s liked your post.", caller.Username),
		})
	}
	return result, nil
}

// AddComment attaches a comment to a post and notifies the post owner.
func (uc *PostUseCase) AddComment(ctx context.Context, callerID, postID, text string) (*entity.Comment, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(uc.sanitizer.Sanitize(text))
	if text == "" {
		return nil, entity.NewValidationError("comment text is required")
	}
	if len(text) > maxCommentLength {
		return nil, entity.NewValidationError(fmt.Sprintf("comment must be at most %d characters", maxCommentLength))
	}
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:        uc.uuidGenerator.NewUUID(),
		PostID:    post.ID,
		OwnerID:   caller.ID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	err = uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.commentRepo.Create(ctx, comment); err != nil {
			return err
		}
		return uc.postRepo.IncrementCommentCount(ctx, post.ID, 1)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:  post.OwnerID,
		ActorID: caller.ID,
		Type:    entity.NotificationPostCommented,
		RefID:   post.ID,
		Message: fmt.Sprintf("%s commented on your post.", caller.Username),
	})
	return comment, nil
}

func (uc *PostUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment. The caller must own either the post or the comment.
func (uc *PostUseCase) DeleteComment(ctx context.Context, callerID, postID, commentID string) error {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return err
	}
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != post.ID {
		return entity.ErrCommentNotFound
	}
	if caller.ID != post.OwnerID && caller.ID != comment.OwnerID {
		return entity.NewUnauthorizedError("only the post owner or the comment owner can delete this comment")
	}
	return uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.commentRepo.Delete(ctx, comment.ID); err != nil {
			return err
		}
		return uc.postRepo.IncrementCommentCount(ctx, post.ID, -1)
	})
}
