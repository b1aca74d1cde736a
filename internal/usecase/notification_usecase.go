package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// mailedNotifications are also delivered by e-mail when a mail service is configured.
var mailedNotifications = map[entity.NotificationType]string{
	entity.NotificationJoinAccepted:    "Your club join request was accepted",
	entity.NotificationJoinRejected:    "Your club join request was rejected",
	entity.NotificationRemovedFromClub: "You were removed from a club",
	entity.NotificationRoleChanged:     "Your role has changed",
	entity.NotificationEventApproved:   "Your event was approved",
	entity.NotificationEventRejected:   "Your event was rejected",
}

type NotificationUseCase struct {
	notificationRepo contract.INotificationRepository
	userRepo         contract.IUserRepository
	mailService      contract.IEmailService
	uuidGenerator    contract.IUUIDGenerator
	logger           usecasecontract.IAppLogger
}

// NewNotificationUseCase builds the notifier. mailService may be nil, in
// which case notifications are only stored.
func NewNotificationUseCase(
	notificationRepo contract.INotificationRepository,
	userRepo contract.IUserRepository,
	mailService contract.IEmailService,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailService:      mailService,
		uuidGenerator:    uuidGenerator,
		logger:           logger,
	}
}

var _ usecasecontract.INotificationUseCase = (*NotificationUseCase)(nil)

// Notify records a notification. It is a side effect of an operation that
// already succeeded, so failures are logged and never returned.
func (uc *NotificationUseCase) Notify(ctx context.Context, n *entity.Notification) {
	if n.UserID == "" || n.UserID == n.ActorID {
		return
	}
	n.ID = uc.uuidGenerator.NewUUID()
	n.CreatedAt = time.Now()
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		uc.logger.Errorf("failed to store %s notification for user %s: %v", n.Type, n.UserID, err)
		return
	}

	subject, mailed := mailedNotifications[n.Type]
	if !mailed || uc.mailService == nil {
		return
	}
	user, err := uc.userRepo.GetUserByID(ctx, n.UserID)
	if err != nil {
		uc.logger.Warnf("cannot e-mail notification %s: %v", n.ID, err)
		return
	}
	body := fmt.Sprintf("Hi %s,\n\n%s\n\nThanks,\nClub-Connect", user.Username, n.Message)
	if err := uc.mailService.SendEmail(ctx, user.Email, subject, body); err != nil {
		uc.logger.Warnf("failed to e-mail notification %s to %s: %v", n.ID, user.Email, err)
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, callerID string, unreadOnly bool) ([]*entity.Notification, error) {
	if callerID == "" {
		return nil, entity.ErrInvalidToken
	}
	return uc.notificationRepo.ListByUser(ctx, callerID, unreadOnly)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, callerID, notificationID string) error {
	if callerID == "" {
		return entity.ErrInvalidToken
	}
	return uc.notificationRepo.MarkRead(ctx, notificationID, callerID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	if callerID == "" {
		return 0, entity.ErrInvalidToken
	}
	return uc.notificationRepo.MarkAllRead(ctx, callerID)
}
