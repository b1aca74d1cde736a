package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const (
	maxEventTitleLength       = 200
	maxEventDescriptionLength = 5000
)

// EventUseCase implements the event proposal and approval lifecycle.
type EventUseCase struct {
	eventRepo     contract.IEventRepository
	clubRepo      contract.IClubRepository
	userRepo      contract.IUserRepository
	notifier      usecasecontract.INotificationUseCase
	sanitizer     contract.ISanitizer
	uuidGenerator contract.IUUIDGenerator
	metrics       usecasecontract.IMetricsRecorder
	logger        usecasecontract.IAppLogger
}

func NewEventUseCase(
	eventRepo contract.IEventRepository,
	clubRepo contract.IClubRepository,
	userRepo contract.IUserRepository,
	notifier usecasecontract.INotificationUseCase,
	sanitizer contract.ISanitizer,
	uuidGenerator contract.IUUIDGenerator,
	metrics usecasecontract.IMetricsRecorder,
	logger usecasecontract.IAppLogger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:     eventRepo,
		clubRepo:      clubRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		sanitizer:     sanitizer,
		uuidGenerator: uuidGenerator,
		metrics:       metrics,
		logger:        logger,
	}
}

var _ usecasecontract.IEventUseCase = (*EventUseCase)(nil)

// ProposeEvent creates a pending event for the club the caller coordinates.
// Nothing is written when the caller has no club.
func (uc *EventUseCase) ProposeEvent(ctx context.Context, callerID string, in usecasecontract.EventInput) (*entity.Event, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role() != entity.RoleCoordinator {
		return nil, entity.NewUnauthorizedError("only coordinators can propose events")
	}
	club, err := uc.coordinatedClub(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:       strings.TrimSpace(uc.sanitizer.Sanitize(in.Title)),
		Description: strings.TrimSpace(uc.sanitizer.Sanitize(in.Description)),
		Date:        in.Date,
		Venue:       strings.TrimSpace(uc.sanitizer.Sanitize(in.Venue)),
		PosterURL:   strings.TrimSpace(in.PosterURL),
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	event.ID = uc.uuidGenerator.NewUUID()
	event.CreatorID = caller.ID
	event.ClubID = club.ID
	event.Status = entity.EventStatusPending
	event.Likes = []string{}
	event.Interested = []string{}
	event.CreatedAt = time.Now()

	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to create event for club %s: %v", club.ID, err)
		return nil, err
	}
	uc.metrics.EventProposed()
	return event, nil
}

func validateEvent(e *entity.Event) error {
	switch {
	case e.Title == "":
		return entity.NewValidationError("title is required")
	case len(e.Title) > maxEventTitleLength:
		return entity.NewValidationError(fmt.Sprintf("title must be at most %d characters", maxEventTitleLength))
	case len(e.Description) > maxEventDescriptionLength:
		return entity.NewValidationError(fmt.Sprintf("description must be at most %d characters", maxEventDescriptionLength))
	case e.Date.IsZero():
		return entity.NewValidationError("date is required")
	}
	return nil
}

// coordinatedClub resolves the club whose coordinator is userID.
func (uc *EventUseCase) coordinatedClub(ctx context.Context, userID string) (*entity.Club, error) {
	club, err := uc.clubRepo.GetClubByCoordinator(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrClubNotFound) {
			return nil, entity.ErrCoordinatorUnassigned
		}
		return nil, err
	}
	return club, nil
}

// DecideEvent moves a pending event to approved or rejected. Any other
// target, or an event that is no longer pending, is an invalid transition.
func (uc *EventUseCase) DecideEvent(ctx context.Context, callerID, eventID, status string) (*entity.Event, error) {
	admin, err := loadAdmin(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	target, err := entity.ParseDecisionStatus(status)
	if err != nil {
		return nil, err
	}

	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != entity.EventStatusPending {
		return nil, entity.ErrNotPending
	}

	now := time.Now()
	if err := uc.eventRepo.TransitionStatus(ctx, event.ID, entity.EventStatusPending, target, admin.ID, now); err != nil {
		return nil, err
	}
	event.Status = target
	event.DecidedAt = &now
	event.DecidedBy = admin.ID

	uc.metrics.EventDecided(string(target))
	uc.logger.Infof("event %s %s by %s", event.ID, target, admin.ID)

	n := &entity.Notification{
		UserID:  event.CreatorID,
		ActorID: admin.ID,
		RefID:   event.ID,
	}
	if target == entity.EventStatusApproved {
		n.Type = entity.NotificationEventApproved
		n.Message = fmt.Sprintf("Your event %q was approved.", event.Title)
	} else {
		n.Type = entity.NotificationEventRejected
		n.Message = fmt.Sprintf("Your event %q was rejected.", event.Title)
	}
	uc.notifier.Notify(ctx, n)
	return event, nil
}

// ToggleEngagement flips the caller's presence in the like or interested set
// of an approved event and returns the new state and set size.
func (uc *EventUseCase) ToggleEngagement(ctx context.Context, callerID, eventID string, kind entity.EngagementKind) (*entity.EngagementResult, error) {
	if _, err := kind.Field(); err != nil {
		return nil, err
	}
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != entity.EventStatusApproved {
		return nil, entity.NewInvalidTransitionError("only approved events accept engagement")
	}

	updated, err := uc.eventRepo.ToggleEngagement(ctx, event.ID, caller.ID, kind)
	if err != nil {
		return nil, err
	}
	set := updated.EngagementSet(kind)
	return &entity.EngagementResult{
		Active: slices.Contains(set, caller.ID),
		Count:  len(set),
	}, nil
}

// GetEvent returns an approved event to anyone. Pending and rejected events
// are only visible to admins and the owning club's coordinator.
func (uc *EventUseCase) GetEvent(ctx context.Context, callerID, eventID string) (*entity.Event, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == entity.EventStatusApproved {
		return event, nil
	}
	if callerID == "" {
		return nil, entity.ErrEventNotFound
	}
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.Affiliation.CanManage(event.ClubID) {
		return nil, entity.ErrEventNotFound
	}
	return event, nil
}

// ListApproved returns approved events, optionally scoped to a club or to the
// club of a coordinator.
func (uc *EventUseCase) ListApproved(ctx context.Context, filter usecasecontract.ApprovedEventFilter) ([]*entity.Event, error) {
	status := entity.EventStatusApproved
	opts := &contract.EventFilterOptions{Status: &status, SortBy: "date", SortOrder: "desc"}

	switch {
	case filter.ClubID != "":
		opts.ClubID = &filter.ClubID
	case filter.CoordinatorID != "":
		club, err := uc.clubRepo.GetClubByCoordinator(ctx, filter.CoordinatorID)
		if err != nil {
			if errors.Is(err, entity.ErrClubNotFound) {
				return []*entity.Event{}, nil
			}
			return nil, err
		}
		opts.ClubID = &club.ID
	}
	return uc.eventRepo.ListEvents(ctx, opts)
}

// ListPending is the admin review queue, oldest proposal first.
func (uc *EventUseCase) ListPending(ctx context.Context, callerID string) ([]*entity.Event, error) {
	if _, err := loadAdmin(ctx, uc.userRepo, callerID); err != nil {
		return nil, err
	}
	status := entity.EventStatusPending
	return uc.eventRepo.ListEvents(ctx, &contract.EventFilterOptions{Status: &status, SortBy: "created_at", SortOrder: "asc"})
}

// ListMyClubEvents returns every event of the caller's club, whatever its status.
func (uc *EventUseCase) ListMyClubEvents(ctx context.Context, callerID string) ([]*entity.Event, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role() != entity.RoleCoordinator {
		return nil, entity.NewUnauthorizedError("only coordinators have a club event list")
	}
	club, err := uc.coordinatedClub(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return uc.eventRepo.ListEvents(ctx, &contract.EventFilterOptions{ClubID: &club.ID, SortBy: "created_at", SortOrder: "desc"})
}

func (uc *EventUseCase) DeleteEvent(ctx context.Context, callerID, eventID string) error {
	admin, err := loadAdmin(ctx, uc.userRepo, callerID)
	if err != nil {
		return err
	}
	if err := uc.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	uc.logger.Infof("event %s deleted by %s", eventID, admin.ID)
	return nil
}
