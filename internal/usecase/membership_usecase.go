package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// MembershipUseCase drives the {role, club} state machine: join requests,
// member removal and admin role changes. Every transition that touches more
// than one document runs inside a single transaction, and every status change
// is conditioned on the stored status.
type MembershipUseCase struct {
	userRepo      contract.IUserRepository
	clubRepo      contract.IClubRepository
	joinRepo      contract.IJoinRequestRepository
	transactor    contract.ITransactor
	clubCache     contract.IClubCache
	notifier      usecasecontract.INotificationUseCase
	uuidGenerator contract.IUUIDGenerator
	metrics       usecasecontract.IMetricsRecorder
	logger        usecasecontract.IAppLogger
}

func NewMembershipUseCase(
	userRepo contract.IUserRepository,
	clubRepo contract.IClubRepository,
	joinRepo contract.IJoinRequestRepository,
	transactor contract.ITransactor,
	notifier usecasecontract.INotificationUseCase,
	uuidGenerator contract.IUUIDGenerator,
	metrics usecasecontract.IMetricsRecorder,
	logger usecasecontract.IAppLogger,
) *MembershipUseCase {
	return &MembershipUseCase{
		userRepo:      userRepo,
		clubRepo:      clubRepo,
		joinRepo:      joinRepo,
		transactor:    transactor,
		notifier:      notifier,
		uuidGenerator: uuidGenerator,
		metrics:       metrics,
		logger:        logger,
	}
}

// SetClubCache lets coordinator reassignments evict stale club entries.
func (uc *MembershipUseCase) SetClubCache(cache contract.IClubCache) {
	uc.clubCache = cache
}

var _ usecasecontract.IMembershipUseCase = (*MembershipUseCase)(nil)

// RequestJoin files a pending request for the caller to join clubID.
func (uc *MembershipUseCase) RequestJoin(ctx context.Context, callerID, clubID string) (*entity.JoinRequest, error) {
	if clubID == "" {
		return nil, entity.NewValidationError("club id is required")
	}
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.clubRepo.GetClubByID(ctx, clubID); err != nil {
		return nil, err
	}

	switch {
	case caller.Affiliation.IsMemberOf(clubID):
		return nil, entity.NewInvalidTransitionError("you are already a member of this club")
	case !caller.Affiliation.IsVisitor():
		return nil, entity.NewInvalidTransitionError(fmt.Sprintf("a %s cannot request to join a club", caller.Role()))
	}

	if _, err := uc.joinRepo.FindPending(ctx, caller.ID, clubID); err == nil {
		return nil, entity.ErrDuplicateRequest
	} else if !errors.Is(err, entity.ErrJoinRequestNotFound) {
		return nil, err
	}

	req := &entity.JoinRequest{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    caller.ID,
		ClubID:    clubID,
		Status:    entity.JoinStatusPending,
		CreatedAt: time.Now(),
	}
	// the unique partial index on pending requests settles concurrent duplicates
	if err := uc.joinRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	uc.metrics.JoinRequested()
	return req, nil
}

// DecideJoin accepts or rejects a pending request. Acceptance flips the
// request and the user's affiliation in one transaction: either both are
// written or neither is.
func (uc *MembershipUseCase) DecideJoin(ctx context.Context, callerID, requestID string, decision entity.JoinDecision) (*entity.JoinRequest, error) {
	target, err := decision.TargetStatus()
	if err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, entity.NewValidationError("join request id is required")
	}
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}

	req, err := uc.joinRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.Affiliation.CanManage(req.ClubID) {
		return nil, entity.ErrForbidden
	}
	if req.Status != entity.JoinStatusPending {
		return nil, entity.ErrNotPending
	}

	now := time.Now()
	err = uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.joinRepo.TransitionStatus(ctx, req.ID, entity.JoinStatusPending, target, caller.ID, now); err != nil {
			return err
		}
		if target == entity.JoinStatusRejected {
			return nil
		}

		user, err := uc.userRepo.GetUserByID(ctx, req.UserID)
		if err != nil {
			return err
		}
		if !user.Affiliation.IsVisitor() {
			return entity.NewInvalidTransitionError(fmt.Sprintf("user is already a %s", user.Role()))
		}
		if err := uc.userRepo.UpdateAffiliation(ctx, user.ID, user.Affiliation, entity.MemberOf(req.ClubID)); err != nil {
			return err
		}
		// a user belongs to a single club, so their other pending requests are moot
		_, err = uc.joinRepo.RejectPendingForUser(ctx, user.ID, req.ID, caller.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	req.Status = target
	req.DecidedAt = &now
	req.DecidedBy = caller.ID

	uc.metrics.JoinDecided(string(decision))
	uc.logger.Infof("join request %s %s by %s", req.ID, target, caller.ID)
	uc.notifyJoinDecision(ctx, req)
	return req, nil
}

func (uc *MembershipUseCase) notifyJoinDecision(ctx context.Context, req *entity.JoinRequest) {
	n := &entity.Notification{
		UserID:  req.UserID,
		ActorID: req.DecidedBy,
		RefID:   req.ClubID,
	}
	if req.Status == entity.JoinStatusAccepted {
		n.Type = entity.NotificationJoinAccepted
		n.Message = "Your request to join the club was accepted. Welcome aboard!"
	} else {
		n.Type = entity.NotificationJoinRejected
		n.Message = "Your request to join the club was rejected."
	}
	uc.notifier.Notify(ctx, n)
}

// RemoveMember turns a member of clubID back into a visitor.
func (uc *MembershipUseCase) RemoveMember(ctx context.Context, callerID, clubID, userID string) error {
	if clubID == "" || userID == "" {
		return entity.NewValidationError("club id and user id are required")
	}
	caller, err := loadClubManager(ctx, uc.userRepo, callerID, clubID)
	if err != nil {
		return err
	}
	if _, err := uc.clubRepo.GetClubByID(ctx, clubID); err != nil {
		return err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Affiliation.IsMemberOf(clubID) {
		return entity.ErrNotAMember
	}
	if err := uc.userRepo.UpdateAffiliation(ctx, userID, user.Affiliation, entity.Visitor()); err != nil {
		if errors.Is(err, entity.ErrAffiliationChanged) {
			return entity.ErrNotAMember
		}
		return err
	}

	uc.metrics.MemberRemoved()
	uc.logger.Infof("user %s removed from club %s by %s", userID, clubID, caller.ID)
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:  userID,
		ActorID: caller.ID,
		Type:    entity.NotificationRemovedFromClub,
		RefID:   clubID,
		Message: "You have been removed from the club.",
	})
	return nil
}

// ChangeRole is the admin-only direct transition. The new role and club are
// validated together, so the result is always a consistent affiliation.
// Making someone coordinator of a club hands the club over to them and turns
// the previous coordinator into a visitor. A current coordinator cannot be
// moved away until their club has been handed over.
func (uc *MembershipUseCase) ChangeRole(ctx context.Context, callerID, userID string, role entity.UserRole, clubID string) (*entity.User, error) {
	admin, err := loadAdmin(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, entity.NewValidationError("user id is required")
	}
	if userID == admin.ID {
		return nil, entity.NewInvalidTransitionError("admins cannot change their own role")
	}
	target, err := entity.NewAffiliation(role, clubID)
	if err != nil {
		return nil, err
	}

	var (
		result    *entity.User
		demotedID string
		handover  bool
		now       = time.Now()
	)
	err = uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		// the transactor may retry fn; nothing may leak from an aborted attempt
		result, demotedID, handover = nil, "", false

		user, err := uc.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		current := user.Affiliation
		if current == target {
			result = user
			return nil
		}
		if current.Role == entity.RoleCoordinator {
			return entity.NewInvalidTransitionError("user coordinates a club; assign the club a new coordinator first")
		}

		if target.ClubID != "" {
			club, err := uc.clubRepo.GetClubByID(ctx, target.ClubID)
			if err != nil {
				return err
			}
			if target.Role == entity.RoleCoordinator && club.CoordinatorID != user.ID {
				demotedID, err = uc.demoteCoordinator(ctx, club)
				if err != nil {
					return err
				}
				if err := uc.clubRepo.SetCoordinator(ctx, club.ID, club.CoordinatorID, user.ID); err != nil {
					return err
				}
				handover = true
			}
		}

		if err := uc.userRepo.UpdateAffiliation(ctx, user.ID, current, target); err != nil {
			return err
		}
		if !target.IsVisitor() {
			if _, err := uc.joinRepo.RejectPendingForUser(ctx, user.ID, "", admin.ID, now); err != nil {
				return err
			}
		}
		user.Affiliation = target
		user.UpdatedAt = now
		result = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	if handover {
		uc.invalidateClub(ctx, target.ClubID)
	}
	uc.metrics.RoleChanged(string(target.Role))
	uc.logger.Infof("role of %s changed to %s by %s", userID, target, admin.ID)
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:  userID,
		ActorID: admin.ID,
		Type:    entity.NotificationRoleChanged,
		RefID:   target.ClubID,
		Message: fmt.Sprintf("Your role is now %s.", target.Role),
	})
	if demotedID != "" {
		uc.notifier.Notify(ctx, &entity.Notification{
			UserID:  demotedID,
			ActorID: admin.ID,
			Type:    entity.NotificationRoleChanged,
			RefID:   target.ClubID,
			Message: "You are no longer the coordinator of your club.",
		})
	}
	return result, nil
}

// demoteCoordinator turns the current coordinator of club into a visitor and
// returns their id. A dangling coordinator reference is tolerated.
func (uc *MembershipUseCase) demoteCoordinator(ctx context.Context, club *entity.Club) (string, error) {
	prev, err := uc.userRepo.GetUserByID(ctx, club.CoordinatorID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	if !prev.Affiliation.IsCoordinatorOf(club.ID) {
		return "", nil
	}
	if err := uc.userRepo.UpdateAffiliation(ctx, prev.ID, prev.Affiliation, entity.Visitor()); err != nil {
		return "", err
	}
	return prev.ID, nil
}

func (uc *MembershipUseCase) invalidateClub(ctx context.Context, clubID string) {
	if uc.clubCache == nil {
		return
	}
	if err := uc.clubCache.InvalidateClub(ctx, clubID); err != nil {
		uc.logger.Warnf("club cache invalidation failed: %v", err)
	}
	if err := uc.clubCache.InvalidateClubList(ctx); err != nil {
		uc.logger.Warnf("club cache invalidation failed: %v", err)
	}
}

// ListClubRequests lists a club's join requests in FIFO order. An empty
// status lists every request.
func (uc *MembershipUseCase) ListClubRequests(ctx context.Context, callerID, clubID string, status entity.JoinStatus) ([]*entity.JoinRequest, error) {
	if _, err := loadClubManager(ctx, uc.userRepo, callerID, clubID); err != nil {
		return nil, err
	}
	switch status {
	case "", entity.JoinStatusPending, entity.JoinStatusAccepted, entity.JoinStatusRejected:
	default:
		return nil, entity.NewValidationError("status must be one of: pending, accepted, rejected")
	}
	return uc.joinRepo.List(ctx, contract.JoinRequestFilter{ClubID: clubID, Status: status})
}

func (uc *MembershipUseCase) ListMyRequests(ctx context.Context, callerID string) ([]*entity.JoinRequest, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	return uc.joinRepo.List(ctx, contract.JoinRequestFilter{UserID: caller.ID})
}
