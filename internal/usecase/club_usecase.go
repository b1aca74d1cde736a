package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const maxClubDescriptionLength = 2000

// ClubUseCase manages the club registry.
type ClubUseCase struct {
	clubRepo      contract.IClubRepository
	userRepo      contract.IUserRepository
	joinRepo      contract.IJoinRequestRepository
	transactor    contract.ITransactor
	clubCache     contract.IClubCache
	sanitizer     contract.ISanitizer
	uuidGenerator contract.IUUIDGenerator
	metrics       usecasecontract.IMetricsRecorder
	logger        usecasecontract.IAppLogger
}

func NewClubUseCase(
	clubRepo contract.IClubRepository,
	userRepo contract.IUserRepository,
	joinRepo contract.IJoinRequestRepository,
	transactor contract.ITransactor,
	sanitizer contract.ISanitizer,
	uuidGenerator contract.IUUIDGenerator,
	metrics usecasecontract.IMetricsRecorder,
	logger usecasecontract.IAppLogger,
) *ClubUseCase {
	return &ClubUseCase{
		clubRepo:      clubRepo,
		userRepo:      userRepo,
		joinRepo:      joinRepo,
		transactor:    transactor,
		sanitizer:     sanitizer,
		uuidGenerator: uuidGenerator,
		metrics:       metrics,
		logger:        logger,
	}
}

// SetClubCache enables read-through caching of club lookups.
func (uc *ClubUseCase) SetClubCache(cache contract.IClubCache) {
	uc.clubCache = cache
}

var _ usecasecontract.IClubUseCase = (*ClubUseCase)(nil)

// CreateClub registers a club and makes coordinatorID its coordinator in the
// same transaction. The coordinator must currently be a visitor or a member;
// a member leaves their previous club.
func (uc *ClubUseCase) CreateClub(ctx context.Context, callerID, name, description, coordinatorID string) (*entity.Club, error) {
	admin, err := loadAdmin(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(uc.sanitizer.Sanitize(name))
	description = strings.TrimSpace(uc.sanitizer.Sanitize(description))
	if name == "" {
		return nil, entity.NewValidationError("club name is required")
	}
	if len(description) > maxClubDescriptionLength {
		return nil, entity.NewValidationError(fmt.Sprintf("description must be at most %d characters", maxClubDescriptionLength))
	}
	if coordinatorID == "" {
		return nil, entity.NewValidationError("coordinator id is required")
	}

	if _, err := uc.clubRepo.GetClubByName(ctx, name); err == nil {
		return nil, entity.ErrClubNameTaken
	} else if !errors.Is(err, entity.ErrClubNotFound) {
		return nil, err
	}

	now := time.Now()
	club := &entity.Club{
		ID:            uc.uuidGenerator.NewUUID(),
		Name:          name,
		NameCI:        strings.ToLower(name),
		Description:   description,
		CoordinatorID: coordinatorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		coordinator, err := uc.userRepo.GetUserByID(ctx, coordinatorID)
		if err != nil {
			return err
		}
		current := coordinator.Affiliation
		if current.Role != entity.RoleVisitor && current.Role != entity.RoleMember {
			return entity.NewInvalidTransitionError(fmt.Sprintf("a %s cannot become the coordinator of a new club", current.Role))
		}
		if err := uc.clubRepo.CreateClub(ctx, club); err != nil {
			return err
		}
		if err := uc.userRepo.UpdateAffiliation(ctx, coordinatorID, current, entity.CoordinatorOf(club.ID)); err != nil {
			return err
		}
		_, err = uc.joinRepo.RejectPendingForUser(ctx, coordinatorID, "", admin.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateClubList(ctx)
	uc.metrics.ClubCreated()
	uc.logger.Infof("club %s (%s) created by %s with coordinator %s", club.ID, club.Name, admin.ID, coordinatorID)
	return club, nil
}

func (uc *ClubUseCase) GetClub(ctx context.Context, clubID string) (*entity.Club, error) {
	if clubID == "" {
		return nil, entity.NewValidationError("club id is required")
	}
	if uc.clubCache != nil {
		if club, ok, err := uc.clubCache.GetClub(ctx, clubID); err == nil && ok {
			return club, nil
		} else if err != nil {
			uc.logger.Warnf("club cache read failed: %v", err)
		}
	}

	club, err := uc.clubRepo.GetClubByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if uc.clubCache != nil {
		if err := uc.clubCache.SetClub(ctx, club); err != nil {
			uc.logger.Warnf("club cache write failed: %v", err)
		}
	}
	return club, nil
}

func (uc *ClubUseCase) ListClubs(ctx context.Context) ([]*entity.Club, error) {
	if uc.clubCache != nil {
		if clubs, ok, err := uc.clubCache.GetClubList(ctx); err == nil && ok {
			return clubs, nil
		} else if err != nil {
			uc.logger.Warnf("club cache read failed: %v", err)
		}
	}

	clubs, err := uc.clubRepo.ListClubs(ctx)
	if err != nil {
		return nil, err
	}
	if uc.clubCache != nil {
		if err := uc.clubCache.SetClubList(ctx, clubs); err != nil {
			uc.logger.Warnf("club cache write failed: %v", err)
		}
	}
	return clubs, nil
}

// ListMembers returns the members of a club. Only admins and the club's
// coordinator may see the roster.
func (uc *ClubUseCase) ListMembers(ctx context.Context, callerID, clubID string) ([]*entity.User, error) {
	if _, err := loadClubManager(ctx, uc.userRepo, callerID, clubID); err != nil {
		return nil, err
	}
	if _, err := uc.clubRepo.GetClubByID(ctx, clubID); err != nil {
		return nil, err
	}
	role := entity.RoleMember
	members, _, err := uc.userRepo.ListUsers(ctx, &contract.UserFilterOptions{Role: &role, ClubID: &clubID})
	return members, err
}

func (uc *ClubUseCase) invalidateClubList(ctx context.Context) {
	if uc.clubCache == nil {
		return
	}
	if err := uc.clubCache.InvalidateClubList(ctx); err != nil {
		uc.logger.Warnf("club cache invalidation failed: %v", err)
	}
}
