package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type AnnouncementUseCase struct {
	announcementRepo contract.IAnnouncementRepository
	clubRepo         contract.IClubRepository
	userRepo         contract.IUserRepository
	sanitizer        contract.ISanitizer
	uuidGenerator    contract.IUUIDGenerator
}

func NewAnnouncementUseCase(
	announcementRepo contract.IAnnouncementRepository,
	clubRepo contract.IClubRepository,
	userRepo contract.IUserRepository,
	sanitizer contract.ISanitizer,
	uuidGenerator contract.IUUIDGenerator,
) *AnnouncementUseCase {
	return &AnnouncementUseCase{
		announcementRepo: announcementRepo,
		clubRepo:         clubRepo,
		userRepo:         userRepo,
		sanitizer:        sanitizer,
		uuidGenerator:    uuidGenerator,
	}
}

var _ usecasecontract.IAnnouncementUseCase = (*AnnouncementUseCase)(nil)

// Create publishes an announcement. Global ones (empty clubID) are admin
// only; club ones may also come from that club's coordinator.
func (uc *AnnouncementUseCase) Create(ctx context.Context, callerID, title, body, clubID string) (*entity.Announcement, error) {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return nil, err
	}
	if clubID == "" {
		if !caller.Affiliation.IsAdmin() {
			return nil, entity.ErrAdminRequired
		}
	} else {
		if !caller.Affiliation.CanManage(clubID) {
			return nil, entity.ErrForbidden
		}
		if _, err := uc.clubRepo.GetClubByID(ctx, clubID); err != nil {
			return nil, err
		}
	}

	title = strings.TrimSpace(uc.sanitizer.Sanitize(title))
	body = strings.TrimSpace(uc.sanitizer.Sanitize(body))
	if title == "" || body == "" {
		return nil, entity.NewValidationError("title and body are required")
	}

	a := &entity.Announcement{
		ID:        uc.uuidGenerator.NewUUID(),
		AuthorID:  caller.ID,
		ClubID:    clubID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := uc.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AnnouncementUseCase) List(ctx context.Context, clubID string) ([]*entity.Announcement, error) {
	return uc.announcementRepo.List(ctx, clubID)
}

func (uc *AnnouncementUseCase) Delete(ctx context.Context, callerID, announcementID string) error {
	caller, err := loadCaller(ctx, uc.userRepo, callerID)
	if err != nil {
		return err
	}
	a, err := uc.announcementRepo.GetByID(ctx, announcementID)
	if err != nil {
		return err
	}
	if a.AuthorID != caller.ID && !caller.Affiliation.IsAdmin() {
		return entity.ErrForbidden
	}
	return uc.announcementRepo.Delete(ctx, a.ID)
}
