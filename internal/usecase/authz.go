package usecase

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// loadCaller re-reads the caller from the store. Authorization decisions are
// made on the stored affiliation, never on the role carried by the token.
func loadCaller(ctx context.Context, users contract.IUserRepository, callerID string) (*entity.User, error) {
	if callerID == "" {
		return nil, entity.ErrInvalidToken
	}
	caller, err := users.GetUserByID(ctx, callerID)
	if err != nil {
		if entity.IsKind(err, entity.KindNotFound) {
			return nil, entity.ErrInvalidToken
		}
		return nil, err
	}
	return caller, nil
}

func loadAdmin(ctx context.Context, users contract.IUserRepository, callerID string) (*entity.User, error) {
	caller, err := loadCaller(ctx, users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.Affiliation.IsAdmin() {
		return nil, entity.ErrAdminRequired
	}
	return caller, nil
}

// loadClubManager returns the caller if they are an admin or the coordinator of clubID.
func loadClubManager(ctx context.Context, users contract.IUserRepository, callerID, clubID string) (*entity.User, error) {
	caller, err := loadCaller(ctx, users, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.Affiliation.CanManage(clubID) {
		return nil, entity.ErrForbidden
	}
	return caller, nil
}
