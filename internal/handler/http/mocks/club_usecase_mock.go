package mocks

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// MockClubUsecase serves canned clubs. Err, when set, is returned by every call.
type MockClubUsecase struct {
	Err   error
	Club  entity.Club
	Clubs []*entity.Club

	LastCaller      string
	LastCoordinator string
}

var _ usecasecontract.IClubUseCase = (*MockClubUsecase)(nil)

func NewMockClubUsecase() *MockClubUsecase {
	club := entity.Club{ID: "club-1", Name: "Chess", CoordinatorID: "coord-1"}
	return &MockClubUsecase{Club: club, Clubs: []*entity.Club{&club}}
}

func (m *MockClubUsecase) CreateClub(ctx context.Context, callerID, name, description, coordinatorID string) (*entity.Club, error) {
	m.LastCaller, m.LastCoordinator = callerID, coordinatorID
	if m.Err != nil {
		return nil, m.Err
	}
	club := m.Club
	club.Name, club.Description, club.CoordinatorID = name, description, coordinatorID
	return &club, nil
}

func (m *MockClubUsecase) GetClub(ctx context.Context, clubID string) (*entity.Club, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Club, nil
}

func (m *MockClubUsecase) ListClubs(ctx context.Context) ([]*entity.Club, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Clubs, nil
}

func (m *MockClubUsecase) ListMembers(ctx context.Context, callerID, clubID string) ([]*entity.User, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.User{{ID: "member-1", Username: "bob", Affiliation: entity.MemberOf(clubID)}}, nil
}

// MockMembershipUsecase records the last decision it was asked to apply.
type MockMembershipUsecase struct {
	Err error

	LastCaller   string
	LastDecision entity.JoinDecision
	LastRole     entity.UserRole
	LastClubID   string
	LastStatus   entity.JoinStatus
	Removed      []string
}

var _ usecasecontract.IMembershipUseCase = (*MockMembershipUsecase)(nil)

func (m *MockMembershipUsecase) RequestJoin(ctx context.Context, callerID, clubID string) (*entity.JoinRequest, error) {
	m.LastCaller, m.LastClubID = callerID, clubID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.JoinRequest{ID: "req-1", UserID: callerID, ClubID: clubID, Status: entity.JoinStatusPending}, nil
}

func (m *MockMembershipUsecase) DecideJoin(ctx context.Context, callerID, requestID string, decision entity.JoinDecision) (*entity.JoinRequest, error) {
	m.LastCaller, m.LastDecision = callerID, decision
	if m.Err != nil {
		return nil, m.Err
	}
	status, err := decision.TargetStatus()
	if err != nil {
		return nil, err
	}
	return &entity.JoinRequest{ID: requestID, Status: status, DecidedBy: callerID}, nil
}

func (m *MockMembershipUsecase) RemoveMember(ctx context.Context, callerID, clubID, userID string) error {
	m.LastCaller, m.LastClubID = callerID, clubID
	if m.Err != nil {
		return m.Err
	}
	m.Removed = append(m.Removed, userID)
	return nil
}

func (m *MockMembershipUsecase) ChangeRole(ctx context.Context, callerID, userID string, role entity.UserRole, clubID string) (*entity.User, error) {
	m.LastCaller, m.LastRole, m.LastClubID = callerID, role, clubID
	if m.Err != nil {
		return nil, m.Err
	}
	aff, err := entity.NewAffiliation(role, clubID)
	if err != nil {
		return nil, err
	}
	return &entity.User{ID: userID, Username: "target", Affiliation: aff}, nil
}

func (m *MockMembershipUsecase) ListClubRequests(ctx context.Context, callerID, clubID string, status entity.JoinStatus) ([]*entity.JoinRequest, error) {
	m.LastCaller, m.LastClubID, m.LastStatus = callerID, clubID, status
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.JoinRequest{{ID: "req-1", ClubID: clubID, Status: entity.JoinStatusPending}}, nil
}

func (m *MockMembershipUsecase) ListMyRequests(ctx context.Context, callerID string) ([]*entity.JoinRequest, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.JoinRequest{}, nil
}
