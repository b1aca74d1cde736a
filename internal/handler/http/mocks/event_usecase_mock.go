package mocks

import (
	"context"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

type MockEventUsecase struct {
	Err   error
	Event entity.Event

	LastCaller string
	LastInput  usecasecontract.EventInput
	LastStatus string
	LastKind   entity.EngagementKind
	LastFilter usecasecontract.ApprovedEventFilter
}

var _ usecasecontract.IEventUseCase = (*MockEventUsecase)(nil)

func NewMockEventUsecase() *MockEventUsecase {
	return &MockEventUsecase{Event: entity.Event{
		ID:         "event-1",
		Title:      "Open night",
		ClubID:     "club-1",
		Status:     entity.EventStatusPending,
		Likes:      []string{},
		Interested: []string{},
	}}
}

func (m *MockEventUsecase) ProposeEvent(ctx context.Context, callerID string, in usecasecontract.EventInput) (*entity.Event, error) {
	m.LastCaller, m.LastInput = callerID, in
	if m.Err != nil {
		return nil, m.Err
	}
	ev := m.Event
	ev.Title, ev.CreatorID = in.Title, callerID
	return &ev, nil
}

func (m *MockEventUsecase) DecideEvent(ctx context.Context, callerID, eventID, status string) (*entity.Event, error) {
	m.LastCaller, m.LastStatus = callerID, status
	if m.Err != nil {
		return nil, m.Err
	}
	st, err := entity.ParseDecisionStatus(status)
	if err != nil {
		return nil, err
	}
	ev := m.Event
	ev.Status = st
	return &ev, nil
}

func (m *MockEventUsecase) ToggleEngagement(ctx context.Context, callerID, eventID string, kind entity.EngagementKind) (*entity.EngagementResult, error) {
	m.LastCaller, m.LastKind = callerID, kind
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.EngagementResult{Active: true, Count: 1}, nil
}

func (m *MockEventUsecase) GetEvent(ctx context.Context, callerID, eventID string) (*entity.Event, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Event, nil
}

func (m *MockEventUsecase) ListApproved(ctx context.Context, filter usecasecontract.ApprovedEventFilter) ([]*entity.Event, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Event{&m.Event}, nil
}

func (m *MockEventUsecase) ListPending(ctx context.Context, callerID string) ([]*entity.Event, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Event{&m.Event}, nil
}

func (m *MockEventUsecase) ListMyClubEvents(ctx context.Context, callerID string) ([]*entity.Event, error) {
	m.LastCaller = callerID
	if m.Err != nil {
		return nil, m.Err
	}
	return []*entity.Event{&m.Event}, nil
}

func (m *MockEventUsecase) DeleteEvent(ctx context.Context, callerID, eventID string) error {
	m.LastCaller = callerID
	return m.Err
}
