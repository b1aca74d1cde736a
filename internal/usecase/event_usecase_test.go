package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

func eventInput(title string, date time.Time) usecasecontract.EventInput {
	return usecasecontract.EventInput{
		Title:       title,
		Description: "bring a friend",
		Date:        date,
		Venue:       "Main hall",
	}
}

func TestProposeEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, coord, club := f.seedClub("Chess")
	date := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput("Blitz night", date))
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusPending, e.Status)
	assert.Equal(t, club.ID, e.ClubID)
	assert.Equal(t, coord.ID, e.CreatorID)
	assert.Empty(t, e.Likes)
	assert.Empty(t, e.Interested)
	assert.Equal(t, 1, f.metrics.get("event_proposed"))

	_, err = f.events.ProposeEvent(ctx, coord.ID, eventInput("", date))
	assert.True(t, entity.IsKind(err, entity.KindValidation))

	_, err = f.events.ProposeEvent(ctx, coord.ID, eventInput("No date", time.Time{}))
	assert.True(t, entity.IsKind(err, entity.KindValidation))
}

func TestProposeEvent_CoordinatorWithoutClub(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	// a coordinator whose club record is gone
	orphan := f.addUser("orphan", entity.CoordinatorOf("deleted-club"))

	_, err := f.events.ProposeEvent(ctx, orphan.ID, eventInput("Lost event", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, err, entity.ErrCoordinatorUnassigned)
	assert.Empty(t, f.store.events)
}

func TestProposeEvent_NonCoordinator(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	visitor := f.addUser("visitor", entity.Visitor())

	_, err := f.events.ProposeEvent(ctx, visitor.ID, eventInput("Party", time.Now()))
	assert.True(t, entity.IsKind(err, entity.KindUnauthorized))
	assert.Empty(t, f.store.events)
}

func TestDecideEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin, coord, _ := f.seedClub("Chess")
	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput("Blitz night", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	t.Run("invalid status leaves event pending", func(t *testing.T) {
		for _, status := range []string{"pending", "archived", ""} {
			_, err := f.events.DecideEvent(ctx, admin.ID, e.ID, status)
			assert.ErrorIs(t, err, entity.ErrInvalidStatus, status)
		}
		assert.Equal(t, entity.EventStatusPending, f.event(e.ID).Status)
	})
	t.Run("non admin", func(t *testing.T) {
		_, err := f.events.DecideEvent(ctx, coord.ID, e.ID, "approved")
		assert.ErrorIs(t, err, entity.ErrAdminRequired)
	})
	t.Run("approve", func(t *testing.T) {
		decided, err := f.events.DecideEvent(ctx, admin.ID, e.ID, "approved")
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusApproved, decided.Status)
		assert.Equal(t, admin.ID, decided.DecidedBy)
		assert.Equal(t, entity.EventStatusApproved, f.event(e.ID).Status)

		notes, err := f.notifications.List(ctx, coord.ID, false)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, entity.NotificationEventApproved, notes[0].Type)
	})
	t.Run("terminal", func(t *testing.T) {
		_, err := f.events.DecideEvent(ctx, admin.ID, e.ID, "rejected")
		assert.ErrorIs(t, err, entity.ErrNotPending)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := f.events.DecideEvent(ctx, admin.ID, "missing", "approved")
		assert.ErrorIs(t, err, entity.ErrEventNotFound)
	})
}

func approvedEvent(t *testing.T, f *fixture, title string, date time.Time) (*entity.Event, *entity.User) {
	t.Helper()
	ctx := context.Background()
	admin, coord, _ := f.seedClub(title)
	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput(title, date))
	require.NoError(t, err)
	e, err = f.events.DecideEvent(ctx, admin.ID, e.ID, "approved")
	require.NoError(t, err)
	return e, coord
}

func TestToggleEngagement_IsInvolution(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	e, _ := approvedEvent(t, f, "Chess", time.Now().Add(time.Hour))
	alice := f.addUser("alice", entity.Visitor())
	bob := f.addUser("bob", entity.Visitor())

	res, err := f.events.ToggleEngagement(ctx, alice.ID, e.ID, entity.EngagementLike)
	require.NoError(t, err)
	assert.Equal(t, &entity.EngagementResult{Active: true, Count: 1}, res)

	res, err = f.events.ToggleEngagement(ctx, bob.ID, e.ID, entity.EngagementLike)
	require.NoError(t, err)
	assert.Equal(t, &entity.EngagementResult{Active: true, Count: 2}, res)

	res, err = f.events.ToggleEngagement(ctx, alice.ID, e.ID, entity.EngagementLike)
	require.NoError(t, err)
	assert.Equal(t, &entity.EngagementResult{Active: false, Count: 1}, res)
	assert.Equal(t, []string{bob.ID}, f.event(e.ID).Likes)

	// interested is an independent set
	res, err = f.events.ToggleEngagement(ctx, alice.ID, e.ID, entity.EngagementInterested)
	require.NoError(t, err)
	assert.Equal(t, &entity.EngagementResult{Active: true, Count: 1}, res)
	assert.Equal(t, []string{bob.ID}, f.event(e.ID).Likes)

	_, err = f.events.ToggleEngagement(ctx, alice.ID, e.ID, entity.EngagementKind("love"))
	assert.True(t, entity.IsKind(err, entity.KindValidation))
}

func TestToggleEngagement_PendingEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, coord, _ := f.seedClub("Chess")
	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput("Blitz", time.Now()))
	require.NoError(t, err)
	alice := f.addUser("alice", entity.Visitor())

	_, err = f.events.ToggleEngagement(ctx, alice.ID, e.ID, entity.EngagementLike)
	assert.True(t, entity.IsKind(err, entity.KindInvalidTransition))
	assert.Empty(t, f.event(e.ID).Likes)
}

func TestListEvents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	early, _ := approvedEvent(t, f, "Chess", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	late, dramaCoord := approvedEvent(t, f, "Drama", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	admin := f.addUser("root", entity.Admin())
	pendingOne, err := f.events.ProposeEvent(ctx, dramaCoord.ID, eventInput("Rehearsal", time.Now()))
	require.NoError(t, err)
	pendingTwo, err := f.events.ProposeEvent(ctx, dramaCoord.ID, eventInput("Casting", time.Now()))
	require.NoError(t, err)

	all, err := f.events.ListApproved(ctx, usecasecontract.ApprovedEventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, late.ID, all[0].ID)
	assert.Equal(t, early.ID, all[1].ID)

	drama, err := f.events.ListApproved(ctx, usecasecontract.ApprovedEventFilter{CoordinatorID: dramaCoord.ID})
	require.NoError(t, err)
	require.Len(t, drama, 1)
	assert.Equal(t, late.ID, drama[0].ID)

	none, err := f.events.ListApproved(ctx, usecasecontract.ApprovedEventFilter{CoordinatorID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, none)

	pending, err := f.events.ListPending(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, pendingOne.ID, pending[0].ID)
	assert.Equal(t, pendingTwo.ID, pending[1].ID)

	_, err = f.events.ListPending(ctx, dramaCoord.ID)
	assert.ErrorIs(t, err, entity.ErrAdminRequired)

	mine, err := f.events.ListMyClubEvents(ctx, dramaCoord.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestGetEvent_Visibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, coord, _ := f.seedClub("Chess")
	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput("Secret", time.Now()))
	require.NoError(t, err)
	alice := f.addUser("alice", entity.Visitor())

	_, err = f.events.GetEvent(ctx, alice.ID, e.ID)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)
	_, err = f.events.GetEvent(ctx, "", e.ID)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)

	got, err := f.events.GetEvent(ctx, coord.ID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestDeleteEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin, coord, _ := f.seedClub("Chess")
	e, err := f.events.ProposeEvent(ctx, coord.ID, eventInput("Blitz", time.Now()))
	require.NoError(t, err)

	assert.ErrorIs(t, f.events.DeleteEvent(ctx, coord.ID, e.ID), entity.ErrAdminRequired)
	require.NoError(t, f.events.DeleteEvent(ctx, admin.ID, e.ID))
	assert.ErrorIs(t, f.events.DeleteEvent(ctx, admin.ID, e.ID), entity.ErrEventNotFound)
}
