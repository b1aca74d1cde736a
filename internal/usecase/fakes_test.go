package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// memStore is an in-memory stand-in for the Mongo repositories. Its
// transactor snapshots every collection and restores it when fn fails, which
// gives tests the same all-or-nothing behaviour as a Mongo transaction.
type memStore struct {
	mu sync.Mutex
	// txMu serializes transactions so a rollback never restores over a
	// concurrent transaction's commit.
	txMu          sync.Mutex
	users         map[string]entity.User
	clubs         map[string]entity.Club
	joins         map[string]entity.JoinRequest
	events        map[string]entity.Event
	posts         map[string]entity.Post
	comments      map[string]entity.Comment
	notifications map[string]entity.Notification
	announcements map[string]entity.Announcement
	tokens        map[string]entity.Token

	// failOn makes the named operation return the given error once.
	failOn map[string]error
	seq    int
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[string]entity.User{},
		clubs:         map[string]entity.Club{},
		joins:         map[string]entity.JoinRequest{},
		events:        map[string]entity.Event{},
		posts:         map[string]entity.Post{},
		comments:      map[string]entity.Comment{},
		notifications: map[string]entity.Notification{},
		announcements: map[string]entity.Announcement{},
		tokens:        map[string]entity.Token{},
		failOn:        map[string]error{},
	}
}

func (s *memStore) injected(op string) error {
	if err, ok := s.failOn[op]; ok {
		delete(s.failOn, op)
		return err
	}
	return nil
}

// tick returns strictly increasing timestamps so ordering tests are stable.
func (s *memStore) tick() time.Time {
	s.seq++
	return time.Date(2026, 1, 1, 0, 0, s.seq, 0, time.UTC)
}

type memTransactor struct{ s *memStore }

func (t memTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	snap := struct {
		users         map[string]entity.User
		clubs         map[string]entity.Club
		joins         map[string]entity.JoinRequest
		events        map[string]entity.Event
		posts         map[string]entity.Post
		comments      map[string]entity.Comment
		notifications map[string]entity.Notification
		announcements map[string]entity.Announcement
	}{
		maps.Clone(t.s.users), maps.Clone(t.s.clubs), maps.Clone(t.s.joins), maps.Clone(t.s.events),
		maps.Clone(t.s.posts), maps.Clone(t.s.comments), maps.Clone(t.s.notifications), maps.Clone(t.s.announcements),
	}
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.users, t.s.clubs, t.s.joins, t.s.events = snap.users, snap.clubs, snap.joins, snap.events
		t.s.posts, t.s.comments, t.s.notifications, t.s.announcements = snap.posts, snap.comments, snap.notifications, snap.announcements
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// ---- users

type memUserRepo struct{ s *memStore }

func (r memUserRepo) CreateUser(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("CreateUser"); err != nil {
		return err
	}
	if err := u.Affiliation.Validate(); err != nil {
		return err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return entity.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return entity.ErrUsernameTaken
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r memUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return &u, nil
}

func (r memUserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r memUserRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

func (r memUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r memUserRepo) UpdateProfile(_ context.Context, id string, p entity.Profile, complete bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	u.Profile = p
	u.ProfileComplete = complete
	r.s.users[id] = u
	return &u, nil
}

func (r memUserRepo) UpdateAffiliation(_ context.Context, id string, from, to entity.Affiliation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("UpdateAffiliation"); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	u, ok := r.s.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	if u.Affiliation != from {
		return entity.ErrAffiliationChanged
	}
	u.Affiliation = to
	r.s.users[id] = u
	return nil
}

func (r memUserRepo) ListUsers(_ context.Context, opts *contract.UserFilterOptions) ([]*entity.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.User{}
	for _, u := range r.s.users {
		if opts.Role != nil && u.Affiliation.Role != *opts.Role {
			continue
		}
		if opts.ClubID != nil && u.Affiliation.ClubID != *opts.ClubID {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, int64(len(out)), nil
}

// ---- clubs

type memClubRepo struct{ s *memStore }

func (r memClubRepo) CreateClub(_ context.Context, c *entity.Club) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("CreateClub"); err != nil {
		return err
	}
	for _, existing := range r.s.clubs {
		if existing.NameCI == c.NameCI {
			return entity.ErrClubNameTaken
		}
	}
	r.s.clubs[c.ID] = *c
	return nil
}

func (r memClubRepo) GetClubByID(_ context.Context, id string) (*entity.Club, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clubs[id]
	if !ok {
		return nil, entity.ErrClubNotFound
	}
	return &c, nil
}

func (r memClubRepo) find(match func(entity.Club) bool) (*entity.Club, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clubs {
		if match(c) {
			return &c, nil
		}
	}
	return nil, entity.ErrClubNotFound
}

func (r memClubRepo) GetClubByName(_ context.Context, name string) (*entity.Club, error) {
	return r.find(func(c entity.Club) bool { return c.NameCI == strings.ToLower(name) })
}

func (r memClubRepo) GetClubByCoordinator(_ context.Context, userID string) (*entity.Club, error) {
	return r.find(func(c entity.Club) bool { return c.CoordinatorID == userID })
}

func (r memClubRepo) ListClubs(_ context.Context) ([]*entity.Club, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Club{}
	for _, c := range r.s.clubs {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memClubRepo) SetCoordinator(_ context.Context, clubID, from, to string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clubs[clubID]
	if !ok {
		return entity.ErrClubNotFound
	}
	if c.CoordinatorID != from {
		return entity.NewInvalidTransitionError("club coordinator changed concurrently")
	}
	c.CoordinatorID = to
	r.s.clubs[clubID] = c
	return nil
}

// ---- join requests

type memJoinRepo struct{ s *memStore }

func (r memJoinRepo) Create(_ context.Context, req *entity.JoinRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.joins {
		if existing.UserID == req.UserID && existing.ClubID == req.ClubID && existing.Status == entity.JoinStatusPending {
			return entity.ErrDuplicateRequest
		}
	}
	req.CreatedAt = r.s.tick()
	r.s.joins[req.ID] = *req
	return nil
}

func (r memJoinRepo) GetByID(_ context.Context, id string) (*entity.JoinRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.joins[id]
	if !ok {
		return nil, entity.ErrJoinRequestNotFound
	}
	return &req, nil
}

func (r memJoinRepo) FindPending(_ context.Context, userID, clubID string) (*entity.JoinRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.joins {
		if req.UserID == userID && req.ClubID == clubID && req.Status == entity.JoinStatusPending {
			return &req, nil
		}
	}
	return nil, entity.ErrJoinRequestNotFound
}

func (r memJoinRepo) TransitionStatus(_ context.Context, id string, from, to entity.JoinStatus, deciderID string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("JoinTransition"); err != nil {
		return err
	}
	req, ok := r.s.joins[id]
	if !ok {
		return entity.ErrJoinRequestNotFound
	}
	if req.Status != from {
		return entity.ErrNotPending
	}
	req.Status = to
	req.DecidedBy = deciderID
	req.DecidedAt = &at
	r.s.joins[id] = req
	return nil
}

func (r memJoinRepo) RejectPendingForUser(_ context.Context, userID, exceptID, deciderID string, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, req := range r.s.joins {
		if req.UserID == userID && req.Status == entity.JoinStatusPending && id != exceptID {
			req.Status = entity.JoinStatusRejected
			req.DecidedBy = deciderID
			req.DecidedAt = &at
			r.s.joins[id] = req
			n++
		}
	}
	return n, nil
}

func (r memJoinRepo) List(_ context.Context, f contract.JoinRequestFilter) ([]*entity.JoinRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.JoinRequest{}
	for _, req := range r.s.joins {
		if (f.UserID != "" && req.UserID != f.UserID) || (f.ClubID != "" && req.ClubID != f.ClubID) || (f.Status != "" && req.Status != f.Status) {
			continue
		}
		req := req
		out = append(out, &req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) pendingCount(userID, clubID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, req := range s.joins {
		if req.UserID == userID && req.ClubID == clubID && req.Status == entity.JoinStatusPending {
			n++
		}
	}
	return n
}

// ---- events

type memEventRepo struct{ s *memStore }

func cloneEvent(e entity.Event) entity.Event {
	e.Likes = slices.Clone(e.Likes)
	e.Interested = slices.Clone(e.Interested)
	return e
}

func (r memEventRepo) CreateEvent(_ context.Context, e *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.CreatedAt = r.s.tick()
	r.s.events[e.ID] = cloneEvent(*e)
	return nil
}

func (r memEventRepo) GetEventByID(_ context.Context, id string) (*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	e = cloneEvent(e)
	return &e, nil
}

func (r memEventRepo) ListEvents(_ context.Context, opts *contract.EventFilterOptions) ([]*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Event{}
	for _, e := range r.s.events {
		if opts.Status != nil && e.Status != *opts.Status {
			continue
		}
		if opts.ClubID != nil && e.ClubID != *opts.ClubID {
			continue
		}
		e := cloneEvent(e)
		out = append(out, &e)
	}
	key := func(e *entity.Event) time.Time {
		if opts.SortBy == "date" {
			return e.Date
		}
		return e.CreatedAt
	}
	sort.Slice(out, func(i, j int) bool {
		if opts.SortOrder == "asc" {
			return key(out[i]).Before(key(out[j]))
		}
		return key(out[i]).After(key(out[j]))
	})
	return out, nil
}

func (r memEventRepo) TransitionStatus(_ context.Context, id string, from, to entity.EventStatus, deciderID string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return entity.ErrEventNotFound
	}
	if e.Status != from {
		return entity.ErrNotPending
	}
	e.Status = to
	e.DecidedBy = deciderID
	e.DecidedAt = &at
	r.s.events[id] = e
	return nil
}

func toggle(set []string, id string) []string {
	if i := slices.Index(set, id); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), id)
}

func (r memEventRepo) ToggleEngagement(_ context.Context, id, userID string, kind entity.EngagementKind) (*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	switch kind {
	case entity.EngagementLike:
		e.Likes = toggle(e.Likes, userID)
	case entity.EngagementInterested:
		e.Interested = toggle(e.Interested, userID)
	default:
		return nil, fmt.Errorf("unknown engagement %q", kind)
	}
	r.s.events[id] = e
	e = cloneEvent(e)
	return &e, nil
}

func (r memEventRepo) DeleteEvent(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return entity.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

// ---- posts and comments

type memPostRepo struct{ s *memStore }

func (r memPostRepo) CreatePost(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.CreatedAt = r.s.tick()
	cp := *p
	cp.Likes = slices.Clone(p.Likes)
	r.s.posts[p.ID] = cp
	return nil
}

func (r memPostRepo) GetPostByID(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	p.Likes = slices.Clone(p.Likes)
	return &p, nil
}

func (r memPostRepo) ListPosts(_ context.Context, opts *contract.PostFilterOptions) ([]*entity.Post, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := []*entity.Post{}
	for _, p := range r.s.posts {
		if opts.Hashtag != "" && !slices.Contains(p.Hashtags, opts.Hashtag) {
			continue
		}
		if opts.OwnerID != "" && p.OwnerID != opts.OwnerID {
			continue
		}
		p := p
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := (opts.Page - 1) * opts.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := min(start+opts.PageSize, len(all))
	return all[start:end], int64(len(all)), nil
}

func (r memPostRepo) DeletePost(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return entity.ErrPostNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r memPostRepo) ToggleLike(_ context.Context, postID, userID string) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[postID]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	p.Likes = toggle(p.Likes, userID)
	r.s.posts[postID] = p
	p.Likes = slices.Clone(p.Likes)
	return &p, nil
}

func (r memPostRepo) IncrementCommentCount(_ context.Context, postID string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("IncrementCommentCount"); err != nil {
		return err
	}
	p, ok := r.s.posts[postID]
	if !ok {
		return entity.ErrPostNotFound
	}
	p.CommentCount += delta
	r.s.posts[postID] = p
	return nil
}

type memCommentRepo struct{ s *memStore }

func (r memCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.CreatedAt = r.s.tick()
	r.s.comments[c.ID] = *c
	return nil
}

func (r memCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, entity.ErrCommentNotFound
	}
	return &c, nil
}

func (r memCommentRepo) ListByPost(_ context.Context, postID string) ([]*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Comment{}
	for _, c := range r.s.comments {
		if c.PostID == postID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memCommentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return entity.ErrCommentNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r memCommentRepo) DeleteByPost(_ context.Context, postID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.comments {
		if c.PostID == postID {
			delete(r.s.comments, id)
			n++
		}
	}
	return n, nil
}

// ---- notifications and announcements

type memNotificationRepo struct{ s *memStore }

func (r memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.CreatedAt = r.s.tick()
	r.s.notifications[n.ID] = *n
	return nil
}

func (r memNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Notification{}
	for _, n := range r.s.notifications {
		if n.UserID != userID || (unreadOnly && n.Read) {
			continue
		}
		n := n
		out = append(out, &n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return entity.ErrNotificationNotFound
	}
	n.Read = true
	r.s.notifications[id] = n
	return nil
}

func (r memNotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for id, n := range r.s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			r.s.notifications[id] = n
			count++
		}
	}
	return count, nil
}

type memAnnouncementRepo struct{ s *memStore }

func (r memAnnouncementRepo) Create(_ context.Context, a *entity.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.CreatedAt = r.s.tick()
	r.s.announcements[a.ID] = *a
	return nil
}

func (r memAnnouncementRepo) GetByID(_ context.Context, id string) (*entity.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.announcements[id]
	if !ok {
		return nil, entity.ErrAnnouncementNotFound
	}
	return &a, nil
}

func (r memAnnouncementRepo) List(_ context.Context, clubID string) ([]*entity.Announcement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Announcement{}
	for _, a := range r.s.announcements {
		if a.ClubID == "" || (clubID != "" && a.ClubID == clubID) {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memAnnouncementRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.announcements[id]; !ok {
		return entity.ErrAnnouncementNotFound
	}
	delete(r.s.announcements, id)
	return nil
}

// retryingTransactor aborts the first successful attempt with a transient
// error, runs beforeRetry, then runs fn again, as session.WithTransaction
// does on TransientTransactionError.
type retryingTransactor struct {
	inner       memTransactor
	beforeRetry func()
}

var errTransientTxn = errors.New("transient transaction error")

func (t retryingTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	first := true
	for {
		err := t.inner.WithTransaction(ctx, func(ctx context.Context) error {
			if err := fn(ctx); err != nil {
				return err
			}
			if first {
				return errTransientTxn
			}
			return nil
		})
		if first && errors.Is(err, errTransientTxn) {
			first = false
			if t.beforeRetry != nil {
				t.beforeRetry()
			}
			continue
		}
		return err
	}
}

// ---- tokens

type memTokenRepo struct{ s *memStore }

func (r memTokenRepo) CreateToken(_ context.Context, t *entity.Token) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tokens[t.ID] = *t
	return nil
}

func (r memTokenRepo) GetTokenByHash(_ context.Context, hash string) (*entity.Token, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tokens {
		if t.TokenHash == hash {
			return &t, nil
		}
	}
	return nil, entity.ErrTokenNotFound
}

func (r memTokenRepo) RevokeToken(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tokens[id]
	if !ok || t.Revoked {
		return entity.ErrInvalidToken
	}
	t.Revoked = true
	r.s.tokens[id] = t
	return nil
}

func (r memTokenRepo) RevokeAllTokensForUser(_ context.Context, userID string, tokenType entity.TokenType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.tokens {
		if t.UserID == userID && t.TokenType == tokenType {
			t.Revoked = true
			r.s.tokens[id] = t
		}
	}
	return nil
}

// ---- services

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics { return &countingMetrics{counts: map[string]int{}} }

func (m *countingMetrics) inc(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *countingMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

func (m *countingMetrics) JoinRequested()             { m.inc("join_requested") }
func (m *countingMetrics) JoinDecided(d string)       { m.inc("join_" + d) }
func (m *countingMetrics) MemberRemoved()             { m.inc("member_removed") }
func (m *countingMetrics) RoleChanged(role string)    { m.inc("role_" + role) }
func (m *countingMetrics) ClubCreated()               { m.inc("club_created") }
func (m *countingMetrics) EventProposed()             { m.inc("event_proposed") }
func (m *countingMetrics) EventDecided(status string) { m.inc("event_" + status) }

type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(s string) string { return s }

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) SendEmail(_ context.Context, to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

// ---- fixture

// fixture wires every use-case to one memStore.
type fixture struct {
	store         *memStore
	uuid          *seqUUID
	metrics       *countingMetrics
	mailer        *recordingMailer
	notifications *NotificationUseCase
	clubs         *ClubUseCase
	membership    *MembershipUseCase
	events        *EventUseCase
	posts         *PostUseCase
	announcements *AnnouncementUseCase
}

func newFixture() *fixture {
	s := newMemStore()
	f := &fixture{store: s, uuid: &seqUUID{}, metrics: newCountingMetrics(), mailer: &recordingMailer{}}
	users, clubs, joins := memUserRepo{s}, memClubRepo{s}, memJoinRepo{s}
	tx := memTransactor{s}
	f.notifications = NewNotificationUseCase(memNotificationRepo{s}, users, f.mailer, f.uuid, nopLogger{})
	f.clubs = NewClubUseCase(clubs, users, joins, tx, passthroughSanitizer{}, f.uuid, f.metrics, nopLogger{})
	f.membership = NewMembershipUseCase(users, clubs, joins, tx, f.notifications, f.uuid, f.metrics, nopLogger{})
	f.events = NewEventUseCase(memEventRepo{s}, clubs, users, f.notifications, passthroughSanitizer{}, f.uuid, f.metrics, nopLogger{})
	f.posts = NewPostUseCase(memPostRepo{s}, memCommentRepo{s}, users, tx, f.notifications, passthroughSanitizer{}, f.uuid, nopLogger{})
	f.announcements = NewAnnouncementUseCase(memAnnouncementRepo{s}, clubs, users, passthroughSanitizer{}, f.uuid)
	return f
}

// addUser inserts a user directly with the given affiliation.
func (f *fixture) addUser(username string, a entity.Affiliation) *entity.User {
	u := entity.User{
		ID:          "user-" + username,
		Username:    username,
		Email:       username + "@example.com",
		Affiliation: a,
	}
	f.store.mu.Lock()
	f.store.users[u.ID] = u
	f.store.mu.Unlock()
	return &u
}

func (f *fixture) user(id string) entity.User {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.users[id]
}

func (f *fixture) joinRequest(id string) entity.JoinRequest {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.joins[id]
}

func (f *fixture) event(id string) entity.Event {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return cloneEvent(f.store.events[id])
}

// seedClub creates an admin, a coordinator and a club through the use-case.
func (f *fixture) seedClub(name string) (admin, coordinator *entity.User, club *entity.Club) {
	admin = f.addUser("admin-"+strings.ToLower(name), entity.Admin())
	coordinator = f.addUser("coord-"+strings.ToLower(name), entity.Visitor())
	club, err := f.clubs.CreateClub(context.Background(), admin.ID, name, name+" club", coordinator.ID)
	if err != nil {
		panic(err)
	}
	return admin, coordinator, club
}
