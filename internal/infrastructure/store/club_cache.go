package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

const clubListKey = "clubs:list"

// ClubCacheStore caches club documents and the club list in Redis. Entries
// expire after ttl and are evicted when a club is created or handed over.
type ClubCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IClubCache = (*ClubCacheStore)(nil)

func NewClubCacheStore(rdb *redis.Client, ttl time.Duration) *ClubCacheStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ClubCacheStore{rdb: rdb, ttl: ttl}
}

func clubKey(id string) string { return fmt.Sprintf("club:id:%s", id) }

// getJSON decodes the value at key into dst. A missing key or an
// undecodable value is reported as a miss.
func (c *ClubCacheStore) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *ClubCacheStore) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

func (c *ClubCacheStore) GetClub(ctx context.Context, id string) (*entity.Club, bool, error) {
	var club entity.Club
	ok, err := c.getJSON(ctx, clubKey(id), &club)
	if !ok || err != nil {
		return nil, false, err
	}
	return &club, true, nil
}

func (c *ClubCacheStore) SetClub(ctx context.Context, club *entity.Club) error {
	return c.setJSON(ctx, clubKey(club.ID), cachedClub(club))
}

func (c *ClubCacheStore) InvalidateClub(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, clubKey(id)).Err()
}

func (c *ClubCacheStore) GetClubList(ctx context.Context) ([]*entity.Club, bool, error) {
	var clubs []*entity.Club
	ok, err := c.getJSON(ctx, clubListKey, &clubs)
	if !ok || err != nil {
		return nil, false, err
	}
	return clubs, true, nil
}

func (c *ClubCacheStore) SetClubList(ctx context.Context, clubs []*entity.Club) error {
	out := make([]clubJSON, 0, len(clubs))
	for _, club := range clubs {
		out = append(out, cachedClub(club))
	}
	return c.setJSON(ctx, clubListKey, out)
}

func (c *ClubCacheStore) InvalidateClubList(ctx context.Context) error {
	return c.rdb.Del(ctx, clubListKey).Err()
}

// clubJSON mirrors entity.Club including the fields hidden from API
// responses, so a cached club round-trips unchanged.
type clubJSON struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameCI        string    `json:"name_ci"`
	Description   string    `json:"description"`
	CoordinatorID string    `json:"coordinator_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func cachedClub(c *entity.Club) clubJSON {
	return clubJSON(*c)
}
