package league

import (
	"context"
	"fmt"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// WeekOverrideStore holds the commissioner's per-week "accept picks anyway"
// flags. They are deliberately volatile: flipping one is a live admin action,
// not league data, so they live in redis rather than postgres.
type WeekOverrideStore interface {
	SetOverride(week int, enabled bool) error
	Override(week int) (bool, error)
}

type RedisWeekOverrideStore struct {
	db *redis.Client
}

func NewWeekOverrideStore(db *redis.Client) *RedisWeekOverrideStore {
	return &RedisWeekOverrideStore{db: db}
}

func overrideKey(week int) string {
	return fmt.Sprintf("week_override:%d", week)
}

func (s *RedisWeekOverrideStore) SetOverride(week int, enabled bool) error {
	if !enabled {
		if err := s.db.Del(ctx, overrideKey(week)).Err(); err != nil {
			return apperrors.NewAppError(500, "error clearing week override", err)
		}
		return nil
	}
	if err := s.db.Set(ctx, overrideKey(week), "1", 0).Err(); err != nil {
		return apperrors.NewAppError(500, "error setting week override", err)
	}
	return nil
}

func (s *RedisWeekOverrideStore) Override(week int) (bool, error) {
	_, err := s.db.Get(ctx, overrideKey(week)).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, apperrors.NewAppError(500, "error getting week override", err)
	}
	return true, nil
}
