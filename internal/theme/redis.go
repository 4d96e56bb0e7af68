package theme

import (
	"context"
	"errors"

	"github.com/Domenick1991/airdesk/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore shares the preference between dashboard instances.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		key:    "airdesk:" + Key,
	}
}

func (r *RedisStore) Load(ctx context.Context) (Mode, bool, error) {
	value, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	mode, ok := ParseMode(value)
	return mode, ok, nil
}

func (r *RedisStore) Save(ctx context.Context, mode Mode) error {
	return r.client.Set(ctx, r.key, string(mode), 0).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ Store = (*RedisStore)(nil)
