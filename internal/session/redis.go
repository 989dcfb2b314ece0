package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/scrapbookapp/scrapbook/pkg/helpers"
)

// RedisManager keeps sessions in Redis as JSON under session:<token>,
// with the pending flash message under its own session:flash:<token>
// key so PopFlash is a single GETDEL.
type RedisManager struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisManager(rdb *redis.Client, ttl time.Duration) *RedisManager {
	return &RedisManager{rdb: rdb, ttl: ttl}
}

func key(token string) string      { return "session:" + token }
func flashKey(token string) string { return "session:flash:" + token }

func (m *RedisManager) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := helpers.RedisSetJSON(ctx, m.rdb, key(token), Data{}, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (m *RedisManager) Get(ctx context.Context, token string) (Data, error) {
	var d Data
	found, err := helpers.RedisGetJSON(ctx, m.rdb, key(token), &d)
	if err != nil {
		return Data{}, err
	}
	if !found {
		return Data{}, ErrNotFound
	}
	return d, nil
}

func (m *RedisManager) SetUser(ctx context.Context, token, userID string) error {
	d, err := m.Get(ctx, token)
	if err != nil {
		return err
	}
	d.UserID = userID
	return helpers.RedisSetJSON(ctx, m.rdb, key(token), d, m.ttl)
}

func (m *RedisManager) SetFlash(ctx context.Context, token, msg string) error {
	n, err := m.rdb.Exists(ctx, key(token)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return m.rdb.Set(ctx, flashKey(token), msg, m.ttl).Err()
}

func (m *RedisManager) PopFlash(ctx context.Context, token string) (string, error) {
	msg, err := m.rdb.GetDel(ctx, flashKey(token)).Result()
	if errors.Is(redis.Nil, err) {
		// No pending flash; a dead session still reports ErrNotFound.
		n, err := m.rdb.Exists(ctx, key(token)).Result()
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", ErrNotFound
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return msg, nil
}

func (m *RedisManager) Destroy(ctx context.Context, token string) error {
	return helpers.RedisDel(ctx, m.rdb, key(token), flashKey(token))
}

var _ Manager = (*RedisManager)(nil)
