package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"socialweb/models"
)

// NewRedisClient builds a redis client from either a plain host:port or a
// redis://-style URL.
func NewRedisClient(raw string) (*redis.Client, error) {
	if strings.HasPrefix(raw, "redis://") || strings.HasPrefix(raw, "rediss://") {
		opts, err := redis.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{Addr: raw}), nil
}

// RedisStore is the durable Store. Each session uses two keys so the token
// and user slots stay independent, both expiring together.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func tokenKey(sid string) string { return "session:" + sid + ":token" }
func userKey(sid string) string  { return "session:" + sid + ":user" }

func (s *RedisStore) GetToken(ctx context.Context, sid string) (string, error) {
	val, err := s.client.Get(ctx, tokenKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) GetUser(ctx context.Context, sid string) (*models.User, error) {
	raw, err := s.client.Get(ctx, userKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Corrupt slot reads as logged out.
		return nil, nil
	}
	return &user, nil
}

func (s *RedisStore) SetSession(ctx context.Context, sid, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(sid), token, s.ttl)
	pipe.Set(ctx, userKey(sid), raw, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, tokenKey(sid), userKey(sid)).Err()
}
