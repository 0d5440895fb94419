package redisad

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// KV is the durable session store. Keys carry no TTL, like browser local
// storage.
type KV struct {
	c      *redis.Client
	prefix string
}

// NewKV prefixes every key with namespace + ":" when namespace is set.
func NewKV(c *redis.Client, namespace string) *KV {
	p := ""
	if namespace != "" {
		p = namespace + ":"
	}
	return &KV{c: c, prefix: p}
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.c.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	return s.c.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *KV) Remove(ctx context.Context, key string) error {
	return s.c.Del(ctx, s.prefix+key).Err()
}
