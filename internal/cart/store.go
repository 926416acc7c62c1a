package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avaldez/nookstop-backend/pkg/config"
	redisclient "github.com/avaldez/nookstop-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

// Store persists cart snapshots keyed by user.
type Store interface {
	Load(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, userID string, cart *Cart) error
	Clear(ctx context.Context, userID string) error
}

type cartKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

type redisStore struct {
	kv  cartKV
	ttl time.Duration
}

// NewRedisStore builds a cart store backed by the shared Redis client.
func NewRedisStore(client *redisclient.Client, cfg config.CartConfig) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &redisStore{kv: client, ttl: cfg.TTL}, nil
}

// Load returns the stored cart, or an empty cart when none exists yet.
func (s *redisStore) Load(ctx context.Context, userID string) (*Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(userID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return &cart, nil
}

// Save writes the cart snapshot and refreshes its TTL.
func (s *redisStore) Save(ctx context.Context, userID string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(userID), payload, s.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Clear removes the cart key entirely.
func (s *redisStore) Clear(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(userID)); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
