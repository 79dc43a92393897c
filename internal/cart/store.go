package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type snapshotStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

// Store persists cart snapshots in Redis so a cart survives across sessions.
type Store struct {
	redis snapshotStore
	ttl   time.Duration
}

// NewStore builds a snapshot store with the configured TTL.
func NewStore(redis snapshotStore, ttl time.Duration) (*Store, error) {
	if redis == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &Store{redis: redis, ttl: ttl}, nil
}

// Save serializes the ledger entries under the user's cart key.
func (s *Store) Save(ctx context.Context, userID string, ledger *Ledger) error {
	payload, err := json.Marshal(ledger.Entries())
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}
	return s.redis.Set(ctx, s.redis.CartKey(userID), string(payload), s.ttl)
}

// Load rebuilds a ledger from the stored snapshot. A missing snapshot yields
// an empty ledger, not an error.
func (s *Store) Load(ctx context.Context, userID string) (*Ledger, error) {
	raw, err := s.redis.Get(ctx, s.redis.CartKey(userID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return NewLedger(), nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot: %w", err)
	}

	ledger := NewLedger()
	for _, entry := range entries {
		ledger.entries[entry.Item.ID] = &Entry{Item: entry.Item, Quantity: entry.Quantity}
		ledger.order = append(ledger.order, entry.Item.ID)
	}
	return ledger, nil
}

// Drop removes the stored snapshot entirely.
func (s *Store) Drop(ctx context.Context, userID string) error {
	return s.redis.Del(ctx, s.redis.CartKey(userID))
}
